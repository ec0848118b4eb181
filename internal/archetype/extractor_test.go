package archetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_HeaderNameAndBody(t *testing.T) {
	paragraphs := []string{
		"Openness: High, Conscientiousness: Low, Extraversion: Medium, Agreeableness: High, Neuroticism: Low",
		"",
		"Archetype: Starlight Wanderer",
		"You drift between worlds of thought.",
		"Others find comfort in your wandering.",
	}

	n := Extract(paragraphs)

	want := "You drift between worlds of thought.\nOthers find comfort in your wandering."
	assert.Equal(t, want, n.ByCode["High-Low-Medium-High-Low"])
	assert.Equal(t, want, n.ByName["Starlight Wanderer"])
}

func TestExtract_HeaderFormats(t *testing.T) {
	tests := []struct {
		name   string
		header string
		code   string
	}{
		{
			name:   "dash separators",
			header: "Openness - high, Conscientiousness - low, Extraversion - low, Agreeableness - low, Neuroticism - low",
			code:   "High-Low-Low-Low-Low",
		},
		{
			name:   "mixed case no punctuation",
			header: "OPENNESS medium CONSCIENTIOUSNESS high EXTRAVERSION low AGREEABLENESS medium NEUROTICISM high",
			code:   "Medium-High-Low-Medium-High",
		},
		{
			name:   "prose between fields",
			header: "Profile with openness: High and then conscientiousness: Medium while extraversion: Low, agreeableness: High, neuroticism: Medium",
			code:   "High-Medium-Low-High-Medium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Extract([]string{tt.header, "Archetype: Tester", "Some body text."})
			assert.Equal(t, "Some body text.", n.ByCode[tt.code])
		})
	}
}

func TestExtract_HeaderWithoutBodyProducesNoRecord(t *testing.T) {
	paragraphs := []string{
		"Openness: Low, Conscientiousness: Low, Extraversion: Low, Agreeableness: Low, Neuroticism: Low",
		"Archetype: Ghost",
		"Openness: High, Conscientiousness: High, Extraversion: High, Agreeableness: High, Neuroticism: High",
		"Archetype: Beacon",
		"A narrative only the second archetype has.",
	}

	n := Extract(paragraphs)

	assert.NotContains(t, n.ByCode, "Low-Low-Low-Low-Low")
	assert.NotContains(t, n.ByName, "Ghost")
	assert.Equal(t, "A narrative only the second archetype has.", n.ByCode["High-High-High-High-High"])
	assert.Equal(t, "A narrative only the second archetype has.", n.ByName["Beacon"])
}

func TestExtract_DuplicateCodeLastWins(t *testing.T) {
	header := "Openness: Medium, Conscientiousness: Medium, Extraversion: Medium, Agreeableness: Medium, Neuroticism: Medium"
	paragraphs := []string{
		header,
		"Archetype: First",
		"Original text.",
		header,
		"Archetype: Second",
		"Replacement text.",
	}

	n := Extract(paragraphs)

	assert.Equal(t, "Replacement text.", n.ByCode["Medium-Medium-Medium-Medium-Medium"])
	assert.Equal(t, "Original text.", n.ByName["First"])
	assert.Equal(t, "Replacement text.", n.ByName["Second"])
}

func TestExtract_NameLookaheadWindow(t *testing.T) {
	t.Run("name within three paragraphs is captured and skipped", func(t *testing.T) {
		paragraphs := []string{
			"Openness: High, Conscientiousness: Low, Extraversion: Low, Agreeableness: Low, Neuroticism: Low",
			"",
			"",
			"Archetype: Edge Case",
			"Body text.",
		}

		n := Extract(paragraphs)

		require.Contains(t, n.ByName, "Edge Case")
		assert.Equal(t, "Body text.", n.ByName["Edge Case"])
		assert.NotContains(t, n.ByCode["High-Low-Low-Low-Low"], "Archetype")
	})

	t.Run("name beyond the window gets a placeholder", func(t *testing.T) {
		paragraphs := []string{
			"Openness: High, Conscientiousness: Low, Extraversion: Low, Agreeableness: Low, Neuroticism: Low",
			"padding",
			"padding",
			"padding",
			"Archetype: Too Far",
			"Body text.",
		}

		n := Extract(paragraphs)

		assert.NotContains(t, n.ByName, "Too Far")
		// The label line is an ordinary paragraph here, so it lands in the buffer.
		assert.Contains(t, n.ByName, "Unknown_0")
		assert.Contains(t, n.ByCode["High-Low-Low-Low-Low"], "Archetype: Too Far")
	})
}

func TestExtract_RawParagraphTextPreserved(t *testing.T) {
	paragraphs := []string{
		"Openness: High, Conscientiousness: Low, Extraversion: Low, Agreeableness: Low, Neuroticism: Low",
		"Archetype: Keeper",
		"  indented line  ",
		"\ta tabbed line",
	}

	n := Extract(paragraphs)

	// Interior whitespace survives; only the joined text's edges are trimmed.
	assert.Equal(t, "indented line  \n\ta tabbed line", n.ByCode["High-Low-Low-Low-Low"])
}

func TestExtract_TextBeforeFirstHeaderIgnored(t *testing.T) {
	paragraphs := []string{
		"Introduction paragraph before any archetype.",
		"Openness: Low, Conscientiousness: High, Extraversion: Low, Agreeableness: High, Neuroticism: Low",
		"Archetype: Anchor",
		"The real narrative.",
	}

	n := Extract(paragraphs)

	require.Len(t, n.ByCode, 1)
	assert.Equal(t, "The real narrative.", n.ByCode["Low-High-Low-High-Low"])
}

func TestExtract_Idempotent(t *testing.T) {
	paragraphs := []string{
		"Openness: High, Conscientiousness: Low, Extraversion: Medium, Agreeableness: High, Neuroticism: Low",
		"Archetype: Starlight Wanderer",
		"Paragraph one.",
		"Paragraph two.",
	}

	first := Extract(paragraphs)
	second := Extract(paragraphs)

	assert.Equal(t, first.ByCode, second.ByCode)
	assert.Equal(t, first.ByName, second.ByName)
}

func TestLoadDocument_MissingFile(t *testing.T) {
	n := LoadDocument("testdata/does-not-exist.docx")

	assert.NotNil(t, n.ByCode)
	assert.NotNil(t, n.ByName)
	assert.Empty(t, n.ByCode)
	assert.Empty(t, n.ByName)
}
