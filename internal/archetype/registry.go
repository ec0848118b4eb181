package archetype

import (
	"encoding/json"
	"log/slog"
	"os"
)

// Registry maps trait codes to archetype display names. Loaded once at
// startup; read-only afterwards.
type Registry map[string]string

// DefaultRegistryFiles is the priority-ordered candidate list checked by
// LoadRegistry when no explicit file list is configured.
var DefaultRegistryFiles = []string{"archetypes_full.json", "archetypes.json"}

// fallbackRegistry is the built-in minimal mapping used when no registry file
// exists or parses to a non-empty object.
func fallbackRegistry() Registry {
	return Registry{"Low-Low-Low-Low-Low": "Aquashine"}
}

// LoadRegistry loads the trait-code to archetype-name mapping from the first
// candidate file that exists and parses to a non-empty JSON object. Missing or
// invalid files are skipped; if none qualifies the built-in fallback is used.
func LoadRegistry(candidates []string) Registry {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var reg Registry
		if err := json.Unmarshal(data, &reg); err != nil {
			slog.Warn("Skipping malformed archetype registry file",
				"file", path,
				"error", err)
			continue
		}
		if len(reg) == 0 {
			continue
		}
		slog.Info("Loaded archetype registry", "count", len(reg), "file", path)
		return reg
	}

	slog.Warn("No archetype registry file found, using built-in fallback")
	return fallbackRegistry()
}

// Name resolves the archetype display name for a trait code.
func (r Registry) Name(code string) (string, bool) {
	name, ok := r[code]
	return name, ok
}
