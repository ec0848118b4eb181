package accesscode

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Store persists one-time free-access codes. A code authorizes exactly one
// successful redemption; implementations must serialize Redeem so concurrent
// attempts on the same code cannot both succeed.
type Store interface {
	// Generate creates a new unused code, persists it, and returns it.
	Generate(ctx context.Context) (string, error)

	// Redeem marks the code used and returns true if it exists and was
	// unused. Unknown or already-used codes return false with a nil error;
	// the error is reserved for storage failures.
	Redeem(ctx context.Context, code string) (bool, error)
}

// CodeLength is the length of a generated access code.
const CodeLength = 8

// newCode returns a random uppercase hexadecimal token. Collisions against
// existing codes are not checked; at 32 bits of entropy the risk is accepted.
func newCode() (string, error) {
	buf := make([]byte, CodeLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
