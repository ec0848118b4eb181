package payment

import "context"

// Gateway creates hosted checkout sessions for report purchases. The caller
// redirects the user to the returned URL; payment collection happens entirely
// on the provider's side.
type Gateway interface {
	// CreateSession starts a checkout for the report identified by the trait
	// code and returns the provider's hosted checkout URL.
	CreateSession(ctx context.Context, traitCode string) (string, error)
}
