package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgGenerateCodeFailed  = "Failed to generate free code"
	ErrMsgBuildDocumentFailed = "Failed to generate report document"
	ErrMsgRenderFailed        = "Failed to render page"

	// Checkout failures quote the provider error verbatim after this prefix,
	// matching the surface the payment flow has always had.
	ErrMsgCheckoutPrefix = "Stripe session creation failed: "
)
