package handler

import (
	"net/http"

	"github.com/morrowland/archetype-report/internal/logger"
	"github.com/morrowland/archetype-report/internal/metrics"
	"github.com/morrowland/archetype-report/internal/payment"
)

// DefaultTraitCode is used when checkout is reached without a trait code.
const DefaultTraitCode = "Medium-Medium-Medium-Medium-Medium"

// HandleCreateCheckoutSession creates a payment session for the report and
// redirects the client to the provider's hosted checkout page. Provider
// failures surface verbatim with a server-error status; there is no retry.
func HandleCreateCheckoutSession(gateway payment.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		code := r.URL.Query().Get("code")
		if code == "" {
			code = DefaultTraitCode
		}

		checkoutURL, err := gateway.CreateSession(r.Context(), code)
		if err != nil {
			metrics.CheckoutSessions.WithLabelValues(metrics.ResultError).Inc()
			log.Error("Checkout session creation failed", "trait_code", code, "error", err)
			http.Error(w, ErrMsgCheckoutPrefix+err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.CheckoutSessions.WithLabelValues(metrics.ResultCreated).Inc()
		log.Info("Checkout session created", "trait_code", code)
		http.Redirect(w, r, checkoutURL, http.StatusFound)
	}
}
