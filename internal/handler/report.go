package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/morrowland/archetype-report/internal/accesscode"
	"github.com/morrowland/archetype-report/internal/logger"
	"github.com/morrowland/archetype-report/internal/metrics"
	"github.com/morrowland/archetype-report/internal/report"
)

// HandleReport decides how a report request gets unlocked. A valid free code
// redeems and goes straight to the rendered report; anything else falls
// through to the paid checkout path. Redemption failures are silent — the
// user simply lands on checkout.
func HandleReport(store accesscode.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		q := r.URL.Query()
		code := q.Get("code")
		freeKey := q.Get("free")

		if freeKey != "" {
			ok, err := store.Redeem(r.Context(), freeKey)
			if err != nil {
				log.Error("Free code redemption failed", "error", err)
				metrics.CodeRedemptions.WithLabelValues(metrics.ResultError).Inc()
			} else if ok {
				metrics.CodeRedemptions.WithLabelValues(metrics.ResultAccepted).Inc()
				log.Info("Free code redeemed", "free_code", freeKey, "trait_code", code)
				http.Redirect(w, r, renderReportURL(code), http.StatusFound)
				return
			} else {
				metrics.CodeRedemptions.WithLabelValues(metrics.ResultRejected).Inc()
				log.Warn("Invalid or used free code", "free_code", freeKey)
			}
		}

		http.Redirect(w, r, "/create-checkout-session?code="+url.QueryEscape(code), http.StatusFound)
	}
}

func renderReportURL(code string) string {
	return "/api/render-report?code=" + url.QueryEscape(code) + "&paid=true"
}

// HandleRenderReport renders the report page for a trait code: full when
// paid=true (case-insensitive literal), locked preview otherwise.
//
// The paid flag is trusted as asserted: it is set by the payment provider's
// success redirect or by a code redemption, with no session or signature
// binding it to an actual payment. Any client can forge it. Documented as a
// known gap rather than silently relied on; see the gateway notes.
func HandleRenderReport(svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		code := q.Get("code")
		paid := strings.EqualFold(q.Get("paid"), "true")

		rep := svc.BuildReport(code, paid)

		mode := metrics.ModeLocked
		if paid {
			mode = metrics.ModeFull
		}
		metrics.ReportsRendered.WithLabelValues(mode).Inc()

		logger.FromContext(r.Context()).Debug("Rendering report",
			"trait_code", code,
			"archetype", rep.Archetype,
			"paid", paid)

		renderTemplate(w, r, "detailed_report.html", reportPage{
			SocialLinks: socials(),
			Report:      rep,
		})
	}
}
