package render

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/fieldcheck"
)

const (
	// DataStarAcceptHeader is the Accept header value sent by Datastar.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarQueryParam is the query parameter Datastar uses for signals.
	DataStarQueryParam = "datastar"

	// HXRequest is the request header set by HTMX.
	HXRequest = "HX-Request"
	// HXReswap overrides the swap strategy of an HTMX request.
	HXReswap = "HX-Reswap"
)

// IsDataStar reports whether r was issued by Datastar.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// IsHTMX reports whether r was issued by HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}

// SignalName returns the Datastar signal that holds a field's validity.
func SignalName(field string) string {
	return field + "Valid"
}

// Respond writes fb for the requesting client with the given status code.
// Datastar requests always receive 200 because the status of an event stream
// is not inspected by the client; the outcome travels in the patched element
// and the validity signal.
func Respond(w http.ResponseWriter, r *http.Request, status int, fb fieldcheck.Feedback) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		if err := sse.PatchElementTempl(Component(fb), datastar.WithSelector("#"+fb.ContainerID())); err != nil {
			return err
		}
		if fb.Field == "" {
			return nil
		}
		signals, err := json.Marshal(map[string]bool{SignalName(fb.Field): fb.Valid})
		if err != nil {
			return err
		}
		return sse.PatchSignals(signals)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if IsHTMX(r) {
		w.Header().Set(HXReswap, "outerHTML")
	}
	w.WriteHeader(status)
	return Component(fb).Render(r.Context(), w)
}
