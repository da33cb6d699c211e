package formhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/fieldcheck"
	"github.com/dmitrymomot/fieldcheck/pkg/formspec"
	"github.com/dmitrymomot/fieldcheck/pkg/httpserver"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/message"
	"github.com/dmitrymomot/fieldcheck/pkg/render"
	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
)

// Handler validates fields of one form definition.
type Handler struct {
	spec   *formspec.Spec
	rules  *fieldcheck.RuleSet
	log    *slog.Logger
	checks []httpserver.Check
}

// Option configures a Handler.
type Option func(*Handler)

// WithRuleSet supplies the rules the definition may reference.
// Defaults to a set holding only the built-in rules.
func WithRuleSet(rs *fieldcheck.RuleSet) Option {
	return func(h *Handler) {
		if rs != nil {
			h.rules = rs
		}
	}
}

// WithLogger sets the logger for requests and validation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithHealthChecks adds readiness checks to /healthz.
func WithHealthChecks(checks ...httpserver.Check) Option {
	return func(h *Handler) {
		h.checks = append(h.checks, checks...)
	}
}

// New returns a handler for spec. A definition that references rules missing
// from the rule set is logged here and answered with 500 when such a field is
// validated.
func New(spec *formspec.Spec, opts ...Option) *Handler {
	h := &Handler{
		spec:  spec,
		rules: fieldcheck.NewRuleSet(),
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.spec == nil {
		h.spec = &formspec.Spec{Settings: fieldcheck.DefaultSettings()}
	}
	if err := h.spec.Verify(h.rules); err != nil {
		h.log.Warn("form definition references unregistered rules", logger.Error(err))
	}
	return h
}

// Router returns the HTTP routes with request ID, recovery and access log
// middleware.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthHandler(h.log, h.checks...))
	r.Get("/fields", h.listFields)
	r.Post("/fields/{field}/validate", h.validateField)

	return r
}

type fieldInfo struct {
	Name  string   `json:"name"`
	Rules []string `json:"rules"`
}

func (h *Handler) listFields(w http.ResponseWriter, r *http.Request) {
	fields := make([]fieldInfo, 0, len(h.spec.Fields))
	for _, f := range h.spec.Fields {
		fields = append(fields, fieldInfo{Name: f.Name, Rules: f.Rules.Names()})
	}
	writeJSON(w, http.StatusOK, map[string]any{"fields": fields})
}

func (h *Handler) validateField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "field")
	log := h.log.With(logger.Field(name))

	field, err := h.spec.Field(name)
	if err != nil {
		http.Error(w, "unknown field", http.StatusNotFound)
		return
	}

	resolver, err := h.resolver(r)
	if err != nil {
		log.WarnContext(ctx, "unreadable submission", logger.Error(err))
		http.Error(w, "malformed submission", http.StatusBadRequest)
		return
	}

	v, err := fieldcheck.NewValidatorFor(resolver, name, field.Config(),
		fieldcheck.WithSettings(h.spec.Settings),
		fieldcheck.WithRuleSet(h.rules),
		fieldcheck.WithLogger(log),
	)
	if err != nil {
		log.ErrorContext(ctx, "validator setup failed", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res, err := v.Validate()
	if err != nil {
		log.ErrorContext(ctx, "validation aborted", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if !res.Valid() {
		status = http.StatusUnprocessableEntity
	}
	log.DebugContext(ctx, "field validated", logger.Valid(res.Valid()), logger.Rule(res.Rule))

	if err := render.Respond(w, r, status, res.Feedback); err != nil {
		log.ErrorContext(ctx, "render feedback", logger.Error(err))
	}
}

// resolver reads the submission. Datastar sends its signals as JSON unless
// the element asks for form encoding, so both shapes are accepted. A field
// missing from the submission validates as an empty value.
func (h *Handler) resolver(r *http.Request) (fieldcheck.Resolver, error) {
	if render.IsDataStar(r) && !isFormEncoded(r) {
		signals := map[string]any{}
		if err := datastar.ReadSignals(r, &signals); err != nil {
			return nil, err
		}
		return fieldcheck.ResolverFunc(func(selector string) (fieldcheck.ValueSource, error) {
			name := fieldcheck.SelectorName(selector)
			var value string
			if v, ok := signals[name]; ok && v != nil {
				value = message.Stringify(v)
			}
			return fieldcheck.StaticValueIn(value, name+"-feedback"), nil
		}), nil
	}

	form, err := fieldcheck.FromRequest(r)
	if err != nil {
		return nil, err
	}
	return fieldcheck.ResolverFunc(func(selector string) (fieldcheck.ValueSource, error) {
		src, err := form.Resolve(selector)
		if errors.Is(err, fieldcheck.ErrConfiguration) {
			name := fieldcheck.SelectorName(selector)
			if _, ok := form[name]; !ok && name != "" {
				return fieldcheck.StaticValueIn("", name+"-feedback"), nil
			}
		}
		return src, err
	}), nil
}

func isFormEncoded(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.String("remote", r.RemoteAddr),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
