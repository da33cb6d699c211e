// Package requestid tags each request with a correlation ID.
//
// The middleware reuses a well-formed incoming X-Request-ID header or
// generates a UUIDv4, stores the ID in the request context and echoes it in
// the response header. Extractor feeds the ID into pkg/logger so every record
// logged with the request context carries request_id:
//
//	log := logger.New(logger.WithContextExtractors(requestid.Extractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
