// Package formhandler serves declarative field validation over HTTP.
//
// Routes:
//
//	POST /fields/{field}/validate  validate one submitted field
//	GET  /fields                   list defined fields and their rule names
//	GET  /healthz                  liveness
//
// The validate endpoint reads the field from the submitted form (or from the
// Datastar signals of a Datastar request), runs the field's rules from the
// loaded form definition and answers with rendered feedback: 200 when the
// value is valid, 422 with the first failure message when it is not. Unknown
// fields are 404; a definition that references an unregistered rule is 500.
//
//	h := formhandler.New(spec, formhandler.WithLogger(log))
//	srv.Run(ctx, h.Router())
package formhandler
