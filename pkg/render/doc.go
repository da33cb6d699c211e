// Package render turns fieldcheck.Feedback into HTML.
//
// Component builds a templ component for a field's messages container:
//
//	<div id="email-feedback" class="iv-errors-container iv-error" data-valid="false">
//	  <p class="iv-message">This field is required</p>
//	</div>
//
// Respond writes that component to an HTTP response. Datastar requests get a
// server-sent "datastar-patch-elements" event targeting the container id plus a
// signal patch carrying the field's validity; HTMX and plain requests get the
// HTML fragment directly.
package render
