// Package greeting serves the fixed greeting on the root path.
package greeting

import (
	"io"
	"net/http"
)

// Body is the exact response body returned for every request. Deployment
// smoke tests compare against this literal, so it must not change shape.
const Body = "Hello world"

// Handler answers every request with the fixed greeting and a 200 status.
// Nothing from the request influences the response, so repeated and
// concurrent calls produce identical output.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, Body)
}
