package http

import "net/http"

// NotFoundHandler answers any route the mux does not know with the same
// JSON error envelope the record endpoints use.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	})
}
