package httpx

import "net/http"

// IsFetch reports whether the request came from the page script rather than a form submit.
func IsFetch(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "fetch"
}
