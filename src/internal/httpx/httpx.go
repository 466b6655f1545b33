package httpx

import "net/http"

// Doer is the minimal HTTP client interface used for outbound requests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// UserAgent identifies this tool on all outbound HTTP.
const UserAgent = "untl2zotero/1.0 (+https://digital.library.unt.edu)"

// SetUA sets the UserAgent header on the request.
func SetUA(req *http.Request) {
	if req != nil {
		req.Header.Set("User-Agent", UserAgent)
	}
}
