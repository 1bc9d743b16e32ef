package fetch

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

const maxRedirects = 5

var client = &fasthttp.Client{
	Name:                "poster-atlas",
	MaxResponseBodySize: 64 << 20,
}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Get performs one GET request and returns the body. A zero timeout waits
// for as long as the server takes.
func Get(url string, timeout time.Duration) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if timeout > 0 {
		req.SetTimeout(timeout)
	}
	if err := client.DoRedirects(req, resp, maxRedirects); err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, &StatusError{URL: url, Code: code}
	}

	// The response is released on return, so the body must be copied.
	body := append([]byte(nil), resp.Body()...)
	return body, nil
}
