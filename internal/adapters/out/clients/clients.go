// Package clients holds the HTTP clients for the collaborating services:
// parcels, vehicles, and pricing. All three speak JSON over plain HTTP.
//
// A 404 from a collaborator maps to errs.ObjectNotFoundError, which the
// application layer treats as a terminal precondition failure. Any other
// non-2xx status is a transport error.
package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// errStatus reports an unexpected HTTP status from a collaborator.
type errStatus struct {
	service string
	status  int
}

func (e *errStatus) Error() string {
	return fmt.Sprintf("%s service returned status %d", e.service, e.status)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}

func doGet(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return client.Do(req)
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
