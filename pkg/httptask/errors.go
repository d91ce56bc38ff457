package httptask

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// HTTPError is the Failure produced for a response outside the 2xx range. The
// response body is buffered, so both JSON and the Response itself can still
// be read. A body that could not be read in full is kept as far as it got and
// the read error is reported by BodyErr and JSON.
type HTTPError struct {
	StatusCode int
	Status     string
	Request    *http.Request
	Response   *http.Response

	body    []byte
	bodyErr error
}

func newHTTPError(resp *http.Response, req *http.Request) *HTTPError {
	var (
		body    []byte
		bodyErr error
	)
	if resp.Body != nil {
		body, bodyErr = io.ReadAll(resp.Body)
		_ = resp.Body.Close()
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}

	return &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     text,
		Request:    req,
		Response:   resp,
		body:       body,
		bodyErr:    errors.Wrap(bodyErr, "could not read response body"),
	}
}

func (e *HTTPError) Error() string {
	reason := "an unknown error"
	if e.StatusCode != 0 || e.Status != "" {
		reason = "status code " + strings.TrimSpace(fmt.Sprintf("%d %s", e.StatusCode, e.Status))
	}
	return "Request failed with " + reason
}

// Body returns the buffered response body, which is partial when BodyErr is
// not nil.
func (e *HTTPError) Body() []byte {
	return e.body
}

func (e *HTTPError) BodyErr() error {
	return e.bodyErr
}

// JSON decodes the response body into v. A body that was not read in full is
// not decoded.
func (e *HTTPError) JSON(v any) error {
	if e.bodyErr != nil {
		return e.bodyErr
	}
	return json.Unmarshal(e.body, v)
}
