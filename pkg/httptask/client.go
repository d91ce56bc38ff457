package httptask

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/ib-77/excelsia/pkg/task"
	"github.com/ib-77/excelsia/pkg/taskresult"
)

// Client turns requests into TaskResults. A Client is safe for concurrent
// use.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     logr.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used when ctx carries none. Requests and
// responses are logged at V(1).
func WithLogger(log logr.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithRateLimit overrides the rate limit from Config.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, max(burst, 1))
	}
}

func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logr.Discard(),
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.Burst, 1))
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultClient has no base URL, timeout or rate limit.
var DefaultClient = New(Config{})

// Of sends req with DefaultClient.
func Of(req *http.Request) taskresult.TaskResult[*http.Response] {
	return DefaultClient.Do(req)
}

// Do returns a TaskResult that sends req each time it is invoked. Transport
// errors become a Failure carrying the original error, and a response outside
// the 2xx range becomes a Failure carrying an *HTTPError. The caller owns the
// body of a successful response.
func (c *Client) Do(req *http.Request) taskresult.TaskResult[*http.Response] {
	return FailWhenNotOk(taskresult.FromTask(c.send(req)), req)
}

// Get builds a GET request for rawURL and sends it. A malformed URL resolves
// to a Failure.
func (c *Client) Get(rawURL string) taskresult.TaskResult[*http.Response] {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return taskresult.Fail[*http.Response](err)
	}
	return c.Do(req)
}

func (c *Client) send(req *http.Request) task.Task[*http.Response] {
	t := task.Create(func(ctx context.Context) (*http.Response, error) {
		log := c.logger(ctx)

		r, err := c.prepare(ctx, req)
		if err != nil {
			return nil, err
		}

		log.V(1).Info("sending request", "method", r.Method, "url", r.URL.String(), "headers", flatten(r.Header))
		resp, err := c.http.Do(r)
		if err != nil {
			log.Error(err, "request failed", "method", r.Method, "url", r.URL.String())
			return nil, err
		}
		log.V(1).Info("received response", "method", r.Method, "url", r.URL.String(),
			"status", resp.StatusCode, "headers", flatten(resp.Header))
		return resp, nil
	})

	if c.limiter != nil {
		return task.Limit(t, c.limiter)
	}
	return t
}

// prepare binds req to ctx, resolves it against the base URL and applies the
// default headers. The body is rewound through GetBody so that req can be
// sent again.
func (c *Client) prepare(ctx context.Context, req *http.Request) (*http.Request, error) {
	r := req.Clone(ctx)

	if req.GetBody != nil && req.Body != nil && req.Body != http.NoBody {
		body, err := req.GetBody()
		if err != nil {
			return nil, errors.Wrap(err, "could not rewind request body")
		}
		r.Body = body
	}

	if c.cfg.BaseURL != "" && !r.URL.IsAbs() {
		base, err := url.Parse(c.cfg.BaseURL)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid base URL %q", c.cfg.BaseURL)
		}
		r.URL = base.ResolveReference(r.URL)
		r.Host = r.URL.Host
	}

	for k, v := range c.cfg.Headers {
		if r.Header.Get(k) == "" {
			r.Header.Set(k, v)
		}
	}
	return r, nil
}

func (c *Client) logger(ctx context.Context) logr.Logger {
	if log, err := logr.FromContext(ctx); err == nil {
		return log
	}
	return c.log
}

func flatten(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = strings.Join(v, ", ")
	}
	return out
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// FailWhenNotOk turns a response outside the 2xx range into a Failure
// carrying an *HTTPError for req.
func FailWhenNotOk(tr taskresult.TaskResult[*http.Response], req *http.Request) taskresult.TaskResult[*http.Response] {
	return taskresult.FlatMap(tr, func(resp *http.Response) taskresult.TaskResult[*http.Response] {
		if ok(resp) {
			return taskresult.Of(resp)
		}
		return taskresult.Fail[*http.Response](newHTTPError(resp, req))
	})
}

// FailingWhenNotOk is the curried form of FailWhenNotOk.
func FailingWhenNotOk(req *http.Request) func(taskresult.TaskResult[*http.Response]) taskresult.TaskResult[*http.Response] {
	return func(tr taskresult.TaskResult[*http.Response]) taskresult.TaskResult[*http.Response] {
		return FailWhenNotOk(tr, req)
	}
}

// ToJSON decodes the body of a successful response into T and closes it. A
// body that does not decode resolves to a Failure.
func ToJSON[T any](tr taskresult.TaskResult[*http.Response]) taskresult.TaskResult[T] {
	return taskresult.FlatMap(tr, func(resp *http.Response) taskresult.TaskResult[T] {
		return taskresult.Create(func(context.Context) (T, error) {
			defer resp.Body.Close()

			var v T
			err := json.NewDecoder(resp.Body).Decode(&v)
			return v, errors.Wrap(err, "could not decode response body")
		})
	})
}

// ToText reads the body of a successful response and closes it.
func ToText(tr taskresult.TaskResult[*http.Response]) taskresult.TaskResult[string] {
	return taskresult.FlatMap(tr, func(resp *http.Response) taskresult.TaskResult[string] {
		return taskresult.Create(func(context.Context) (string, error) {
			defer resp.Body.Close()

			b, err := io.ReadAll(resp.Body)
			return string(b), errors.Wrap(err, "could not read response body")
		})
	})
}

// Status extracts the status code of an *HTTPError failure, or 0 when err is
// not one.
func Status(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}
