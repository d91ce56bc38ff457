package httptask

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	"github.com/ib-77/excelsia/pkg/taskresult"
)

// LoadScript fetches base+path as text and hands the source to run. A fetch
// that fails is logged and resolves to a Failure without calling run; an
// error from run resolves to a Failure as well. Invoking the result never
// panics.
func (c *Client) LoadScript(base, path string, run func(ctx context.Context, src string) error) taskresult.TaskResult[string] {
	full, err := url.JoinPath(base, path)
	if err != nil {
		return taskresult.Fail[string](errors.Wrapf(err, "invalid script location %s %s", base, path))
	}

	fetched := taskresult.Create(func(ctx context.Context) (string, error) {
		r := ToText(c.Get(full))(ctx)
		if r.IsFailure() {
			c.logger(ctx).Error(r.Err(), "could not load script", "url", full)
		}
		return r.Unwrap()
	})

	return taskresult.FlatMap(fetched, func(src string) taskresult.TaskResult[string] {
		return taskresult.Create(func(ctx context.Context) (string, error) {
			if err := run(ctx, src); err != nil {
				return src, errors.Wrapf(err, "script %s", full)
			}
			return src, nil
		})
	})
}
