package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/ib-77/excelsia/pkg/httptask"
	"github.com/ib-77/excelsia/pkg/pipe"
	"github.com/ib-77/excelsia/pkg/taskresult"
)

var GetCommands = []*cli.Command{
	{
		Name:      "get",
		Usage:     "Fetch a URL and print its body, or the failure",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "decode the body as JSON and pretty print it",
			},
			&cli.BoolFlag{
				Name:  "headers",
				Usage: "print response headers as a table",
			},
		},
		Action: get,
	},
}

func get(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("get requires exactly one <url>")
	}

	client, ctx, err := newClient(c)
	if err != nil {
		return err
	}

	var headers http.Header
	body, err := pipe.Pipe2(
		client.Get(c.Args().First()),
		taskresult.Tapping(func(resp *http.Response) { headers = resp.Header }),
		decoder(c.Bool("json")),
	)
	if err != nil {
		return err
	}

	r := body(ctx)
	if r.IsFailure() {
		return cli.Exit(r.String(), 1)
	}

	fmt.Println(r.Value())
	if c.Bool("headers") {
		printHeaders(headers)
	}
	return nil
}

func decoder(asJSON bool) func(taskresult.TaskResult[*http.Response]) taskresult.TaskResult[string] {
	if !asJSON {
		return httptask.ToText
	}
	return func(tr taskresult.TaskResult[*http.Response]) taskresult.TaskResult[string] {
		return taskresult.FlatMap(httptask.ToJSON[any](tr), func(v any) taskresult.TaskResult[string] {
			return taskresult.Create(func(_ context.Context) (string, error) {
				data, err := json.MarshalIndent(v, "", "  ")
				return string(data), err
			})
		})
	}
}
