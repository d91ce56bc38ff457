package commands

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var LoadCommands = []*cli.Command{
	{
		Name:      "load",
		Usage:     "Fetch a script relative to --base and print its source",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "base",
				Usage:    "base URL the script path is joined to",
				Required: true,
			},
		},
		Action: load,
	},
}

func load(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("load requires exactly one <path>")
	}

	client, ctx, err := newClient(c)
	if err != nil {
		return err
	}

	r := client.LoadScript(c.String("base"), c.Args().First(), func(_ context.Context, src string) error {
		_, err := fmt.Println(src)
		return err
	})(ctx)
	if r.IsFailure() {
		return cli.Exit("", 1)
	}
	return nil
}
