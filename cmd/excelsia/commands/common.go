package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/ib-77/excelsia/pkg/httptask"
)

var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML file with baseURL, timeout, headers, rateLimit and burst",
		EnvVars: []string{"EXCELSIA_CONFIG"},
	},
	&cli.IntFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log verbosity, 1 logs every request and response",
	},
}

func newLogger(c *cli.Context) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(os.Stderr, prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: c.Int("verbose")})
}

// newClient builds the client from --config, and the ctx carrying the logger
// every request logs through.
func newClient(c *cli.Context) (*httptask.Client, context.Context, error) {
	cfg := httptask.Config{}
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = httptask.LoadConfigFile(path); err != nil {
			return nil, nil, err
		}
	}

	log := newLogger(c)
	return httptask.New(cfg, httptask.WithLogger(log)), logr.NewContext(c.Context, log), nil
}

func formatTable(table *tablewriter.Table) {
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("-")
	table.SetColumnSeparator(" ")
	table.SetAutoWrapText(false)
}

func printHeaders(h http.Header) {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Header", "Value"})
	for _, k := range keys {
		table.Append([]string{k, strings.Join(h[k], ", ")})
	}
	formatTable(table)
	table.Render()
}
