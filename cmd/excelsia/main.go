package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/excelsia/cmd/excelsia/commands"
)

var version = "dev"

func main() {
	app := cli.NewApp()
	app.Name = "excelsia"
	app.Usage = "Run HTTP requests as railway-style task pipelines"
	app.Version = version
	app.EnableBashCompletion = true
	app.Flags = commands.GlobalFlags
	commandSets := [][]*cli.Command{
		commands.GetCommands,
		commands.LoadCommands,
	}
	for _, cmds := range commandSets {
		app.Commands = append(app.Commands, cmds...)
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
