package main

import (
	"log"
	"os"

	moocli "github.com/go-barry/moo/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "moo",
		Usage: "Hello, world! with cows behind a feature flag",
		Commands: []*clilib.Command{
			moocli.DevCommand,
			moocli.ProdCommand,
			moocli.SayCommand,
			moocli.FlagsCommand,
			moocli.CheckCommand,
			moocli.InfoCommand,
		},
	}
	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
