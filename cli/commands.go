package cli

import (
	"github.com/go-barry/moo"

	"github.com/urfave/cli/v2"
)

var portFlag = &cli.IntFlag{
	Name:  "port",
	Usage: "port to listen on (overrides the config file)",
}

var configFlag = &cli.StringFlag{
	Name:  "config",
	Value: moo.DefaultConfigPath,
	Usage: "path to the YAML config file",
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Start the server in dev mode (debug logs, flag change websocket)",
	Flags: []cli.Flag{portFlag, configFlag},
	Action: func(c *cli.Context) error {
		moo.Start(moo.RuntimeConfig{
			Env:        "dev",
			Port:       c.Int("port"),
			ConfigPath: c.String("config"),
		})
		return nil
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Start the server in production mode",
	Flags: []cli.Flag{portFlag, configFlag},
	Action: func(c *cli.Context) error {
		moo.Start(moo.RuntimeConfig{
			Env:        "prod",
			Port:       c.Int("port"),
			ConfigPath: c.String("config"),
		})
		return nil
	},
}
