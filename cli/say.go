package cli

import (
	"fmt"
	"strings"

	"github.com/go-barry/moo"
	"github.com/go-barry/moo/core"
	"github.com/urfave/cli/v2"
)

var SayCommand = &cli.Command{
	Name:      "say",
	Usage:     "Print text the way GET / renders it when with-cows is on",
	ArgsUsage: "[text (optional)]",
	Flags: []cli.Flag{
		configFlag,
		&cli.StringFlag{Name: "cow", Usage: "cow file to use (default from config)"},
		&cli.UintFlag{Name: "width", Usage: "balloon width (default from config)"},
	},
	Action: func(c *cli.Context) error {
		config := moo.LoadRuntimeConfig(moo.RuntimeConfig{ConfigPath: c.String("config")})
		if c.IsSet("cow") {
			config.Cow = c.String("cow")
		}
		if c.IsSet("width") {
			config.BalloonWidth = c.Uint("width")
		}

		text := core.Greeting
		if c.Args().Len() > 0 {
			text = strings.Join(c.Args().Slice(), " ")
		}

		out, err := core.NewCowRenderer(config, nil).Say(text)
		if err != nil {
			return cli.Exit(fmt.Sprintf("❌ cannot render with cow %q: %v", config.Cow, err), 1)
		}

		fmt.Println(out)
		return nil
	},
}
