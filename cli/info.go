package cli

import (
	"fmt"
	"os"

	"github.com/go-barry/moo"
	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print the effective configuration",
	Flags: []cli.Flag{configFlag},
	Action: func(c *cli.Context) error {
		config := moo.LoadRuntimeConfig(moo.RuntimeConfig{ConfigPath: c.String("config")})

		flagsStatus := "found"
		if _, err := os.Stat(config.FlagsFile); err != nil {
			flagsStatus = "missing"
		}

		fmt.Println("🔌 Port:", config.Port)
		fmt.Printf("🚩 Flags File: %s (%s)\n", config.FlagsFile, flagsStatus)
		fmt.Println("👀 Watch Flags:", config.ShouldWatchFlags())
		fmt.Println("🐄 Cow:", config.Cow)
		fmt.Println("💬 Balloon Width:", config.BalloonWidth)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println("🔁 Debug Logs Enabled:", config.DebugLogs)
		fmt.Println("📝 Log Format:", config.LogFormat)
		return nil
	},
}
