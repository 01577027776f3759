package cli

import (
	"fmt"

	"github.com/go-barry/moo"
	"github.com/go-barry/moo/core"
	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate the flags file",
	Flags: []cli.Flag{configFlag},
	Action: func(c *cli.Context) error {
		config := moo.LoadRuntimeConfig(moo.RuntimeConfig{ConfigPath: c.String("config")})

		file, err := core.LoadFlagFile(config.FlagsFile)
		if err != nil {
			fmt.Printf("❌ %s → %v\n", config.FlagsFile, err)
			return cli.Exit("flags file failed validation", 1)
		}

		for _, key := range file.Keys() {
			fmt.Printf("✅ %s\n", key)
		}

		def, ok := file.Flags[core.FlagWithCows]
		if !ok {
			fmt.Printf("⚠️  %s is not defined, GET / will always answer without cows\n", core.FlagWithCows)
		} else if _, isBool := def.Variants[def.DefaultVariant].(bool); !isBool {
			fmt.Printf("❌ %s → default variant %q is not a boolean\n", core.FlagWithCows, def.DefaultVariant)
			return cli.Exit("flags file failed validation", 1)
		}

		fmt.Println("✅ Flags file validated successfully.")
		return nil
	},
}
