package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-barry/moo"
	"github.com/go-barry/moo/core"
	"github.com/segmentio/encoding/json"
	"github.com/urfave/cli/v2"
)

type flagEntry struct {
	Key            string         `json:"key"`
	State          string         `json:"state"`
	DefaultVariant string         `json:"defaultVariant"`
	Variants       map[string]any `json:"variants"`
}

type flagReport struct {
	File     string      `json:"file"`
	Flags    []flagEntry `json:"flags"`
	WithCows bool        `json:"withCows"`
}

var FlagsCommand = &cli.Command{
	Name:  "flags",
	Usage: "List the flags file and how with-cows resolves right now",
	Flags: []cli.Flag{
		configFlag,
		&cli.BoolFlag{Name: "json", Usage: "print the report as JSON"},
	},
	Action: func(c *cli.Context) error {
		config := moo.LoadRuntimeConfig(moo.RuntimeConfig{ConfigPath: c.String("config")})

		file, err := core.InstallFlagProvider(config.FlagsFile)
		if err != nil {
			return cli.Exit(fmt.Sprintf("❌ %v", err), 1)
		}

		withCows, _ := core.EvaluateBoolean(context.Background(), core.NewFlagClient(), core.FlagWithCows, false)

		report := flagReport{File: config.FlagsFile, WithCows: withCows}
		for _, key := range file.Keys() {
			def := file.Flags[key]
			state := def.State
			if state == "" {
				state = "ENABLED"
			}
			report.Flags = append(report.Flags, flagEntry{
				Key:            key,
				State:          state,
				DefaultVariant: def.DefaultVariant,
				Variants:       def.Variants,
			})
		}

		if c.Bool("json") {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println("🚩 Flags File:", report.File)
		for _, f := range report.Flags {
			variants := make([]string, 0, len(f.Variants))
			for name := range f.Variants {
				variants = append(variants, name)
			}
			sort.Strings(variants)
			fmt.Printf("   %s [%s] default=%s variants=%v\n", f.Key, f.State, f.DefaultVariant, variants)
		}
		fmt.Printf("🐄 %s: %t\n", core.FlagWithCows, report.WithCows)
		return nil
	},
}
