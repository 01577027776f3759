package core

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/open-feature/go-sdk/openfeature"
	"github.com/open-feature/go-sdk/openfeature/memprovider"
	"gopkg.in/yaml.v3"
)

const FlagClientName = "moo"

type FlagFile struct {
	Flags map[string]FlagDefinition `yaml:"flags"`
}

type FlagDefinition struct {
	State          string         `yaml:"state"`
	DefaultVariant string         `yaml:"defaultVariant"`
	Variants       map[string]any `yaml:"variants"`
}

var SetFlagProvider = openfeature.SetProviderAndWait

var NewFlagClient = func() FlagEvaluator {
	return openfeature.NewClient(FlagClientName)
}

func LoadFlagFile(path string) (*FlagFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file FlagFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFlagFile, path, err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFlagFile, path, err)
	}
	return &file, nil
}

func (f *FlagFile) Validate() error {
	if len(f.Flags) == 0 {
		return fmt.Errorf("no flags defined")
	}
	for _, key := range f.Keys() {
		def := f.Flags[key]
		switch strings.ToUpper(def.State) {
		case "", string(memprovider.Enabled), string(memprovider.Disabled):
		default:
			return fmt.Errorf("flag %q: unknown state %q", key, def.State)
		}
		if len(def.Variants) == 0 {
			return fmt.Errorf("flag %q: no variants", key)
		}
		if _, ok := def.Variants[def.DefaultVariant]; !ok {
			return fmt.Errorf("flag %q: default variant %q not in variants", key, def.DefaultVariant)
		}
	}
	return nil
}

func (f *FlagFile) Keys() []string {
	keys := make([]string, 0, len(f.Flags))
	for k := range f.Flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BooleanDefault reports what a boolean flag resolves to without targeting:
// its default variant when enabled, fallback when disabled, missing or not
// a boolean.
func (f *FlagFile) BooleanDefault(key string, fallback bool) bool {
	def, ok := f.Flags[key]
	if !ok || strings.EqualFold(def.State, string(memprovider.Disabled)) {
		return fallback
	}
	value, ok := def.Variants[def.DefaultVariant].(bool)
	if !ok {
		return fallback
	}
	return value
}

func (f *FlagFile) InMemoryFlags() map[string]memprovider.InMemoryFlag {
	flags := make(map[string]memprovider.InMemoryFlag, len(f.Flags))
	for key, def := range f.Flags {
		state := memprovider.Enabled
		if strings.EqualFold(def.State, string(memprovider.Disabled)) {
			state = memprovider.Disabled
		}
		flags[key] = memprovider.InMemoryFlag{
			Key:            key,
			State:          state,
			DefaultVariant: def.DefaultVariant,
			Variants:       def.Variants,
		}
	}
	return flags
}

// InstallFlagProvider loads the flags file and blocks until an in-memory
// provider built from it is ready to serve evaluations.
func InstallFlagProvider(path string) (*FlagFile, error) {
	file, err := LoadFlagFile(path)
	if err != nil {
		return nil, err
	}
	if err := SetFlagProvider(memprovider.NewInMemoryProvider(file.InMemoryFlags())); err != nil {
		return nil, fmt.Errorf("install flag provider: %w", err)
	}
	return file, nil
}
