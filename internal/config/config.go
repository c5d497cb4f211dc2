// Package config supplies command-line defaults from the environment.
//
// Values come from COLOURNAME_* variables, optionally pre-loaded from a .env
// file. Variables already present in the process environment take precedence
// over the file, and flags given on the command line take precedence over both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// Environment variables read by Load.
const (
	EnvSet        = "COLOURNAME_SET"
	EnvFormat     = "COLOURNAME_FORMAT"
	EnvOutput     = "COLOURNAME_OUTPUT"
	EnvPaletteDir = "COLOURNAME_PALETTE_DIR"
)

// Flag names the environment binds to.
const (
	FlagSet        = "color-set"
	FlagColors     = "colors"
	FlagFormat     = "format"
	FlagOutput     = "output"
	FlagPaletteDir = "palette-dir"
)

// Env holds defaults read from the environment. Empty fields are unset.
type Env struct {
	Set        string
	Format     string
	Output     string // comma-separated field list
	PaletteDir string
}

// Load reads the given dotenv files into the process environment, skipping any
// that do not exist, and returns the resulting defaults.
func Load(files ...string) (Env, error) {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Env{}, fmt.Errorf("failed to stat env file %s: %w", file, err)
		}
		if err := godotenv.Load(file); err != nil {
			return Env{}, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}
	return FromLookup(os.LookupEnv), nil
}

// FromLookup builds Env using lookup to read each variable.
func FromLookup(lookup func(string) (string, bool)) Env {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	return Env{
		Set:        get(EnvSet),
		Format:     get(EnvFormat),
		Output:     get(EnvOutput),
		PaletteDir: get(EnvPaletteDir),
	}
}

// Apply sets every flag in flags that was not given on the command line from
// the matching environment value. A custom palette given with --colors
// suppresses the set default. Flags missing from the set are skipped.
func (e Env) Apply(flags *pflag.FlagSet) error {
	bindings := []struct {
		flag  string
		value string
	}{
		{FlagSet, e.Set},
		{FlagFormat, e.Format},
		{FlagOutput, e.Output},
		{FlagPaletteDir, e.PaletteDir},
	}

	for _, b := range bindings {
		if b.value == "" || flags.Lookup(b.flag) == nil || flags.Changed(b.flag) {
			continue
		}
		if b.flag == FlagSet && flags.Changed(FlagColors) {
			continue
		}
		if err := flags.Set(b.flag, b.value); err != nil {
			return fmt.Errorf("invalid value %q from environment for --%s: %w", b.value, b.flag, err)
		}
	}
	return nil
}
