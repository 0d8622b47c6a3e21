// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cliconfig loads defaults for command-line flags from an optional
// YAML config file and PDF_TOOLS_* environment variables.
//
// Precedence: flag, environment, config file, flag default.
package cliconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read by the commands.
	EnvPrefix = "PDF_TOOLS"

	configName = "pdf-tools"
)

// Load configures v to read cfgFile, or pdf-tools.yaml from the working
// directory or ~/.config/pdf-tools/ when cfgFile is empty. A missing default
// config file is not an error; a missing explicit one is. The file used, if
// any, is announced on stderr.
func Load(v *viper.Viper, cfgFile string, stderr io.Writer) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	fmt.Fprintln(stderr, "Using config file:", v.ConfigFileUsed())
	return nil
}

// BindFlags binds the named flags of fs to keys of the same name in v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("binding flag %q: no such flag", name)
		}
		if err := v.BindPFlag(name, f); err != nil {
			return fmt.Errorf("binding flag %q: %w", name, err)
		}
	}
	return nil
}
