// Package config defines the command line and configuration file surface.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/kamsheffield/graphql-code-generator-community/internal/cmd"
	"github.com/kamsheffield/graphql-code-generator-community/internal/log"
)

// CLI is the root command parsed by kong. Flag values may also come from
// OPMETA_* environment variables and from JSON, YAML or TOML config files.
type CLI struct {
	Log        log.Config       `embed:"" prefix:"log."`
	ConfigFile string           `name:"config" help:"Path to a configuration file (json, yaml or toml)" env:"OPMETA_CONFIG"`
	Version    kong.VersionFlag `help:"Print version and exit"`

	Generate cmd.Generate      `cmd:"" help:"Generate operation metadata from GraphQL documents"`
	Inspect  cmd.Inspect       `cmd:"" help:"Print analyzed operations and resolved input types"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
