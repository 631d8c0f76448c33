package config

import (
	"os"
	"path/filepath"

	"github.com/paularlott/iconset/internal/log"

	"github.com/paularlott/cli"
)

const CONFIG_ENV_PREFIX = "ICONSET"
const CONFIG_FILE = "iconset.toml"
const CONFIG_DIR = "iconset"

const DEFAULT_ASSETS_DIR = "assets"

// IconsConfig holds the settings that shape the icon listing
type IconsConfig struct {
	AssetsDir          string
	Format             string
	BrandColor         string
	EnableDefaultIcons bool
	Manifests          []string
}

// ConfigPaths returns the folders searched for the configuration file
func ConfigPaths() []string {
	paths := []string{"."}

	home, err := os.UserHomeDir()
	if err == nil {
		paths = append(paths, home)
		paths = append(paths, filepath.Join(home, ".config", CONFIG_DIR))
	}

	return paths
}

func InitCommonConfig(cmd *cli.Command) {
	logLevel := cmd.GetString("log-level")
	log.Configure(logLevel, cmd.GetString("log-format"), nil)
}

// GetIconsConfig collects the icon settings from the command flags
func GetIconsConfig(cmd *cli.Command) IconsConfig {
	cfg := IconsConfig{
		AssetsDir:          cmd.GetString("assets-dir"),
		Format:             cmd.GetString("format"),
		BrandColor:         cmd.GetString("brand-color"),
		EnableDefaultIcons: !cmd.GetBool("no-default-icons"),
		Manifests:          cmd.GetStringSlice("manifest"),
	}

	if cfg.AssetsDir == "" {
		cfg.AssetsDir = DEFAULT_ASSETS_DIR
	}

	return cfg
}
