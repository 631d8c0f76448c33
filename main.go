package main

import (
	"context"
	"fmt"
	"os"

	"github.com/paularlott/iconset/build"
	"github.com/paularlott/iconset/command"
	"github.com/paularlott/iconset/internal/brand"
	"github.com/paularlott/iconset/internal/config"
	"github.com/paularlott/iconset/internal/log"
	"github.com/paularlott/iconset/internal/output"

	"github.com/paularlott/cli"
	cli_toml "github.com/paularlott/cli/toml"
)

func main() {
	// Logger will be configured with proper level from CLI flags
	log.Configure("info", "console", os.Stderr)

	var configFile = config.CONFIG_FILE

	cmd := &cli.Command{
		Name:        "iconset",
		Usage:       "List the TaskFlow icon assets",
		Description: `iconset prints the icon files and pixel sizes expected in the TaskFlow assets folder.`,
		Version:     build.Version,
		ConfigFile:  cli_toml.NewConfigFile(&configFile, config.ConfigPaths),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Name and path to the configuration file to use.",
				DefaultText: config.CONFIG_FILE + " in the current directory, $HOME/ or $HOME/.config/" + config.CONFIG_DIR + "/" + config.CONFIG_FILE,
				EnvVars:     []string{config.CONFIG_ENV_PREFIX + "_CONFIG"},
				AssignTo:    &configFile,
				Global:      true,
			},
			&cli.StringFlag{
				Name:         "log-level",
				Usage:        "Log level one of trace, debug, info, warn, error, fatal, panic",
				ConfigPath:   []string{"log.level"},
				EnvVars:      []string{config.CONFIG_ENV_PREFIX + "_LOGLEVEL"},
				DefaultValue: "info",
				Global:       true,
			},
			&cli.StringFlag{
				Name:         "log-format",
				Usage:        "Log format, console or json",
				ConfigPath:   []string{"log.format"},
				EnvVars:      []string{config.CONFIG_ENV_PREFIX + "_LOGFORMAT"},
				DefaultValue: "console",
				Global:       true,
			},
			&cli.StringFlag{
				Name:         "assets-dir",
				Aliases:      []string{"d"},
				Usage:        "The assets folder the icon paths are reported under.",
				ConfigPath:   []string{"assets.dir"},
				EnvVars:      []string{config.CONFIG_ENV_PREFIX + "_ASSETS_DIR"},
				DefaultValue: config.DEFAULT_ASSETS_DIR,
				Global:       true,
			},
			&cli.StringFlag{
				Name:         "format",
				Aliases:      []string{"f"},
				Usage:        fmt.Sprintf("Output format, one of %v", output.Formats),
				ConfigPath:   []string{"output.format"},
				EnvVars:      []string{config.CONFIG_ENV_PREFIX + "_FORMAT"},
				DefaultValue: string(output.FormatText),
				Global:       true,
			},
			&cli.StringFlag{
				Name:         "brand-color",
				Usage:        "Brand colour reported by the structured formats.",
				ConfigPath:   []string{"brand.color"},
				EnvVars:      []string{config.CONFIG_ENV_PREFIX + "_BRAND_COLOR"},
				DefaultValue: brand.Color,
				Global:       true,
			},
			&cli.BoolFlag{
				Name:       "no-default-icons",
				Usage:      "Leave out the built-in icons.",
				ConfigPath: []string{"icons.no_defaults"},
				EnvVars:    []string{config.CONFIG_ENV_PREFIX + "_NO_DEFAULT_ICONS"},
				Global:     true,
			},
			&cli.StringSliceFlag{
				Name:       "manifest",
				Aliases:    []string{"m"},
				Usage:      "Icon manifest to apply after the built-in icons, may be given multiple times.",
				ConfigPath: []string{"icons.manifests"},
				EnvVars:    []string{config.CONFIG_ENV_PREFIX + "_MANIFESTS"},
				Global:     true,
			},
		},
		Commands: []*cli.Command{
			command.ListCmd,
			command.ShowCmd,
			command.ScaffoldCmd,
			command.LegalCmd,
		},
		PreRun: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			config.InitCommonConfig(cmd)
			return ctx, nil
		},
		Run: command.RunList,
	}

	err := cmd.Execute(context.Background())
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	os.Exit(0)
}
