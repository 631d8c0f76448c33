package command

import (
	"context"
	"fmt"

	"github.com/paularlott/iconset/internal/scaffold"

	"github.com/paularlott/cli"
)

var ScaffoldCmd = &cli.Command{
	Name:        "scaffold",
	Usage:       "Generate configuration files",
	Description: "Prints example configuration files for use with iconset.",
	MaxArgs:     cli.NoArgs,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "config-file",
			Usage: "Generate an iconset.toml configuration file",
		},
		&cli.BoolFlag{
			Name:  "manifest-file",
			Usage: "Generate an icon manifest file",
		},
	},
	Run: func(ctx context.Context, cmd *cli.Command) error {
		any := false

		if cmd.GetBool("config-file") {
			fmt.Println(scaffold.ConfigScaffold)
			any = true
		}
		if cmd.GetBool("manifest-file") {
			fmt.Println(scaffold.ManifestScaffold)
			any = true
		}

		if !any {
			cmd.ShowHelp()
		}
		return nil
	},
}
