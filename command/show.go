package command

import (
	"context"
	"fmt"
	"os"

	"github.com/paularlott/iconset/command/cmdutil"
	"github.com/paularlott/iconset/internal/output"
	"github.com/paularlott/iconset/internal/service"

	"github.com/paularlott/cli"
)

var ShowCmd = &cli.Command{
	Name:        "show",
	Usage:       "Show a single icon",
	Description: "Show the path and size of the named icon file.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:     "name",
			Usage:    "The icon file name, e.g. favicon.png",
			Required: true,
		},
	},
	MaxArgs: cli.NoArgs,
	PreRun:  rootPreRun,
	Run: func(ctx context.Context, cmd *cli.Command) error {
		name := cmd.GetStringArg("name")

		set, err := cmdutil.GetIconSet(cmd)
		if err != nil {
			return err
		}

		icon, ok := set.Service.Lookup(name)
		if !ok {
			return fmt.Errorf("icon not found: %s", name)
		}

		if set.Format == output.FormatText {
			fmt.Println(output.Line(set.Config.AssetsDir, icon))
			return nil
		}

		return output.Write(os.Stdout, set.Format, set.Document([]service.Icon{icon}))
	},
}
