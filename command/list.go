package command

import (
	"context"
	"os"

	"github.com/paularlott/iconset/command/cmdutil"
	"github.com/paularlott/iconset/internal/log"
	"github.com/paularlott/iconset/internal/output"

	"github.com/paularlott/cli"
)

var ListCmd = &cli.Command{
	Name:        "list",
	Usage:       "List the icon files",
	Description: "Lists the icon files and their sizes for the assets folder.",
	MaxArgs:     cli.NoArgs,
	PreRun:      rootPreRun,
	Run:         RunList,
}

// RunList prints every icon in the set, in order
func RunList(ctx context.Context, cmd *cli.Command) error {
	set, err := cmdutil.GetIconSet(cmd)
	if err != nil {
		return err
	}

	log.Info("generating TaskFlow icons", "count", set.Service.Len())

	return output.Write(os.Stdout, set.Format, set.Document(set.Service.GetIcons()))
}

func rootPreRun(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	root := cmd.GetRootCmd()
	if root == nil || root == cmd || root.PreRun == nil {
		return ctx, nil
	}
	return root.PreRun(ctx, cmd)
}
