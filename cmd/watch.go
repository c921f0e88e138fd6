package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bracemend/internal/domain"
)

var watchContextFlag int
var watchExtFlags []string

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Re-check files whenever they are saved",
		Long: `Check every file once, then re-check each file as it is written until
interrupted. Defaults to ./... when no path is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Watch(cmd.Context(), domain.WatchArgs{
				SourceArgs: domain.SourceArgs{
					Paths:      defaultPaths(args),
					Extensions: extensionsOr(cmd, watchExtFlags),
				},
				Context: contextOr(cmd, watchContextFlag),
			})
		},
	}
	cmd.Flags().IntVarP(&watchContextFlag, "context", "C", 3, "lines of context shown around the first negative line")
	cmd.Flags().StringArrayVarP(&watchExtFlags, "ext", "e", nil, "file extensions to include when scanning directories (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
