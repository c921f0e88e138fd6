package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bracemend/internal/domain"
)

var checkContextFlag int
var checkExtFlags []string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report brace balance without changing files",
		Long: `Report line count, net brace balance and the first line where depth
goes negative for every file. Exits non-zero when any file is unbalanced.
Defaults to ./... when no path is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(cmd.Context(), domain.CheckArgs{
				SourceArgs: domain.SourceArgs{
					Paths:      defaultPaths(args),
					Extensions: extensionsOr(cmd, checkExtFlags),
				},
				Context: contextOr(cmd, checkContextFlag),
				Threads: cfg.Parallel,
			})
		},
	}
	cmd.Flags().IntVarP(&checkContextFlag, "context", "C", 3, "lines of context shown around the first negative line")
	cmd.Flags().StringArrayVarP(&checkExtFlags, "ext", "e", nil, "file extensions to include when scanning directories (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
