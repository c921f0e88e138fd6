package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/bracemend/internal/config"
	"github.com/mouse-blink/bracemend/internal/domain"
	m "github.com/mouse-blink/bracemend/internal/model"
)

var errNothingToRepair = errors.New("nothing to repair: pass paths, --plan, or list files in the config")

var repairMarkerFlags []string
var repairStrategyFlag string
var repairPlanFlag string
var repairParallelFlag int
var repairDryRunFlag bool
var repairForceFlag bool
var repairExtFlags []string

// repairCmd represents the repair command.
var repairCmd = newRepairCmd()

const repairLongDescription = `Repair truncated or duplicated brace-delimited files.

Strategies:
  marker         keep everything up to and including the first marker
  marker-before  keep everything before the first marker
  depth          remove the first line that drives brace depth negative
  auto           marker when markers are given and found, depth otherwise

A repaired file is written only when its braces balance, unless --force
is given. Files listed under "files" in the config are repaired when no
paths are passed; --plan adds the files of another config file.`

func newRepairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair [paths...]",
		Short: "Repair corrupted brace-delimited files",
		Long:  repairLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := m.ParseStrategy(repairStrategyFlag)
			if err != nil {
				return err
			}

			jobs, err := plannedJobs(len(args) == 0)
			if err != nil {
				return err
			}

			if len(args) == 0 && len(jobs) == 0 {
				return errNothingToRepair
			}

			parallel := cfg.Parallel
			if cmd.Flags().Changed("parallel") {
				parallel = repairParallelFlag
			}

			return workflow.Repair(cmd.Context(), domain.RepairArgs{
				SourceArgs: domain.SourceArgs{
					Paths:      parsePaths(args),
					Extensions: extensionsOr(cmd, repairExtFlags),
				},
				Jobs:     jobs,
				Strategy: strategy,
				Markers:  repairMarkerFlags,
				Threads:  parallel,
				DryRun:   repairDryRunFlag || cfg.DryRun,
				Force:    repairForceFlag || cfg.Force,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&repairMarkerFlags, "marker", "m", nil, "literal marker text; tried in order (can be repeated)")
	cmd.Flags().StringVarP(&repairStrategyFlag, "strategy", "S", string(m.StrategyAuto), "repair strategy: marker, marker-before, depth, auto")
	cmd.Flags().StringVarP(&repairPlanFlag, "plan", "f", "", "YAML file listing files to repair with their strategy and markers")
	cmd.Flags().IntVarP(&repairParallelFlag, "parallel", "p", 1, "number of files repaired in parallel")
	cmd.Flags().BoolVarP(&repairDryRunFlag, "dry-run", "n", false, "report what would change without writing")
	cmd.Flags().BoolVar(&repairForceFlag, "force", false, "write repaired files even when braces still do not balance")
	cmd.Flags().StringArrayVarP(&repairExtFlags, "ext", "e", nil, "file extensions to include when scanning directories (can be repeated)")

	return cmd
}

// plannedJobs collects jobs from --plan and, when useConfig is set, from the
// loaded config.
func plannedJobs(useConfig bool) ([]m.Job, error) {
	var jobs []m.Job

	if useConfig {
		configured, err := cfg.Jobs()
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, configured...)
	}

	if repairPlanFlag == "" {
		return jobs, nil
	}

	plan, err := config.Load(repairPlanFlag)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("plan %s: %w", repairPlanFlag, err)
	}

	planned, err := plan.Jobs()
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", repairPlanFlag, err)
	}

	return append(jobs, planned...), nil
}

func init() {
	rootCmd.AddCommand(repairCmd)
}
