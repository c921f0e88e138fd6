package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/bracemend/internal/domain"
	m "github.com/mouse-blink/bracemend/internal/model"
)

func TestRepairCmd_Flags(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newRepairCmd())

	mockWorkflow.On("Repair", mock.Anything, domain.RepairArgs{
		SourceArgs: domain.SourceArgs{
			Paths:      []m.Path{"./styles/...", "extra.scss"},
			Extensions: []string{"scss"},
		},
		Strategy: m.StrategyMarker,
		Markers:  []string{".a {", ".b {"},
		Threads:  3,
		DryRun:   true,
		Force:    true,
	}).Return(nil)

	cmd.SetArgs([]string{
		"repair", "-S", "marker", "-m", ".a {", "--marker", ".b {",
		"-p", "3", "-n", "--force", "-e", "scss",
		"./styles/...", "extra.scss",
	})
	require.NoError(t, cmd.Execute())
}

func TestRepairCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newRepairCmd())

	mockWorkflow.On("Repair", mock.Anything, mock.MatchedBy(func(args domain.RepairArgs) bool {
		return args.Strategy == m.StrategyAuto &&
			args.Threads == 1 &&
			!args.DryRun &&
			!args.Force &&
			len(args.Jobs) == 0 &&
			len(args.Paths) == 1
	})).Return(nil)

	cmd.SetArgs([]string{"repair", "a.scss"})
	require.NoError(t, cmd.Execute())
}

func TestRepairCmd_Plan(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newRepairCmd())

	plan := writeTestConfig(t, `files:
  - path: admin/orders.scss
    strategy: marker-before
    markers: ["DUPLICATE"]
`)

	mockWorkflow.On("Repair", mock.Anything, mock.MatchedBy(func(args domain.RepairArgs) bool {
		return len(args.Paths) == 0 &&
			len(args.Jobs) == 1 &&
			args.Jobs[0].Path == m.Path(filepath.Join(filepath.Dir(plan), "admin", "orders.scss")) &&
			args.Jobs[0].Strategy == m.StrategyMarkerBefore
	})).Return(nil)

	cmd.SetArgs([]string{"repair", "--plan", plan})
	require.NoError(t, cmd.Execute())
}

func TestRepairCmd_ConfigFiles(t *testing.T) {
	path := writeTestConfig(t, `parallel: 4
dry_run: true
files:
  - path: a.scss
    strategy: depth
`)

	t.Run("used when no paths are given", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRoot(t, newRepairCmd())

		mockWorkflow.On("Repair", mock.Anything, mock.MatchedBy(func(args domain.RepairArgs) bool {
			return len(args.Jobs) == 1 && args.Threads == 4 && args.DryRun
		})).Return(nil)

		cmd.SetArgs([]string{"repair", "-c", path})
		require.NoError(t, cmd.Execute())
	})

	t.Run("ignored when paths are given", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRoot(t, newRepairCmd())

		mockWorkflow.On("Repair", mock.Anything, mock.MatchedBy(func(args domain.RepairArgs) bool {
			return len(args.Jobs) == 0 && len(args.Paths) == 1 && args.Threads == 2
		})).Return(nil)

		cmd.SetArgs([]string{"repair", "-c", path, "-p", "2", "b.scss"})
		require.NoError(t, cmd.Execute())
	})
}

func TestRepairCmd_Errors(t *testing.T) {
	t.Run("nothing to repair", func(t *testing.T) {
		cmd, _, _ := newTestRoot(t, newRepairCmd())

		cmd.SetArgs([]string{"repair"})
		require.ErrorIs(t, cmd.Execute(), errNothingToRepair)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		cmd, _, _ := newTestRoot(t, newRepairCmd())

		cmd.SetArgs([]string{"repair", "-S", "guess", "a.scss"})
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown strategy "guess"`)
	})

	t.Run("invalid plan", func(t *testing.T) {
		cmd, _, _ := newTestRoot(t, newRepairCmd())

		plan := writeTestConfig(t, "files:\n  - path: a.scss\n    strategy: marker\n")

		cmd.SetArgs([]string{"repair", "-f", plan})
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires markers")
	})

	t.Run("workflow failure", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRoot(t, newRepairCmd())

		mockWorkflow.On("Repair", mock.Anything, mock.Anything).Return(domain.ErrIncomplete)

		cmd.SetArgs([]string{"repair", "a.scss"})
		require.True(t, errors.Is(cmd.Execute(), domain.ErrIncomplete))
	})
}
