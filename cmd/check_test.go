package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/bracemend/internal/domain"
	m "github.com/mouse-blink/bracemend/internal/model"
)

func TestCheckCmd(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRoot(t, newCheckCmd())

		mockWorkflow.EXPECT().
			Check(mock.Anything, domain.CheckArgs{
				SourceArgs: domain.SourceArgs{Paths: []m.Path{"./..."}},
				Context:    3,
				Threads:    1,
			}).
			Return(nil)

		cmd.SetArgs([]string{"check"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("flags", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRoot(t, newCheckCmd())

		mockWorkflow.EXPECT().
			Check(mock.Anything, domain.CheckArgs{
				SourceArgs: domain.SourceArgs{Paths: []m.Path{"a.css"}, Extensions: []string{"css", "less"}},
				Context:    0,
				Threads:    1,
			}).
			Return(nil)

		cmd.SetArgs([]string{"check", "-C", "0", "-e", "css", "-e", "less", "a.css"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("unbalanced files fail the command", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRoot(t, newCheckCmd())

		mockWorkflow.EXPECT().Check(mock.Anything, mock.Anything).Return(domain.ErrUnbalanced)

		cmd.SetArgs([]string{"check", "a.css"})
		require.ErrorIs(t, cmd.Execute(), domain.ErrUnbalanced)
	})
}
