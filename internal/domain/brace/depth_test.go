package brace

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairNegativeDepth(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		removed int
	}{
		{
			name:    "stray trailing close",
			text:    "x { y { } }\n}",
			want:    "x { y { } }\n",
			removed: 1,
		},
		{
			name:    "stray close in the middle",
			text:    "a {\n}\n}\nb {\n}\n",
			want:    "a {\n}\nb {\n}\n",
			removed: 2,
		},
		{
			name:    "only line removed",
			text:    "}",
			want:    "\n",
			removed: 0,
		},
		{
			name:    "first line removed",
			text:    "}\na { }\n",
			want:    "a { }\n",
			removed: 0,
		},
		{
			name:    "carriage return line endings",
			text:    ".a {\r  color: red;\r}\r}\r.b {\r}\r",
			want:    ".a {\n  color: red;\n}\n.b {\n}\n",
			removed: 3,
		},
		{
			name:    "crlf line endings",
			text:    ".a {\r\n  color: red;\r\n}\r\n}\r\n.b {\r\n}\r\n",
			want:    ".a {\n  color: red;\n}\n.b {\n}\n",
			removed: 3,
		},
		{
			name:    "mixed line endings",
			text:    "a {\r\n}\r}\nb { }",
			want:    "a {\n}\nb { }\n",
			removed: 2,
		},
		{
			name:    "blank lines survive",
			text:    "a {\n\n}\n\n}\n",
			want:    "a {\n\n}\n\n",
			removed: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removed, err := RepairNegativeDepthDetail(tt.text)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("RepairNegativeDepthDetail() mismatch (-want +got):\n%s", diff)
			}

			assert.Equal(t, tt.removed, removed)

			plain, err := RepairNegativeDepth(tt.text)
			require.NoError(t, err)
			assert.Equal(t, got, plain)
		})
	}
}

func TestRepairNegativeDepth_ScenarioBalanced(t *testing.T) {
	got, err := RepairNegativeDepth("x { y { } }\n}")
	require.NoError(t, err)

	assert.Equal(t, "x { y { } }\n", got)
	assert.Equal(t, 0, Summarize(got).NetBalance)
}

func TestRepairNegativeDepth_NoCorruption(t *testing.T) {
	for _, text := range []string{"", "a { }\n", "{ { {"} {
		_, removed, err := RepairNegativeDepthDetail(text)
		require.ErrorIsf(t, err, ErrNoCorruptionFound, "text %q", text)
		assert.Equal(t, -1, removed)
	}
}

func TestRepairNegativeDepth_PositiveImbalanceIsNotCorruption(t *testing.T) {
	text := "{ { {"

	_, err := RepairNegativeDepth(text)
	require.ErrorIs(t, err, ErrNoCorruptionFound)

	assert.Equal(t, 3, Summarize(text).NetBalance)
}

func TestRepairNegativeDepth_Unrepairable(t *testing.T) {
	_, removed, err := RepairNegativeDepthDetail("a {\n}\n}\n}\n")
	require.ErrorIs(t, err, ErrUnrepairableCorruption)

	assert.Equal(t, 2, removed)
	assert.Contains(t, err.Error(), "removing line 3")
	assert.Contains(t, err.Error(), "line 4")
}

func TestRepairNegativeDepth_OnlyOffendingLineRestoresBalance(t *testing.T) {
	text := "a { b: 1; }\n}\nc {\n}\n"
	lines := splitLines(text)

	got, removed, err := RepairNegativeDepthDetail(text)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	want := strings.Join(append(append([]string{}, lines[:removed]...), lines[removed+1:]...), "\n") + "\n"
	assert.Equal(t, want, got)
	assert.True(t, Summarize(got).Balanced())

	for i := range lines {
		if i == removed {
			continue
		}

		other := make([]string, 0, len(lines)-1)
		other = append(other, lines[:i]...)
		other = append(other, lines[i+1:]...)

		restored := firstNegative(other) < 0 && Summarize(strings.Join(other, "\n")).Balanced()
		assert.Falsef(t, restored, "removing line %d unexpectedly restored balance", i)
	}
}
