package brace

import (
	"testing"

	m "github.com/mouse-blink/bracemend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		samples []m.DepthSample
		net     int
	}{
		{
			name: "empty text",
			text: "",
			net:  0,
		},
		{
			name: "nested block with trailing newline",
			text: "a {\n  b { c: 1; }\n}\n",
			samples: []m.DepthSample{
				{Line: 0, Depth: 1},
				{Line: 1, Depth: 1},
				{Line: 2, Depth: 0},
			},
		},
		{
			name: "last line without newline",
			text: "x {\n}",
			samples: []m.DepthSample{
				{Line: 0, Depth: 1},
				{Line: 1, Depth: 0},
			},
		},
		{
			name: "stray close",
			text: "x { y { } }\n}",
			samples: []m.DepthSample{
				{Line: 0, Depth: 0},
				{Line: 1, Depth: -1},
			},
			net: -1,
		},
		{
			name: "only opens",
			text: "{ { {",
			samples: []m.DepthSample{
				{Line: 0, Depth: 3},
			},
			net: 3,
		},
		{
			name: "carriage return line endings",
			text: "a {\r}\r}\r",
			samples: []m.DepthSample{
				{Line: 0, Depth: 1},
				{Line: 1, Depth: 0},
				{Line: 2, Depth: -1},
			},
			net: -1,
		},
		{
			name: "crlf counts as one break",
			text: "a {\r\n\r\n}",
			samples: []m.DepthSample{
				{Line: 0, Depth: 1},
				{Line: 1, Depth: 1},
				{Line: 2, Depth: 0},
			},
		},
		{
			name: "blank lines keep their depth",
			text: "a {\n\n}\n",
			samples: []m.DepthSample{
				{Line: 0, Depth: 1},
				{Line: 1, Depth: 1},
				{Line: 2, Depth: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := Scan(tt.text)

			assert.Equal(t, tt.samples, trace.Samples)
			assert.Equal(t, tt.net, trace.Net)
		})
	}
}

func TestScan_NoBracesIsBalanced(t *testing.T) {
	for _, text := range []string{
		"",
		"\n",
		"plain text",
		"color: red;\nmargin: 0;\n",
		"ünïcødé ✓\n\n\n",
		"(parens) [brackets] <angles>",
	} {
		trace := Scan(text)

		assert.Zerof(t, trace.Net, "Scan(%q).Net", text)

		for _, s := range trace.Samples {
			assert.Zerof(t, s.Depth, "Scan(%q) line %d", text, s.Line)
		}
	}
}

func TestScan_CountsBracesInsideStrings(t *testing.T) {
	// Quoted braces are not distinguished from structural ones.
	trace := Scan(".a { content: \"}\"; }\n")

	assert.Equal(t, -1, trace.Net)

	sample, ok := trace.FirstNegative()
	require.True(t, ok)
	assert.Equal(t, 0, sample.Line)
}

func TestScan_MultiByteText(t *testing.T) {
	trace := Scan(".é { content: 'ü'; }\n.ß {\n")

	assert.Equal(t, 1, trace.Net)
	assert.Len(t, trace.Samples, 2)
}

func TestDepthTrace_FirstNegative(t *testing.T) {
	trace := Scan("a {\n}\n}\n{\n")

	sample, ok := trace.FirstNegative()
	require.True(t, ok)
	assert.Equal(t, m.DepthSample{Line: 2, Depth: -1}, sample)

	_, ok = Scan("a {\n}\n").FirstNegative()
	assert.False(t, ok)
}

func TestLineDelta(t *testing.T) {
	assert.Equal(t, 0, LineDelta(""))
	assert.Equal(t, 1, LineDelta("a {"))
	assert.Equal(t, -2, LineDelta("} }"))
	assert.Equal(t, 0, LineDelta("b { c: 1; }"))
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{""}, splitLines("\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b", ""}, splitLines("a\n\nb\n\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\rb\r"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb\r\n"))
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\r\rb"))
	assert.Equal(t, []string{""}, splitLines("\r\n"))
}

func TestScan_AgreesWithSplitLines(t *testing.T) {
	for _, text := range []string{
		"a {\r}\r}\r",
		"a {\r\n}\r\n",
		"a {\n}\r\n}\rb {",
		"\r\n\r",
		"{",
	} {
		lines := splitLines(text)
		trace := Scan(text)

		require.Lenf(t, trace.Samples, len(lines), "text %q", text)
		assert.Equalf(t, len(lines), Summarize(text).LineCount, "text %q", text)

		if bad := firstNegative(lines); bad >= 0 {
			sample, ok := trace.FirstNegative()
			require.True(t, ok)
			assert.Equal(t, bad, sample.Line)
		}
	}
}
