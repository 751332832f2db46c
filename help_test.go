// FILE: lixenwraith/settings/help_test.go
package settings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catUsage = `
      Usage: cat [OPTION]... [FILE]...
      Concatenate FILE(s) to standard output.

      With no FILE, or when FILE is -, read standard input.

        -A, --show-all           equivalent to -vET
        -b, --number-nonblank    number nonempty output lines, overrides -n
        -e                       equivalent to -vE
        -E, --show-ends          display $ at end of each line
        -n, --number             number all output lines
        -s, --squeeze-blank      suppress repeated empty output lines
        -t                       equivalent to -vT
        -T, --show-tabs          display TAB characters as ^I
        -u                       (ignored)
        -v, --show-nonprinting   use ^ and M- notation, except for LFD and TAB
            --help     display this help and exit
            --version  output version information and exit

      Examples:
        cat f - g  Output f's contents, then standard input, then g's contents.
        cat        Copy standard input to standard output.
    `

func TestExtractParam(t *testing.T) {
	tests := []struct {
		line string
		name string
		want Param
	}{
		{"-c --count NUMBER How many times", "count", Param{Alias: "c", Type: TypeNumber}},
		{"--count,  -c   string How many times", "count", Param{Alias: "c", Type: TypeString}},
		{"--log.count,  -c", "log.count", Param{Alias: "c"}},
		{"--logCount,  -c", "logCount", Param{Alias: "c"}},
		{"-f, --fileName STRING  Input file", "fileName", Param{Alias: "f", Type: TypeString}},
		{"--verbose=BOOL", "verbose", Param{Type: TypeBoolean}},
		{"-l, --level INT", "level", Param{Alias: "l", Type: TypeNumber}},
		{"-u                       (ignored)", "u", Param{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, p, ok := ExtractParam(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.want, p)
		})
	}

	t.Run("NotAnOption", func(t *testing.T) {
		for _, line := range []string{"Usage: app", "", "cat -n file", "--"} {
			_, _, ok := ExtractParam(line)
			assert.False(t, ok, "line %q", line)
		}
	})
}

func TestSeparateNameAndAlias(t *testing.T) {
	tests := []struct {
		raw1, raw2  string
		name, alias string
	}{
		{"-n", "--name", "name", "n"},
		{"--name", "-n", "name", "n"},
		{"-name", "-n", "name", "n"},
		{"-n", "-name", "name", "n"},
		{"-ab", "-cd", "cd", "ab"},
		{"--solo", "", "solo", ""},
	}

	for _, tt := range tests {
		name, alias := SeparateNameAndAlias(tt.raw1, tt.raw2)
		assert.Equal(t, tt.name, name, "%s %s", tt.raw1, tt.raw2)
		assert.Equal(t, tt.alias, alias, "%s %s", tt.raw1, tt.raw2)
	}
}

func TestParseText(t *testing.T) {
	text := "\n    \n      line1\n      line2\n      \n    line3\nline4\n    \n    "

	want := []HelpLine{
		{Text: "line1", Indent: 6},
		{Text: "line2", Indent: 6},
		{Text: "", Indent: 6},
		{Text: "line3", Indent: 4},
		{Text: "line4", Indent: 0},
	}
	assert.Equal(t, want, ParseText(text))
	assert.Empty(t, ParseText("\n   \n"))
}

func TestNormalizeIndent(t *testing.T) {
	t.Run("ShiftsToZero", func(t *testing.T) {
		lines := []HelpLine{{Text: "a", Indent: 2}, {Text: "b", Indent: 4}}
		want := []HelpLine{{Text: "a", Indent: 0}, {Text: "b", Indent: 2}}
		assert.Equal(t, want, NormalizeIndent(lines))
	})

	t.Run("BlankLinesIgnored", func(t *testing.T) {
		lines := []HelpLine{{Text: "a", Indent: 4}, {Text: "", Indent: 0}, {Text: "b", Indent: 6}}
		want := []HelpLine{{Text: "a", Indent: 0}, {Text: "", Indent: 0}, {Text: "b", Indent: 2}}
		assert.Equal(t, want, NormalizeIndent(lines))
	})

	t.Run("AllBlank", func(t *testing.T) {
		lines := []HelpLine{{Indent: 2}, {Indent: 4}}
		want := []HelpLine{{Indent: 0}, {Indent: 2}}
		assert.Equal(t, want, NormalizeIndent(lines))
	})
}

func TestFormatHelp(t *testing.T) {
	lines := []HelpLine{
		{Text: "Usage: mycmd [options]", Indent: 0},
		{Text: "Options:", Indent: 2},
		{Text: "-f, --file FILE", Indent: 4},
	}

	got := FormatHelp(lines, HelpOptions{PaddingTop: 1, PaddingLeft: 2})
	want := strings.Join([]string{
		"",
		"  Usage: mycmd [options]",
		"    Options:",
		"      -f, --file FILE",
	}, "\n")
	assert.Equal(t, want, got)

	got = FormatHelp(lines[:1], HelpOptions{PaddingBottom: 2})
	assert.Equal(t, "Usage: mycmd [options]\n\n", got)
}

func TestParseHelp(t *testing.T) {
	result := ParseHelp(catUsage, DefaultHelpOptions())

	wantText := strings.Join([]string{
		"Usage: cat [OPTION]... [FILE]...",
		"Concatenate FILE(s) to standard output.",
		"",
		"With no FILE, or when FILE is -, read standard input.",
		"",
		"  -A, --show-all           equivalent to -vET",
		"  -b, --number-nonblank    number nonempty output lines, overrides -n",
		"  -e                       equivalent to -vE",
		"  -E, --show-ends          display $ at end of each line",
		"  -n, --number             number all output lines",
		"  -s, --squeeze-blank      suppress repeated empty output lines",
		"  -t                       equivalent to -vT",
		"  -T, --show-tabs          display TAB characters as ^I",
		"  -u                       (ignored)",
		"  -v, --show-nonprinting   use ^ and M- notation, except for LFD and TAB",
		"      --help     display this help and exit",
		"      --version  output version information and exit",
		"",
		"Examples:",
		"  cat f - g  Output f's contents, then standard input, then g's contents.",
		"  cat        Copy standard input to standard output.",
	}, "\n")
	assert.Equal(t, wantText, result.Text)

	// "number" in a description is read as the type keyword
	wantParams := map[string]Param{
		"number-nonblank":  {Alias: "b", Type: TypeNumber},
		"show-all":         {Alias: "A"},
		"e":                {},
		"show-ends":        {Alias: "E"},
		"number":           {Alias: "n", Type: TypeNumber},
		"squeeze-blank":    {Alias: "s"},
		"t":                {},
		"show-tabs":        {Alias: "T"},
		"u":                {},
		"show-nonprinting": {Alias: "v"},
		"help":             {},
		"version":          {},
	}
	assert.Equal(t, wantParams, result.Params)
}
