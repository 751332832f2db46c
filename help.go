// FILE: lixenwraith/settings/help.go
package settings

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// HelpLine is one line of a usage block with its measured indentation.
type HelpLine struct {
	Text   string
	Indent int
}

// HelpOptions controls help rendering and display
type HelpOptions struct {
	// AutoShow prints the help and exits when the help flag is set
	AutoShow bool

	PaddingTop    int // blank lines before the text
	PaddingBottom int // blank lines after the text
	PaddingLeft   int // spaces added to every line
}

// DefaultHelpOptions returns the standard help options
func DefaultHelpOptions() HelpOptions {
	return HelpOptions{AutoShow: true}
}

// HelpResult is the outcome of ParseHelp.
type HelpResult struct {
	Text   string
	Params map[string]Param
}

var optionLinePattern = regexp.MustCompile(
	`(?i)(-[\w.-]+),?\s*(-[\w.-]+)?=?\s*(bool|boolean|int|num|number|str|string)?`,
)

var typeKeywords = map[string]ParamType{
	"bool":    TypeBoolean,
	"boolean": TypeBoolean,
	"int":     TypeNumber,
	"num":     TypeNumber,
	"number":  TypeNumber,
	"str":     TypeString,
	"string":  TypeString,
}

// ParseHelp normalizes a usage block and extracts the options it documents.
func ParseHelp(text string, opts HelpOptions) HelpResult {
	lines := NormalizeIndent(ParseText(text))

	params := make(map[string]Param)
	for _, line := range lines {
		if name, p, ok := ExtractParam(line.Text); ok {
			params[name] = p
		}
	}

	return HelpResult{
		Text:   FormatHelp(lines, opts),
		Params: params,
	}
}

// ParseText splits text into trimmed lines tagged with their leading
// whitespace width. Blank lines at both ends are dropped.
func ParseText(text string) []HelpLine {
	raw := strings.Split(text, "\n")
	lines := make([]HelpLine, 0, len(raw))
	for _, line := range raw {
		rest := strings.TrimLeftFunc(line, unicode.IsSpace)
		lines = append(lines, HelpLine{
			Text:   strings.TrimSpace(rest),
			Indent: utf8.RuneCountInString(line[:len(line)-len(rest)]),
		})
	}

	for len(lines) > 0 && lines[0].Text == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1].Text == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// NormalizeIndent shifts the block so the least indented line starts at zero.
// Blank lines count towards the minimum only when every line is blank.
func NormalizeIndent(lines []HelpLine) []HelpLine {
	minIndent := minLineIndent(lines, true)
	if minIndent < 0 {
		minIndent = minLineIndent(lines, false)
	}
	if minIndent <= 0 {
		return lines
	}

	for i := range lines {
		lines[i].Indent = max(lines[i].Indent-minIndent, 0)
	}
	return lines
}

func minLineIndent(lines []HelpLine, skipBlank bool) int {
	minIndent := -1
	for _, line := range lines {
		if skipBlank && line.Text == "" {
			continue
		}
		if minIndent < 0 || line.Indent < minIndent {
			minIndent = line.Indent
		}
	}
	return minIndent
}

// ExtractParam reads an option definition such as "-f, --file STRING".
// Lines not starting with a dash describe no option.
func ExtractParam(text string) (string, Param, bool) {
	if !strings.HasPrefix(text, "-") {
		return "", Param{}, false
	}

	match := optionLinePattern.FindStringSubmatch(text)
	if match == nil {
		return "", Param{}, false
	}

	name, alias := SeparateNameAndAlias(match[1], match[2])
	if name == "" {
		return "", Param{}, false
	}

	p := Param{Alias: alias}
	if match[3] != "" {
		p.Type = typeKeywords[strings.ToLower(match[3])]
	}
	return name, p, true
}

// SeparateNameAndAlias decides which of two dash-prefixed tokens is the long
// name: more dashes wins, then the longer name, then the second token.
func SeparateNameAndAlias(raw1, raw2 string) (name, alias string) {
	name1 := strings.TrimLeft(raw1, "-")
	name2 := strings.TrimLeft(raw2, "-")
	if name2 == "" {
		return name1, ""
	}

	dashes1 := len(raw1) - len(name1)
	dashes2 := len(raw2) - len(name2)
	switch {
	case dashes1 > dashes2:
		return name1, name2
	case dashes2 > dashes1:
		return name2, name1
	case len(name1) > len(name2):
		return name1, name2
	}
	return name2, name1
}

// FormatHelp renders lines with their indentation plus the configured padding.
func FormatHelp(lines []HelpLine, opts HelpOptions) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = strings.Repeat(" ", max(line.Indent+opts.PaddingLeft, 0)) + line.Text
	}

	return strings.Repeat("\n", max(opts.PaddingTop, 0)) +
		strings.Join(rendered, "\n") +
		strings.Repeat("\n", max(opts.PaddingBottom, 0))
}
