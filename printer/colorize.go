package printer

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	escapeSequencePrefixConstant = "\x1b["
	escapeSequenceSuffixConstant = "m"
)

// Colorizer wraps text in terminal styling.
type Colorizer interface {
	Colorize(text string, attribute color.Attribute, bold bool) string
}

// ANSIColorizer emits one SGR sequence per attribute, bold first, followed by a single reset.
// Output does not depend on whether stdout is a terminal.
type ANSIColorizer struct{}

// Colorize implements Colorizer.
func (ANSIColorizer) Colorize(text string, attribute color.Attribute, bold bool) string {
	if len(text) == 0 {
		return text
	}

	var builder strings.Builder
	if bold {
		builder.WriteString(selectGraphicRendition(color.Bold))
	}
	builder.WriteString(selectGraphicRendition(attribute))
	builder.WriteString(text)
	builder.WriteString(selectGraphicRendition(color.Reset))
	return builder.String()
}

// PlainColorizer returns text unchanged.
type PlainColorizer struct{}

// Colorize implements Colorizer.
func (PlainColorizer) Colorize(text string, _ color.Attribute, _ bool) string {
	return text
}

func selectGraphicRendition(attribute color.Attribute) string {
	return escapeSequencePrefixConstant + strconv.Itoa(int(attribute)) + escapeSequenceSuffixConstant
}
