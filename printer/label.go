package printer

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	labelNoneNameConstant              = "none"
	labelInfoNameConstant              = "info"
	labelWarningNameConstant           = "warning"
	labelErrorNameConstant             = "error"
	labelNoteNameConstant              = "note"
	labelWarningAliasConstant          = "warn"
	unsupportedLabelTemplateConstant   = "unsupported label: %q"
	labelPrefixSeparatorConstant       = ":"
	labelIndentationConstant           = "   "
	labelMessageSeparatorConstant      = " "
	labelUnknownStringTemplateConstant = "Label(%d)"
)

// Label identifies the category rendered in front of a diagnostic line.
type Label int

// Supported labels.
const (
	LabelNone Label = iota
	LabelInfo
	LabelWarning
	LabelError
	LabelNote
)

type labelStyle struct {
	name      string
	attribute color.Attribute
}

var labelStyles = map[Label]labelStyle{
	LabelInfo:    {name: labelInfoNameConstant, attribute: color.FgGreen},
	LabelWarning: {name: labelWarningNameConstant, attribute: color.FgYellow},
	LabelError:   {name: labelErrorNameConstant, attribute: color.FgRed},
	LabelNote:    {name: labelNoteNameConstant, attribute: color.FgCyan},
}

var labelLookup = map[string]Label{
	"":                        LabelNone,
	labelNoneNameConstant:     LabelNone,
	labelInfoNameConstant:     LabelInfo,
	labelWarningNameConstant:  LabelWarning,
	labelWarningAliasConstant: LabelWarning,
	labelErrorNameConstant:    LabelError,
	labelNoteNameConstant:     LabelNote,
}

// Labels lists the labels that render a prefix, in display order.
func Labels() []Label {
	return []Label{LabelInfo, LabelWarning, LabelError, LabelNote}
}

// ParseLabel resolves a case-insensitive label name. "warn" is accepted as an alias of "warning"
// and an empty name resolves to LabelNone.
func ParseLabel(labelName string) (Label, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(labelName))
	label, labelExists := labelLookup[normalizedName]
	if !labelExists {
		return LabelNone, fmt.Errorf(unsupportedLabelTemplateConstant, labelName)
	}
	return label, nil
}

// String returns the display name of the label.
func (label Label) String() string {
	if label == LabelNone {
		return labelNoneNameConstant
	}
	style, styleExists := labelStyles[label]
	if !styleExists {
		return fmt.Sprintf(labelUnknownStringTemplateConstant, int(label))
	}
	return style.name
}

// Attribute reports the foreground color used for the label prefix.
func (label Label) Attribute() (color.Attribute, bool) {
	style, styleExists := labelStyles[label]
	if !styleExists {
		return color.Reset, false
	}
	return style.attribute, true
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLabel.
func (label *Label) UnmarshalText(text []byte) error {
	parsedLabel, parseError := ParseLabel(string(text))
	if parseError != nil {
		return parseError
	}
	*label = parsedLabel
	return nil
}

// RenderLabeled joins the colored label prefix with already formatted content.
// LabelNone and unknown labels return the content unchanged.
func RenderLabeled(colorizer Colorizer, label Label, content string) string {
	style, styleExists := labelStyles[label]
	if !styleExists {
		return content
	}
	if colorizer == nil {
		colorizer = ANSIColorizer{}
	}
	prefix := colorizer.Colorize(style.name+labelPrefixSeparatorConstant, style.attribute, true)
	return labelIndentationConstant + prefix + labelMessageSeparatorConstant + content
}
