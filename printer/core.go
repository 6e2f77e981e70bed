package printer

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
	fieldAssignmentTemplateConstant = "%s=%v"
	fieldSeparatorConstant          = " "
)

// Core is a zapcore.Core that emits every log entry as a labeled diagnostic line.
//
// Debug entries become notes, info entries become info lines, warnings become warnings and
// every higher level becomes an error line. Structured fields follow the message as key=value
// pairs in the order they were supplied.
type Core struct {
	zapcore.LevelEnabler
	emitter       *Emitter
	contextFields []zapcore.Field
}

// NewCore builds a Core writing through emitter. A nil level enabler admits every level.
func NewCore(emitter *Emitter, levelEnabler zapcore.LevelEnabler) *Core {
	if emitter == nil {
		emitter = Default()
	}
	if levelEnabler == nil {
		levelEnabler = zapcore.DebugLevel
	}
	return &Core{LevelEnabler: levelEnabler, emitter: emitter}
}

// LabelForLevel maps a zap level onto the diagnostic label used by Core.
func LabelForLevel(level zapcore.Level) Label {
	switch {
	case level <= zapcore.DebugLevel:
		return LabelNote
	case level == zapcore.InfoLevel:
		return LabelInfo
	case level == zapcore.WarnLevel:
		return LabelWarning
	default:
		return LabelError
	}
}

// With implements zapcore.Core.
func (core *Core) With(fields []zapcore.Field) zapcore.Core {
	combinedFields := make([]zapcore.Field, 0, len(core.contextFields)+len(fields))
	combinedFields = append(combinedFields, core.contextFields...)
	combinedFields = append(combinedFields, fields...)
	return &Core{LevelEnabler: core.LevelEnabler, emitter: core.emitter, contextFields: combinedFields}
}

// Check implements zapcore.Core.
func (core *Core) Check(entry zapcore.Entry, checkedEntry *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if core.Enabled(entry.Level) {
		return checkedEntry.AddCore(entry, core)
	}
	return checkedEntry
}

// Write implements zapcore.Core.
func (core *Core) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	renderedParts := []string{entry.Message}
	renderedParts = append(renderedParts, renderFields(core.contextFields)...)
	renderedParts = append(renderedParts, renderFields(fields)...)

	content := strings.Join(nonEmpty(renderedParts), fieldSeparatorConstant)
	core.emitter.EmitLabeled(LabelForLevel(entry.Level), content)
	return nil
}

// Sync implements zapcore.Core. Lines are written immediately, so there is nothing to flush.
func (core *Core) Sync() error {
	return nil
}

func renderFields(fields []zapcore.Field) []string {
	renderedFields := make([]string, 0, len(fields))
	for _, field := range fields {
		fieldEncoder := zapcore.NewMapObjectEncoder()
		field.AddTo(fieldEncoder)

		encodedKeys := make([]string, 0, len(fieldEncoder.Fields))
		for encodedKey := range fieldEncoder.Fields {
			encodedKeys = append(encodedKeys, encodedKey)
		}
		sort.Strings(encodedKeys)

		for _, encodedKey := range encodedKeys {
			renderedFields = append(renderedFields, fmt.Sprintf(fieldAssignmentTemplateConstant, encodedKey, fieldEncoder.Fields[encodedKey]))
		}
	}
	return renderedFields
}

func nonEmpty(values []string) []string {
	filtered := make([]string, 0, len(values))
	for _, value := range values {
		if len(value) == 0 {
			continue
		}
		filtered = append(filtered, value)
	}
	return filtered
}
