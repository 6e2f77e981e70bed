package printer

import (
	"fmt"
	"io"
)

const (
	// ChannelPrefixCargoWarning makes Cargo display the line while a build script runs.
	ChannelPrefixCargoWarning = "cargo:warning="

	// ChannelPrefixGitHubWarning makes GitHub Actions surface the line as a workflow annotation.
	ChannelPrefixGitHubWarning = "::warning::"

	// ClearLineSequence erases the current terminal line and returns the cursor to column 0.
	ClearLineSequence = "\x1b[2K\r"

	lineTerminatorConstant = "\n"
	emptyStringConstant    = ""
)

// Emitter writes formatted diagnostic lines to a single output channel.
type Emitter struct {
	writer        io.Writer
	channelPrefix string
	colorizer     Colorizer
}

// NewEmitter constructs an Emitter. A nil writer discards output and a nil colorizer selects ANSIColorizer.
func NewEmitter(writer io.Writer, channelPrefix string, colorizer Colorizer) *Emitter {
	if writer == nil {
		writer = io.Discard
	}
	if colorizer == nil {
		colorizer = ANSIColorizer{}
	}
	return &Emitter{writer: writer, channelPrefix: channelPrefix, colorizer: colorizer}
}

// ChannelPrefix reports the token written in front of every line.
func (emitter *Emitter) ChannelPrefix() string {
	return emitter.channelPrefix
}

// RenderLine builds the complete line written for already formatted content.
func (emitter *Emitter) RenderLine(content string) string {
	return emitter.channelPrefix + ClearLineSequence + content + lineTerminatorConstant
}

// Printf formats according to a format specifier and emits the result as one line.
func (emitter *Emitter) Printf(format string, arguments ...any) {
	emitter.Emit(fmt.Sprintf(format, arguments...))
}

// Blank emits an empty line, useful for visual spacing.
func (emitter *Emitter) Blank() {
	emitter.Emit(emptyStringConstant)
}

// Labeledf formats the message and emits it behind the colored label prefix.
func (emitter *Emitter) Labeledf(label Label, format string, arguments ...any) {
	emitter.EmitLabeled(label, fmt.Sprintf(format, arguments...))
}

// Infof emits a message labeled "info:" in green.
func (emitter *Emitter) Infof(format string, arguments ...any) {
	emitter.EmitLabeled(LabelInfo, fmt.Sprintf(format, arguments...))
}

// Warnf emits a message labeled "warning:" in yellow.
func (emitter *Emitter) Warnf(format string, arguments ...any) {
	emitter.EmitLabeled(LabelWarning, fmt.Sprintf(format, arguments...))
}

// Errorf emits a message labeled "error:" in red. It does not stop the program or fail the build.
func (emitter *Emitter) Errorf(format string, arguments ...any) {
	emitter.EmitLabeled(LabelError, fmt.Sprintf(format, arguments...))
}

// Notef emits a message labeled "note:" in cyan.
func (emitter *Emitter) Notef(format string, arguments ...any) {
	emitter.EmitLabeled(LabelNote, fmt.Sprintf(format, arguments...))
}

// EmitLabeled emits already formatted content behind the label prefix.
func (emitter *Emitter) EmitLabeled(label Label, content string) {
	emitter.Emit(RenderLabeled(emitter.colorizer, label, content))
}

// Emit writes already formatted content as one line in a single Write call.
// Write failures are dropped: the channel has no way to report them.
func (emitter *Emitter) Emit(content string) {
	_, _ = io.WriteString(emitter.writer, emitter.RenderLine(content))
}
