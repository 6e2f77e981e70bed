package printer

import (
	"fmt"
	"os"
)

var defaultEmitter = NewEmitter(os.Stdout, ChannelPrefixCargoWarning, ANSIColorizer{})

// Default returns the emitter behind the package-level functions. It writes to standard output
// using the Cargo warning channel.
func Default() *Emitter {
	return defaultEmitter
}

// Printf emits a formatted line through the default emitter.
func Printf(format string, arguments ...any) {
	defaultEmitter.Emit(fmt.Sprintf(format, arguments...))
}

// Blank emits an empty line through the default emitter.
func Blank() {
	defaultEmitter.Blank()
}

// Labeledf emits a labeled line through the default emitter.
func Labeledf(label Label, format string, arguments ...any) {
	defaultEmitter.EmitLabeled(label, fmt.Sprintf(format, arguments...))
}

// Infof emits an "info:" line through the default emitter.
func Infof(format string, arguments ...any) {
	defaultEmitter.EmitLabeled(LabelInfo, fmt.Sprintf(format, arguments...))
}

// Warnf emits a "warning:" line through the default emitter.
func Warnf(format string, arguments ...any) {
	defaultEmitter.EmitLabeled(LabelWarning, fmt.Sprintf(format, arguments...))
}

// Errorf emits an "error:" line through the default emitter.
func Errorf(format string, arguments ...any) {
	defaultEmitter.EmitLabeled(LabelError, fmt.Sprintf(format, arguments...))
}

// Notef emits a "note:" line through the default emitter.
func Notef(format string, arguments ...any) {
	defaultEmitter.EmitLabeled(LabelNote, fmt.Sprintf(format, arguments...))
}
