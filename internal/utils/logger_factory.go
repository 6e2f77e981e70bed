package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/buildprint/printer"
)

const (
	logLevelDebugStringConstant             = "debug"
	logLevelInfoStringConstant              = "info"
	logLevelWarnStringConstant              = "warn"
	logLevelErrorStringConstant             = "error"
	logFormatStructuredStringConstant       = "structured"
	logFormatConsoleStringConstant          = "console"
	logFormatDiagnosticStringConstant       = "diagnostic"
	unsupportedLogLevelTemplateConstant     = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant    = "unsupported log format: %s"
	diagnosticEmitterMissingMessageConstant = "diagnostic log format requires an emitter"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat selects how log entries are encoded and where they go.
type LogFormat string

// LogFormatStructured and LogFormatConsole write JSON or console text to the factory writer.
// LogFormatDiagnostic writes each entry as a labeled line through a printer.Emitter.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
	LogFormatDiagnostic LogFormat = LogFormat(logFormatDiagnosticStringConstant)
)

// ErrDiagnosticEmitterMissing reports a diagnostic logger requested without an emitter.
var ErrDiagnosticEmitterMissing = errors.New(diagnosticEmitterMissingMessageConstant)

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

type coreBuilder func(factory *LoggerFactory, levelEnabler zapcore.LevelEnabler, emitter *printer.Emitter) (zapcore.Core, error)

var coreBuilders = map[LogFormat]coreBuilder{
	LogFormatStructured: func(factory *LoggerFactory, levelEnabler zapcore.LevelEnabler, _ *printer.Emitter) (zapcore.Core, error) {
		return zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), factory.writeSyncer(), levelEnabler), nil
	},
	LogFormatConsole: func(factory *LoggerFactory, levelEnabler zapcore.LevelEnabler, _ *printer.Emitter) (zapcore.Core, error) {
		return zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()), factory.writeSyncer(), levelEnabler), nil
	},
	LogFormatDiagnostic: func(_ *LoggerFactory, levelEnabler zapcore.LevelEnabler, emitter *printer.Emitter) (zapcore.Core, error) {
		if emitter == nil {
			return nil, ErrDiagnosticEmitterMissing
		}
		return printer.NewCore(emitter, levelEnabler), nil
	},
}

// LogFormats lists the accepted log formats in the order shown to users.
func LogFormats() []string {
	return []string{string(LogFormatStructured), string(LogFormatConsole), string(LogFormatDiagnostic)}
}

// UnmarshalText normalizes and validates a configured log level.
func (level *LogLevel) UnmarshalText(text []byte) error {
	normalizedLevel := LogLevel(strings.ToLower(strings.TrimSpace(string(text))))
	if _, levelExists := logLevelMapping[normalizedLevel]; !levelExists {
		return fmt.Errorf(unsupportedLogLevelTemplateConstant, string(text))
	}
	*level = normalizedLevel
	return nil
}

// UnmarshalText normalizes and validates a configured log format.
func (format *LogFormat) UnmarshalText(text []byte) error {
	normalizedFormat := LogFormat(strings.ToLower(strings.TrimSpace(string(text))))
	if _, formatExists := coreBuilders[normalizedFormat]; !formatExists {
		return fmt.Errorf(unsupportedLogFormatTemplateConstant, string(text))
	}
	*format = normalizedFormat
	return nil
}

// LoggerFactory builds zap loggers for the configured level and format.
type LoggerFactory struct {
	logWriter io.Writer
}

// NewLoggerFactory constructs a factory whose structured and console loggers write to standard error.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{logWriter: os.Stderr}
}

// WithWriter returns a copy of the factory that writes structured and console logs to logWriter.
func (factory *LoggerFactory) WithWriter(logWriter io.Writer) *LoggerFactory {
	return &LoggerFactory{logWriter: logWriter}
}

// CreateLogger produces a zap.Logger honoring the requested log level and format.
// The diagnostic format requires emitter; the other formats ignore it.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat, emitter *printer.Emitter) (*zap.Logger, error) {
	zapLogLevel, levelExists := logLevelMapping[requestedLogLevel]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}

	buildCore, formatExists := coreBuilders[requestedLogFormat]
	if !formatExists {
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}

	core, coreError := buildCore(factory, zap.NewAtomicLevelAt(zapLogLevel), emitter)
	if coreError != nil {
		return nil, coreError
	}
	return zap.New(core, zap.ErrorOutput(factory.writeSyncer())), nil
}

func (factory *LoggerFactory) writeSyncer() zapcore.WriteSyncer {
	if factory == nil || factory.logWriter == nil {
		return zapcore.Lock(os.Stderr)
	}
	if syncer, isSyncer := factory.logWriter.(zapcore.WriteSyncer); isSyncer {
		return zapcore.Lock(syncer)
	}
	return zapcore.Lock(zapcore.AddSync(factory.logWriter))
}
