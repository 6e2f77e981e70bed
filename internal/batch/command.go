package batch

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/buildprint/printer"
)

const (
	commandUseConstant                    = "batch FILE"
	commandShortDescriptionConstant       = "Emit every message listed in a YAML manifest"
	commandLongDescriptionConstant        = "batch validates a YAML manifest of messages and emits them in order. Nothing is written when any entry is invalid. Use - to read the manifest from standard input."
	standardInputPathConstant             = "-"
	commandExecutionErrorTemplateConstant = "batch emission failed: %w"
	manifestEmittedLogMessageConstant     = "manifest emitted"
	logFieldManifestPathConstant          = "manifest_path"
	logFieldEntryCountConstant            = "entry_count"
	requiredArgumentCountConstant         = 1
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// EmitterProvider supplies the emitter that receives manifest lines.
type EmitterProvider func() *printer.Emitter

// CommandBuilder assembles the batch Cobra command.
type CommandBuilder struct {
	LoggerProvider  LoggerProvider
	EmitterProvider EmitterProvider
}

// Build constructs the batch command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(requiredArgumentCountConstant),
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	manifestPath := strings.TrimSpace(arguments[0])

	var manifest Manifest
	var manifestError error
	if manifestPath == standardInputPathConstant {
		manifest, manifestError = ReadManifest(command.InOrStdin())
	} else {
		manifest, manifestError = LoadManifest(manifestPath)
	}
	if manifestError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, manifestError)
	}

	manifest.Emit(builder.resolveEmitter(command))

	builder.resolveLogger().Debug(
		manifestEmittedLogMessageConstant,
		zap.String(logFieldManifestPathConstant, manifestPath),
		zap.Int(logFieldEntryCountConstant, len(manifest.Entries)),
	)

	return nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) resolveEmitter(command *cobra.Command) *printer.Emitter {
	if builder.EmitterProvider != nil {
		if emitter := builder.EmitterProvider(); emitter != nil {
			return emitter
		}
	}
	return printer.NewEmitter(command.OutOrStdout(), printer.ChannelPrefixCargoWarning, printer.ANSIColorizer{})
}
