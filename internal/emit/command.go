package emit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/buildprint/internal/template"
	"github.com/temirov/buildprint/printer"
)

const (
	printlnCommandNameConstant             = "println"
	printlnShortDescriptionConstant        = "Emit a plain diagnostic line"
	infoShortDescriptionConstant           = "Emit a green \"info:\" diagnostic line"
	warnCommandNameConstant                = "warn"
	warnShortDescriptionConstant           = "Emit a yellow \"warning:\" diagnostic line"
	errorShortDescriptionConstant          = "Emit a red \"error:\" diagnostic line without failing the build"
	noteShortDescriptionConstant           = "Emit a cyan \"note:\" diagnostic line"
	optionalTemplateUseTemplateConstant    = "%s [TEMPLATE [ARGUMENTS...]]"
	requiredTemplateUseTemplateConstant    = "%s TEMPLATE [ARGUMENTS...]"
	commandLongDescriptionTemplateConstant = "%s renders TEMPLATE, replacing each {} (or {N}) with the following arguments, and writes it as one diagnostic line. Use {{ and }} for literal braces."
	blankLineDescriptionSuffixConstant     = " Without arguments it writes a blank line."
	commandNameRequiredMessageConstant     = "emit command name must be provided"
	renderErrorTemplateConstant            = "unable to render %s template: %w"
	emittedLineLogMessageConstant          = "diagnostic line emitted"
	logFieldLabelConstant                  = "label"
	logFieldArgumentCountConstant          = "argument_count"
	minimumLabeledArgumentCountConstant    = 1
	templateArgumentIndexConstant          = 0
	firstSubstitutionArgumentIndexConstant = 1
)

var errCommandNameRequired = errors.New(commandNameRequiredMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// EmitterProvider supplies the emitter that receives rendered lines.
type EmitterProvider func() *printer.Emitter

// CommandDefinition names a subcommand and the label it renders.
type CommandDefinition struct {
	Name             string
	ShortDescription string
	Label            printer.Label
}

// Definitions lists the emitting subcommands: println and one command per label.
func Definitions() []CommandDefinition {
	return []CommandDefinition{
		{Name: printlnCommandNameConstant, ShortDescription: printlnShortDescriptionConstant, Label: printer.LabelNone},
		{Name: printer.LabelInfo.String(), ShortDescription: infoShortDescriptionConstant, Label: printer.LabelInfo},
		{Name: warnCommandNameConstant, ShortDescription: warnShortDescriptionConstant, Label: printer.LabelWarning},
		{Name: printer.LabelError.String(), ShortDescription: errorShortDescriptionConstant, Label: printer.LabelError},
		{Name: printer.LabelNote.String(), ShortDescription: noteShortDescriptionConstant, Label: printer.LabelNote},
	}
}

// CommandBuilder assembles the Cobra command for one emitting subcommand.
type CommandBuilder struct {
	Definition      CommandDefinition
	LoggerProvider  LoggerProvider
	EmitterProvider EmitterProvider
}

// Build constructs the subcommand described by the builder definition.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	commandName := strings.TrimSpace(builder.Definition.Name)
	if len(commandName) == 0 {
		return nil, errCommandNameRequired
	}

	useTemplate := requiredTemplateUseTemplateConstant
	longDescription := fmt.Sprintf(commandLongDescriptionTemplateConstant, commandName)
	argumentValidator := cobra.MinimumNArgs(minimumLabeledArgumentCountConstant)
	if builder.Definition.Label == printer.LabelNone {
		useTemplate = optionalTemplateUseTemplateConstant
		longDescription += blankLineDescriptionSuffixConstant
		argumentValidator = cobra.ArbitraryArgs
	}

	command := &cobra.Command{
		Use:   fmt.Sprintf(useTemplate, commandName),
		Short: builder.Definition.ShortDescription,
		Long:  longDescription,
		Args:  argumentValidator,
		RunE:  builder.run,
	}
	command.Flags().SetInterspersed(false)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	emitter := builder.resolveEmitter(command)
	logger := builder.resolveLogger()

	if len(arguments) == 0 {
		emitter.Blank()
		logger.Debug(emittedLineLogMessageConstant, zap.Stringer(logFieldLabelConstant, builder.Definition.Label), zap.Int(logFieldArgumentCountConstant, 0))
		return nil
	}

	substitutionArguments := arguments[firstSubstitutionArgumentIndexConstant:]
	content, renderError := template.Render(arguments[templateArgumentIndexConstant], substitutionArguments)
	if renderError != nil {
		return fmt.Errorf(renderErrorTemplateConstant, builder.Definition.Name, renderError)
	}

	emitter.EmitLabeled(builder.Definition.Label, content)
	logger.Debug(
		emittedLineLogMessageConstant,
		zap.Stringer(logFieldLabelConstant, builder.Definition.Label),
		zap.Int(logFieldArgumentCountConstant, len(substitutionArguments)),
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
