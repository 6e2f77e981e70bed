package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/buildprint/internal/batch"
	"github.com/temirov/buildprint/internal/emit"
	"github.com/temirov/buildprint/internal/utils"
	flagutils "github.com/temirov/buildprint/internal/utils/flags"
	"github.com/temirov/buildprint/printer"
)

const (
	applicationNameConstant                 = "build-print"
	applicationShortDescriptionConstant     = "Emit color-coded diagnostic lines through a build tool's warning channel"
	applicationLongDescriptionConstant      = "build-print writes plain, info, warning, error and note lines prefixed for the host build tool (cargo:warning= by default) and cleared of the tool's own decoration."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format."
	channelPrefixFlagNameConstant           = "channel-prefix"
	channelPrefixFlagUsageConstant          = "Override the token written in front of every line."
	colorFlagNameConstant                   = "color"
	colorFlagUsageConstant                  = "Render labels with ANSI colors."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	outputConfigurationKeyConstant          = "output"
	outputChannelPrefixConfigKeyConstant    = outputConfigurationKeyConstant + ".channel_prefix"
	outputColorConfigKeyConstant            = outputConfigurationKeyConstant + ".color"
	environmentPrefixConstant               = "BUILDPRINT"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationChannelPrefixFieldConstant = "channel_prefix"
	configurationColorFieldConstant         = "color"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	logLevelFlagErrorTemplateConstant       = "invalid --log-level: %w"
	logFormatFlagErrorTemplateConstant      = "invalid --log-format: %w"
	rootCommandDebugMessageConstant         = "build-print invoked without a subcommand"
	logFieldArgumentsConstant               = "arguments"
	defaultConfigurationSearchPathConstant  = "."
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Output ApplicationOutputConfiguration `mapstructure:"output"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  utils.LogLevel  `mapstructure:"log_level"`
	LogFormat utils.LogFormat `mapstructure:"log_format"`
}

// ApplicationOutputConfiguration controls how diagnostic lines are written.
type ApplicationOutputConfiguration struct {
	ChannelPrefix string `mapstructure:"channel_prefix"`
	Color         bool   `mapstructure:"color"`
}

// Application wires the Cobra root command, configuration loader, structured logger and emitter.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	emitter                *printer.Emitter
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	channelPrefixFlagValue string
	colorFlagValue         bool
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		[]string{defaultConfigurationSearchPathConstant},
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	persistentFlags := cobraCommand.PersistentFlags()
	persistentFlags.StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	persistentFlags.StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	persistentFlags.StringVar(
		&application.logFormatFlagValue,
		logFormatFlagNameConstant,
		"",
		flagutils.FormatChoiceUsage(string(utils.LogFormatConsole), utils.LogFormats(), logFormatFlagUsageConstant),
	)
	persistentFlags.StringVar(&application.channelPrefixFlagValue, channelPrefixFlagNameConstant, "", channelPrefixFlagUsageConstant)
	flagutils.AddToggleFlag(persistentFlags, &application.colorFlagValue, colorFlagNameConstant, "", true, colorFlagUsageConstant)

	for _, definition := range emit.Definitions() {
		emitBuilder := emit.CommandBuilder{
			Definition:      definition,
			LoggerProvider:  application.currentLogger,
			EmitterProvider: application.currentEmitter,
		}
		emitCommand, emitBuildError := emitBuilder.Build()
		if emitBuildError == nil {
			cobraCommand.AddCommand(emitCommand)
		}
	}

	batchBuilder := batch.CommandBuilder{
		LoggerProvider:  application.currentLogger,
		EmitterProvider: application.currentEmitter,
	}
	batchCommand, batchBuildError := batchBuilder.Build()
	if batchBuildError == nil {
		cobraCommand.AddCommand(batchCommand)
	}

	application.rootCommand = cobraCommand

	return application
}

// RootCommand exposes the Cobra root so callers can redirect streams.
func (application *Application) RootCommand() *cobra.Command {
	return application.rootCommand
}

// Execute runs the command hierarchy against the process arguments.
func (application *Application) Execute() error {
	return application.ExecuteWithArguments(os.Args[1:])
}

// ExecuteWithArguments runs the command hierarchy against arguments and ensures logger flushing.
func (application *Application) ExecuteWithArguments(arguments []string) error {
	normalizedArguments := flagutils.NormalizeToggleArguments(arguments)
	if normalizedArguments == nil {
		normalizedArguments = []string{}
	}
	application.rootCommand.SetArgs(normalizedArguments)

	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:      string(utils.LogLevelWarn),
		commonLogFormatConfigKeyConstant:     string(utils.LogFormatConsole),
		outputChannelPrefixConfigKeyConstant: printer.ChannelPrefixCargoWarning,
		outputColorConfigKeyConstant:         true,
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if overrideError := application.applyFlagOverrides(command); overrideError != nil {
		return overrideError
	}

	application.emitter = printer.NewEmitter(
		utils.NewFlushingWriter(command.OutOrStdout()),
		application.configuration.Output.ChannelPrefix,
		application.colorizer(),
	)

	logger, loggerCreationError := application.loggerFactory.WithWriter(command.ErrOrStderr()).CreateLogger(
		application.configuration.Common.LogLevel,
		application.configuration.Common.LogFormat,
		application.emitter,
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, string(application.configuration.Common.LogLevel)),
		zap.String(configurationLogFormatFieldConstant, string(application.configuration.Common.LogFormat)),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
		zap.String(configurationChannelPrefixFieldConstant, application.configuration.Output.ChannelPrefix),
		zap.Bool(configurationColorFieldConstant, application.configuration.Output.Color),
	)

	return nil
}

func (application *Application) applyFlagOverrides(command *cobra.Command) error {
	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		var overriddenLevel utils.LogLevel
		if parseError := overriddenLevel.UnmarshalText([]byte(application.logLevelFlagValue)); parseError != nil {
			return fmt.Errorf(logLevelFlagErrorTemplateConstant, parseError)
		}
		application.configuration.Common.LogLevel = overriddenLevel
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		var overriddenFormat utils.LogFormat
		if parseError := overriddenFormat.UnmarshalText([]byte(application.logFormatFlagValue)); parseError != nil {
			return fmt.Errorf(logFormatFlagErrorTemplateConstant, parseError)
		}
		application.configuration.Common.LogFormat = overriddenFormat
	}

	if application.persistentFlagChanged(command, channelPrefixFlagNameConstant) {
		application.configuration.Output.ChannelPrefix = application.channelPrefixFlagValue
	}

	if application.persistentFlagChanged(command, colorFlagNameConstant) {
		application.configuration.Output.Color = application.colorFlagValue
	}

	return nil
}

func (application *Application) colorizer() printer.Colorizer {
	if application.configuration.Output.Color {
		return printer.ANSIColorizer{}
	}
	return printer.PlainColorizer{}
}

func (application *Application) currentLogger() *zap.Logger {
	return application.logger
}

func (application *Application) currentEmitter() *printer.Emitter {
	return application.emitter
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	application.logger.Debug(rootCommandDebugMessageConstant, zap.Strings(logFieldArgumentsConstant, arguments))
	return command.Help()
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}
		if flagSet.Changed(strings.TrimSpace(flagName)) {
			return true
		}
	}

	return false
}
