// Package utils holds the build-print plumbing shared by the CLI commands.
//
// ConfigurationLoader layers embedded defaults, an optional configuration file and
// BUILDPRINT_* environment variables through Viper. LoggerFactory builds the zap logger,
// including the diagnostic format that routes log entries through a printer.Emitter.
// FlushingWriter flushes buffered destinations after each emitted line.
package utils
