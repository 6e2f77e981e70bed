// Package emit builds the Cobra subcommands that write single diagnostic lines.
//
// Templates arrive as command-line text, so placeholders use the "{}" syntax
// from internal/template and are validated before anything is written.
package emit
