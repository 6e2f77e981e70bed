// Package cli constructs the build-print command-line interface, wiring the
// Cobra command hierarchy, configuration loader, structured logging and the
// diagnostic emitter shared by every subcommand. Shell build steps use it to
// emit the same lines Go build programs produce through the printer package.
package cli
