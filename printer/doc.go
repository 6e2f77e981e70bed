// Package printer emits human-readable diagnostic lines from build programs.
//
// Host build tools usually surface a single message type from the programs
// they run, such as Cargo's "cargo:warning=" lines. The Emitter writes every
// line through that channel and prefixes the content with a clear-line escape
// sequence so the host decoration is erased before the text appears. Labeled
// variants add a bold, colored "info:", "warning:", "error:" or "note:" prefix.
//
// The format functions follow fmt conventions, so go vet reports mismatched
// verbs and arguments before the program runs.
package printer
