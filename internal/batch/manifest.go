// Package batch loads YAML manifests describing a sequence of diagnostic lines and emits them in order.
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/temirov/buildprint/internal/template"
	"github.com/temirov/buildprint/printer"
)

const (
	manifestPathRequiredMessageConstant  = "manifest path must be provided"
	manifestLoadErrorTemplateConstant    = "failed to load manifest: %w"
	manifestParseErrorTemplateConstant   = "failed to parse manifest: %w"
	manifestReadErrorTemplateConstant    = "failed to read manifest: %w"
	manifestEntryErrorTemplateConstant   = "manifest message %d: %w"
	manifestEmptyMessagesMessageConstant = "manifest must define at least one message"
)

// ErrEmptyManifest indicates a manifest without messages.
var ErrEmptyManifest = errors.New(manifestEmptyMessagesMessageConstant)

// MessageConfiguration describes one manifest entry as written in YAML.
type MessageConfiguration struct {
	Label     string   `yaml:"label"`
	Message   string   `yaml:"message"`
	Arguments []string `yaml:"arguments"`
}

// Configuration is the YAML document root.
type Configuration struct {
	Messages []MessageConfiguration `yaml:"messages"`
}

// Entry is a validated, fully rendered manifest line.
type Entry struct {
	Label   printer.Label
	Content string
}

// Manifest holds rendered entries ready for emission.
type Manifest struct {
	Entries []Entry
}

// LoadManifest reads and validates the manifest stored at filePath.
func LoadManifest(filePath string) (Manifest, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if len(trimmedPath) == 0 {
		return Manifest{}, errors.New(manifestPathRequiredMessageConstant)
	}

	contentBytes, readError := os.ReadFile(trimmedPath)
	if readError != nil {
		return Manifest{}, fmt.Errorf(manifestLoadErrorTemplateConstant, readError)
	}

	return ParseManifest(contentBytes)
}

// ReadManifest reads and validates a manifest from reader.
func ReadManifest(reader io.Reader) (Manifest, error) {
	contentBytes, readError := io.ReadAll(reader)
	if readError != nil {
		return Manifest{}, fmt.Errorf(manifestReadErrorTemplateConstant, readError)
	}
	return ParseManifest(contentBytes)
}

// ParseManifest decodes YAML content and renders every entry. Any invalid entry fails the whole manifest.
func ParseManifest(contentBytes []byte) (Manifest, error) {
	var configuration Configuration
	if unmarshalError := yaml.Unmarshal(contentBytes, &configuration); unmarshalError != nil {
		return Manifest{}, fmt.Errorf(manifestParseErrorTemplateConstant, unmarshalError)
	}

	if len(configuration.Messages) == 0 {
		return Manifest{}, ErrEmptyManifest
	}

	entries := make([]Entry, 0, len(configuration.Messages))
	for messageIndex, messageConfiguration := range configuration.Messages {
		entry, entryError := messageConfiguration.render()
		if entryError != nil {
			return Manifest{}, fmt.Errorf(manifestEntryErrorTemplateConstant, messageIndex+1, entryError)
		}
		entries = append(entries, entry)
	}

	return Manifest{Entries: entries}, nil
}

// Emit writes every entry through emitter in manifest order.
func (manifest Manifest) Emit(emitter *printer.Emitter) {
	for _, entry := range manifest.Entries {
		emitter.EmitLabeled(entry.Label, entry.Content)
	}
}

func (configuration MessageConfiguration) render() (Entry, error) {
	label, labelError := printer.ParseLabel(configuration.Label)
	if labelError != nil {
		return Entry{}, labelError
	}

	content, renderError := template.Render(configuration.Message, configuration.Arguments)
	if renderError != nil {
		return Entry{}, renderError
	}

	return Entry{Label: label, Content: content}, nil
}
