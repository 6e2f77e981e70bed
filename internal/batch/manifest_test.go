package batch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/buildprint/internal/batch"
	"github.com/temirov/buildprint/internal/template"
	"github.com/temirov/buildprint/printer"
)

const (
	testManifestFileNameConstant = "messages.yaml"
	testLinePrefixConstant       = printer.ChannelPrefixCargoWarning + printer.ClearLineSequence
	testValidManifestConstant    = `messages:
  - message: "testing info!"
    label: info
  - message: "hello {}, {}, {}"
    label: warn
    arguments: ["1", "2", "3"]
  - {}
  - message: "plain {}"
    arguments: ["text"]
`
)

func TestParseManifestRendersEntries(testInstance *testing.T) {
	manifest, parseError := batch.ParseManifest([]byte(testValidManifestConstant))
	require.NoError(testInstance, parseError)

	require.Equal(testInstance, []batch.Entry{
		{Label: printer.LabelInfo, Content: "testing info!"},
		{Label: printer.LabelWarning, Content: "hello 1, 2, 3"},
		{Label: printer.LabelNone, Content: ""},
		{Label: printer.LabelNone, Content: "plain text"},
	}, manifest.Entries)
}

func TestManifestEmitPreservesOrder(testInstance *testing.T) {
	manifest, parseError := batch.ParseManifest([]byte(testValidManifestConstant))
	require.NoError(testInstance, parseError)

	outputBuffer := &bytes.Buffer{}
	manifest.Emit(printer.NewEmitter(outputBuffer, printer.ChannelPrefixCargoWarning, printer.PlainColorizer{}))

	expectedOutput := strings.Join([]string{
		testLinePrefixConstant + "   info: testing info!",
		testLinePrefixConstant + "   warning: hello 1, 2, 3",
		testLinePrefixConstant,
		testLinePrefixConstant + "plain text",
	}, "\n") + "\n"
	require.Equal(testInstance, expectedOutput, outputBuffer.String())
}

func TestParseManifestRejectsInvalidContent(testInstance *testing.T) {
	testCases := []struct {
		name          string
		content       string
		expectedError error
		errorFragment string
	}{
		{
			name:          "EmptyDocument",
			content:       "",
			expectedError: batch.ErrEmptyManifest,
		},
		{
			name:          "UnknownLabel",
			content:       "messages:\n  - message: ok\n  - message: bad\n    label: loud\n",
			errorFragment: "manifest message 2",
		},
		{
			name:          "ArgumentCountMismatch",
			content:       "messages:\n  - message: \"{} {}\"\n    arguments: [\"one\"]\n",
			expectedError: template.ErrMissingArgument,
		},
		{
			name:          "BlankWithArguments",
			content:       "messages:\n  - arguments: [\"stray\"]\n",
			expectedError: template.ErrUnusedArgument,
		},
		{
			name:          "MalformedYAML",
			content:       "messages: [",
			errorFragment: "failed to parse manifest",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			manifest, parseError := batch.ParseManifest([]byte(testCase.content))
			require.Error(testInstance, parseError)
			require.Empty(testInstance, manifest.Entries)
			if testCase.expectedError != nil {
				require.ErrorIs(testInstance, parseError, testCase.expectedError)
			}
			if len(testCase.errorFragment) > 0 {
				require.Contains(testInstance, parseError.Error(), testCase.errorFragment)
			}
		})
	}
}

func TestLoadManifest(testInstance *testing.T) {
	manifestPath := filepath.Join(testInstance.TempDir(), testManifestFileNameConstant)
	require.NoError(testInstance, os.WriteFile(manifestPath, []byte(testValidManifestConstant), 0o600))

	manifest, loadError := batch.LoadManifest(manifestPath)
	require.NoError(testInstance, loadError)
	require.Len(testInstance, manifest.Entries, 4)

	_, missingPathError := batch.LoadManifest("  ")
	require.Error(testInstance, missingPathError)

	_, missingFileError := batch.LoadManifest(filepath.Join(testInstance.TempDir(), testManifestFileNameConstant))
	require.ErrorIs(testInstance, missingFileError, os.ErrNotExist)
}

func TestReadManifest(testInstance *testing.T) {
	manifest, readError := batch.ReadManifest(strings.NewReader(testValidManifestConstant))
	require.NoError(testInstance, readError)
	require.Len(testInstance, manifest.Entries, 4)
}
