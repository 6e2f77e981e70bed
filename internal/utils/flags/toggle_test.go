package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const (
	testToggleNameConstant      = "color"
	testToggleShorthandConstant = "c"
	testToggleUsageConstant     = "Render labels with ANSI colors."
)

func newToggleCommand(testInstance *testing.T, defaultValue bool, target *bool) *cobra.Command {
	testInstance.Helper()
	command := &cobra.Command{}
	AddToggleFlag(command.Flags(), target, testToggleNameConstant, testToggleShorthandConstant, defaultValue, testToggleUsageConstant)
	return command
}

func TestAddToggleFlagParsesValues(testInstance *testing.T) {
	testCases := []struct {
		name            string
		defaultValue    bool
		arguments       []string
		expectedValue   bool
		expectedChanged bool
	}{
		{name: "DefaultEnabled", defaultValue: true, arguments: []string{}, expectedValue: true},
		{name: "DefaultDisabled", defaultValue: false, arguments: []string{}, expectedValue: false},
		{name: "ImplicitTrue", arguments: []string{"--color"}, expectedValue: true, expectedChanged: true},
		{name: "SeparateNo", defaultValue: true, arguments: []string{"--color", "no"}, expectedValue: false, expectedChanged: true},
		{name: "SeparateOffUppercase", defaultValue: true, arguments: []string{"--color", "OFF"}, expectedValue: false, expectedChanged: true},
		{name: "InlineYes", arguments: []string{"--color=yes"}, expectedValue: true, expectedChanged: true},
		{name: "ShorthandZero", defaultValue: true, arguments: []string{"-c", "0"}, expectedValue: false, expectedChanged: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			var colorEnabled bool
			command := newToggleCommand(testInstance, testCase.defaultValue, &colorEnabled)

			require.NoError(testInstance, command.ParseFlags(NormalizeToggleArguments(testCase.arguments)))
			require.Equal(testInstance, testCase.expectedValue, colorEnabled)

			flag := command.Flags().Lookup(testToggleNameConstant)
			require.NotNil(testInstance, flag)
			require.Equal(testInstance, testCase.expectedChanged, flag.Changed)
		})
	}
}

func TestAddToggleFlagRejectsInvalidValues(testInstance *testing.T) {
	var colorEnabled bool
	command := newToggleCommand(testInstance, true, &colorEnabled)

	require.Error(testInstance, command.ParseFlags([]string{"--color=maybe"}))
	require.True(testInstance, colorEnabled)
	require.False(testInstance, command.Flags().Lookup(testToggleNameConstant).Changed)
}

func TestAddToggleFlagUsageHighlightsDefault(testInstance *testing.T) {
	enabledCommand := newToggleCommand(testInstance, true, nil)
	require.Equal(testInstance, "`<YES|no>` "+testToggleUsageConstant, enabledCommand.Flags().Lookup(testToggleNameConstant).Usage)

	disabledCommand := newToggleCommand(testInstance, false, nil)
	require.Equal(testInstance, "`<yes|NO>` "+testToggleUsageConstant, disabledCommand.Flags().Lookup(testToggleNameConstant).Usage)
}

func TestNormalizeToggleArguments(testInstance *testing.T) {
	newToggleCommand(testInstance, true, nil)

	testCases := []struct {
		name      string
		arguments []string
		expected  []string
	}{
		{name: "Empty", arguments: nil, expected: nil},
		{name: "JoinsLiteral", arguments: []string{"--color", "no", "warn", "careful"}, expected: []string{"--color=no", "warn", "careful"}},
		{name: "JoinsShorthand", arguments: []string{"-c", "yes"}, expected: []string{"-c=yes"}},
		{name: "LeavesSubcommand", arguments: []string{"--color", "println", "text"}, expected: []string{"--color", "println", "text"}},
		{name: "LeavesInlineValue", arguments: []string{"--color=off", "no"}, expected: []string{"--color=off", "no"}},
		{name: "LeavesUnregisteredFlag", arguments: []string{"--verbose", "no"}, expected: []string{"--verbose", "no"}},
		{name: "StopsAtTerminator", arguments: []string{"println", "--", "--color", "no"}, expected: []string{"println", "--", "--color", "no"}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expected, NormalizeToggleArguments(testCase.arguments))
		})
	}
}
