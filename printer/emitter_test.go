package printer_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/buildprint/printer"
)

const (
	testClearLinePrefixConstant     = printer.ChannelPrefixCargoWarning + "\x1b[2K\r"
	testResetSequenceConstant       = "\x1b[0m"
	testBoldSequenceConstant        = "\x1b[1m"
	testCustomChannelPrefixConstant = "::notice::"
	testPlainMessageConstant        = "x"
)

func newTestEmitter(colorizer printer.Colorizer) (*printer.Emitter, *bytes.Buffer) {
	outputBuffer := &bytes.Buffer{}
	return printer.NewEmitter(outputBuffer, printer.ChannelPrefixCargoWarning, colorizer), outputBuffer
}

func TestEmitterPrintfWritesSingleClearedLine(testInstance *testing.T) {
	testCases := []struct {
		name           string
		invoke         func(emitter *printer.Emitter)
		expectedOutput string
	}{
		{
			name:           "literal_message",
			invoke:         func(emitter *printer.Emitter) { emitter.Printf("hello world!") },
			expectedOutput: testClearLinePrefixConstant + "hello world!\n",
		},
		{
			name:           "single_argument",
			invoke:         func(emitter *printer.Emitter) { emitter.Printf("hello %d", 33) },
			expectedOutput: testClearLinePrefixConstant + "hello 33\n",
		},
		{
			name:           "three_arguments",
			invoke:         func(emitter *printer.Emitter) { emitter.Printf("hello %d, %d, %d", 1, 2, 3) },
			expectedOutput: testClearLinePrefixConstant + "hello 1, 2, 3\n",
		},
		{
			name:           "empty_format",
			invoke:         func(emitter *printer.Emitter) { emitter.Printf("") },
			expectedOutput: testClearLinePrefixConstant + "\n",
		},
		{
			name:           "blank",
			invoke:         func(emitter *printer.Emitter) { emitter.Blank() },
			expectedOutput: testClearLinePrefixConstant + "\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			emitter, outputBuffer := newTestEmitter(printer.ANSIColorizer{})

			testCase.invoke(emitter)

			require.Equal(testInstance, testCase.expectedOutput, outputBuffer.String())
			require.Equal(testInstance, 1, strings.Count(outputBuffer.String(), "\n"))
		})
	}
}

func TestEmitterLabeledLinesFollowPrefixLayout(testInstance *testing.T) {
	testCases := []struct {
		label        printer.Label
		colorCode    string
		labelDisplay string
		invoke       func(emitter *printer.Emitter, message string)
	}{
		{
			label:        printer.LabelInfo,
			colorCode:    "32",
			labelDisplay: "info",
			invoke:       func(emitter *printer.Emitter, message string) { emitter.Infof("%s", message) },
		},
		{
			label:        printer.LabelWarning,
			colorCode:    "33",
			labelDisplay: "warning",
			invoke:       func(emitter *printer.Emitter, message string) { emitter.Warnf("%s", message) },
		},
		{
			label:        printer.LabelError,
			colorCode:    "31",
			labelDisplay: "error",
			invoke:       func(emitter *printer.Emitter, message string) { emitter.Errorf("%s", message) },
		},
		{
			label:        printer.LabelNote,
			colorCode:    "36",
			labelDisplay: "note",
			invoke:       func(emitter *printer.Emitter, message string) { emitter.Notef("%s", message) },
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.labelDisplay, func(testInstance *testing.T) {
			expectedLine := testClearLinePrefixConstant +
				"   " + testBoldSequenceConstant + fmt.Sprintf("\x1b[%sm", testCase.colorCode) +
				testCase.labelDisplay + ":" + testResetSequenceConstant + " " + testPlainMessageConstant + "\n"

			shorthandEmitter, shorthandBuffer := newTestEmitter(printer.ANSIColorizer{})
			testCase.invoke(shorthandEmitter, testPlainMessageConstant)
			require.Equal(testInstance, expectedLine, shorthandBuffer.String())

			labeledEmitter, labeledBuffer := newTestEmitter(printer.ANSIColorizer{})
			labeledEmitter.Labeledf(testCase.label, testPlainMessageConstant)
			require.Equal(testInstance, expectedLine, labeledBuffer.String())
		})
	}
}

func TestEmitterInfoScenario(testInstance *testing.T) {
	emitter, outputBuffer := newTestEmitter(printer.ANSIColorizer{})

	emitter.Infof("hello %d", 33)

	require.Equal(testInstance, testClearLinePrefixConstant+"   \x1b[1m\x1b[32minfo:\x1b[0m hello 33\n", outputBuffer.String())
}

func TestEmitterLabelNoneMatchesPrintf(testInstance *testing.T) {
	labeledEmitter, labeledBuffer := newTestEmitter(printer.ANSIColorizer{})
	plainEmitter, plainBuffer := newTestEmitter(printer.ANSIColorizer{})

	labeledEmitter.Labeledf(printer.LabelNone, "hello %d", 1)
	plainEmitter.Printf("hello %d", 1)

	require.Equal(testInstance, plainBuffer.String(), labeledBuffer.String())
}

func TestEmitterRepeatedCallsProduceIdenticalLines(testInstance *testing.T) {
	emitter, outputBuffer := newTestEmitter(printer.ANSIColorizer{})

	emitter.Warnf("hello %d, %d, %d", 1, 2, 3)
	emitter.Warnf("hello %d, %d, %d", 1, 2, 3)

	lines := strings.SplitAfter(outputBuffer.String(), "\n")
	require.Len(testInstance, lines, 3)
	require.Equal(testInstance, lines[0], lines[1])
	require.Empty(testInstance, lines[2])
}

func TestEmitterHonorsChannelPrefixAndColorizer(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	emitter := printer.NewEmitter(outputBuffer, testCustomChannelPrefixConstant, printer.PlainColorizer{})

	emitter.Errorf("broken %s", "pipe")

	require.Equal(testInstance, testCustomChannelPrefixConstant, emitter.ChannelPrefix())
	require.Equal(testInstance, testCustomChannelPrefixConstant+"\x1b[2K\r   error: broken pipe\n", outputBuffer.String())
}

func TestNewEmitterDefaults(testInstance *testing.T) {
	emitter := printer.NewEmitter(nil, printer.ChannelPrefixCargoWarning, nil)

	require.NotPanics(testInstance, func() { emitter.Notef("discarded") })
	require.Equal(testInstance, testClearLinePrefixConstant+"content\n", emitter.RenderLine("content"))
}

func TestDefaultEmitterUsesCargoChannel(testInstance *testing.T) {
	require.Equal(testInstance, printer.ChannelPrefixCargoWarning, printer.Default().ChannelPrefix())
}
