// Package template renders "{}" positional templates whose arguments are only known at run time.
//
// "{}" consumes the next argument, "{N}" references the N-th argument (zero based) and "{{" / "}}"
// produce literal braces. Every argument must be referenced at least once.
package template

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	openBraceCharacterConstant  = '{'
	closeBraceCharacterConstant = '}'

	unmatchedOpenBraceMessageConstant  = "unmatched '{' in template"
	unmatchedCloseBraceMessageConstant = "unmatched '}' in template"
	invalidPlaceholderMessageConstant  = "invalid placeholder"
	missingArgumentMessageConstant     = "missing template argument"
	unusedArgumentMessageConstant      = "unused template argument"

	placeholderErrorTemplateConstant     = "%w {%s} at offset %d"
	missingArgumentErrorTemplateConstant = "%w: placeholder at offset %d references argument %d but only %d provided"
	unusedArgumentErrorTemplateConstant  = "%w: argument %d (%q) is never referenced"
	braceErrorTemplateConstant           = "%w at offset %d"
)

var (
	// ErrUnmatchedOpenBrace indicates a "{" without a closing "}".
	ErrUnmatchedOpenBrace = errors.New(unmatchedOpenBraceMessageConstant)

	// ErrUnmatchedCloseBrace indicates a "}" that neither closes a placeholder nor is escaped.
	ErrUnmatchedCloseBrace = errors.New(unmatchedCloseBraceMessageConstant)

	// ErrInvalidPlaceholder indicates placeholder contents other than empty or a decimal index.
	ErrInvalidPlaceholder = errors.New(invalidPlaceholderMessageConstant)

	// ErrMissingArgument indicates a placeholder without a matching argument.
	ErrMissingArgument = errors.New(missingArgumentMessageConstant)

	// ErrUnusedArgument indicates an argument no placeholder references.
	ErrUnusedArgument = errors.New(unusedArgumentMessageConstant)
)

// Render substitutes arguments into templateText.
func Render(templateText string, arguments []string) (string, error) {
	var builder strings.Builder
	builder.Grow(len(templateText))

	referencedArguments := make([]bool, len(arguments))
	nextImplicitIndex := 0

	for offset := 0; offset < len(templateText); offset++ {
		character := templateText[offset]

		switch character {
		case openBraceCharacterConstant:
			if offset+1 < len(templateText) && templateText[offset+1] == openBraceCharacterConstant {
				builder.WriteByte(openBraceCharacterConstant)
				offset++
				continue
			}

			closingOffset := strings.IndexByte(templateText[offset+1:], closeBraceCharacterConstant)
			if closingOffset < 0 {
				return "", fmt.Errorf(braceErrorTemplateConstant, ErrUnmatchedOpenBrace, offset)
			}
			placeholderContent := templateText[offset+1 : offset+1+closingOffset]

			argumentIndex, resolveError := resolveArgumentIndex(placeholderContent, &nextImplicitIndex)
			if resolveError != nil {
				return "", fmt.Errorf(placeholderErrorTemplateConstant, resolveError, placeholderContent, offset)
			}
			if argumentIndex >= len(arguments) {
				return "", fmt.Errorf(missingArgumentErrorTemplateConstant, ErrMissingArgument, offset, argumentIndex, len(arguments))
			}

			builder.WriteString(arguments[argumentIndex])
			referencedArguments[argumentIndex] = true
			offset += closingOffset + 1
		case closeBraceCharacterConstant:
			if offset+1 < len(templateText) && templateText[offset+1] == closeBraceCharacterConstant {
				builder.WriteByte(closeBraceCharacterConstant)
				offset++
				continue
			}
			return "", fmt.Errorf(braceErrorTemplateConstant, ErrUnmatchedCloseBrace, offset)
		default:
			builder.WriteByte(character)
		}
	}

	for argumentIndex, referenced := range referencedArguments {
		if !referenced {
			return "", fmt.Errorf(unusedArgumentErrorTemplateConstant, ErrUnusedArgument, argumentIndex, arguments[argumentIndex])
		}
	}

	return builder.String(), nil
}

func resolveArgumentIndex(placeholderContent string, nextImplicitIndex *int) (int, error) {
	if len(placeholderContent) == 0 {
		argumentIndex := *nextImplicitIndex
		*nextImplicitIndex++
		return argumentIndex, nil
	}

	explicitIndex, parseError := strconv.Atoi(placeholderContent)
	if parseError != nil || explicitIndex < 0 {
		return 0, ErrInvalidPlaceholder
	}
	return explicitIndex, nil
}
