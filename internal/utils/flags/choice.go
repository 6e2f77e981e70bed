package flags

import (
	"fmt"
	"strings"
)

const (
	choiceSeparatorConstant        = "|"
	choicePlaceholderTemplate      = "<%s>"
	choiceUsageWithoutTextTemplate = "`%s`"
	choiceUsageWithTextTemplate    = "`%s` %s"
)

// FormatChoiceUsage renders flag usage as "`<console|STRUCTURED|diagnostic>` description",
// upper-casing the default. Blank and case-insensitively repeated choices are dropped.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))

	displayedChoices := make([]string, 0, len(choices))
	seenChoices := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		normalizedChoice := strings.ToLower(trimmedChoice)
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, seen := seenChoices[normalizedChoice]; seen {
			continue
		}
		seenChoices[normalizedChoice] = struct{}{}

		if normalizedChoice == normalizedDefault {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		displayedChoices = append(displayedChoices, trimmedChoice)
	}

	placeholder := fmt.Sprintf(choicePlaceholderTemplate, strings.Join(displayedChoices, choiceSeparatorConstant))
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageWithoutTextTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageWithTextTemplate, placeholder, description)
}
