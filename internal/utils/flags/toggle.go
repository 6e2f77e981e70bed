package flags

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

const (
	toggleValueTypeConstant            = "bool"
	toggleInvalidValueTemplateConstant = "invalid toggle value %q"
	toggleEnabledPlaceholderConstant   = "<YES|no>"
	toggleDisabledPlaceholderConstant  = "<yes|NO>"
	toggleUsageWithoutTextTemplate     = "`%s`"
	toggleUsageWithTextTemplate        = "`%s` %s"
	longFlagPrefixConstant             = "--"
	shortFlagPrefixConstant            = "-"
	flagValueSeparatorConstant         = "="
	argumentTerminatorConstant         = "--"
)

var toggleLiterals = map[string]bool{
	"true": true, "yes": true, "on": true, "1": true, "t": true, "y": true,
	"false": false, "no": false, "off": false, "0": false, "f": false, "n": false,
}

type toggleRegistry struct {
	mutex      sync.RWMutex
	names      map[string]struct{}
	shorthands map[string]struct{}
}

var registeredToggles = &toggleRegistry{
	names:      map[string]struct{}{},
	shorthands: map[string]struct{}{},
}

func (registry *toggleRegistry) register(name string, shorthand string) {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()
	registry.names[name] = struct{}{}
	if len(shorthand) > 0 {
		registry.shorthands[shorthand] = struct{}{}
	}
}

func (registry *toggleRegistry) contains(flagName string, shorthand bool) bool {
	registry.mutex.RLock()
	defer registry.mutex.RUnlock()
	if shorthand {
		_, exists := registry.shorthands[flagName]
		return exists
	}
	_, exists := registry.names[flagName]
	return exists
}

// AddToggleFlag registers a boolean flag that accepts yes/no, on/off and true/false spellings,
// e.g. --color, --color=no or --color off.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	flagSet.VarP(newToggleValue(defaultValue, target), name, shorthand, usage)
	flag := flagSet.Lookup(name)
	if flag == nil {
		return
	}
	flag.NoOptDefVal = strconv.FormatBool(true)
	flag.Usage = toggleUsage(usage, defaultValue)

	registeredToggles.register(name, shorthand)
}

// NormalizeToggleArguments joins a registered toggle flag with a following toggle literal
// ("--color no" becomes "--color=no") so pflag does not treat the value as a positional argument.
// "--color println" is left alone. Arguments after "--" are left untouched.
func NormalizeToggleArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		current := arguments[index]
		if current == argumentTerminatorConstant {
			return append(normalized, arguments[index:]...)
		}

		if isBareToggle(current) && index+1 < len(arguments) && isToggleLiteral(arguments[index+1]) {
			normalized = append(normalized, current+flagValueSeparatorConstant+arguments[index+1])
			index++
			continue
		}
		normalized = append(normalized, current)
	}

	return normalized
}

// isBareToggle reports whether argument names a registered toggle without an inline value.
func isBareToggle(argument string) bool {
	if strings.Contains(argument, flagValueSeparatorConstant) {
		return false
	}
	if strings.HasPrefix(argument, longFlagPrefixConstant) {
		flagName := strings.TrimPrefix(argument, longFlagPrefixConstant)
		return len(flagName) > 0 && registeredToggles.contains(flagName, false)
	}
	if strings.HasPrefix(argument, shortFlagPrefixConstant) {
		shorthand := strings.TrimPrefix(argument, shortFlagPrefixConstant)
		return len(shorthand) == 1 && registeredToggles.contains(shorthand, true)
	}
	return false
}

func isToggleLiteral(argument string) bool {
	_, known := toggleLiterals[strings.ToLower(strings.TrimSpace(argument))]
	return known
}

func toggleUsage(description string, defaultValue bool) string {
	placeholder := toggleDisabledPlaceholderConstant
	if defaultValue {
		placeholder = toggleEnabledPlaceholderConstant
	}
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf(toggleUsageWithoutTextTemplate, placeholder)
	}
	return fmt.Sprintf(toggleUsageWithTextTemplate, placeholder, trimmedDescription)
}

type toggleValue struct {
	enabled bool
	target  *bool
}

func newToggleValue(defaultValue bool, target *bool) *toggleValue {
	if target != nil {
		*target = defaultValue
	}
	return &toggleValue{enabled: defaultValue, target: target}
}

func (value *toggleValue) Set(rawValue string) error {
	enabled, parseError := parseToggle(rawValue)
	if parseError != nil {
		return parseError
	}

	value.enabled = enabled
	if value.target != nil {
		*value.target = enabled
	}
	return nil
}

func (value *toggleValue) String() string {
	return strconv.FormatBool(value != nil && value.enabled)
}

func (value *toggleValue) Type() string {
	return toggleValueTypeConstant
}

func parseToggle(rawValue string) (bool, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if len(normalizedValue) == 0 {
		return true, nil
	}

	enabled, known := toggleLiterals[normalizedValue]
	if !known {
		return false, fmt.Errorf(toggleInvalidValueTemplateConstant, rawValue)
	}
	return enabled, nil
}
