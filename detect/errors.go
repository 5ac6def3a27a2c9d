package detect

import "fmt"

// ConfigError reports invalid detector configuration: an empty
// candidate set, an unrecognized language name or ISO code, or a
// relative distance outside [0.0, 1.0). It signals a programming
// error, not a runtime condition.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return "detect: " + e.msg
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// InputError reports malformed text at the detection boundary.
// The only malformed input Go strings can carry is invalid UTF-8;
// no detection code ever observes invalid code points.
type InputError struct {
	msg string
}

func (e *InputError) Error() string {
	return "detect: " + e.msg
}
