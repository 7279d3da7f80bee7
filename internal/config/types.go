// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/fakerhelp/fakerhelp/internal/helpdoc"

	"github.com/go-playground/validator/v10"
)

const (
	// StyleAuto picks dark, light or plain output from the terminal.
	StyleAuto Style = "auto"
	// StyleDark forces the dark help style.
	StyleDark Style = "dark"
	// StyleLight forces the light help style.
	StyleLight Style = "light"
	// StyleNoTTY renders help without colors or terminal decorations.
	StyleNoTTY Style = "notty"

	// DefaultWidth is the default word-wrap width for rendered help.
	DefaultWidth = helpdoc.DefaultWidth
)

var (
	// ErrInvalidStyle is returned when a Style value is not recognized.
	ErrInvalidStyle = errors.New("invalid style")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")

	validate = validator.New(validator.WithRequiredStructEnabled())
)

type (
	// Style selects the help rendering style.
	Style string

	// InvalidStyleError is returned when a Style value is not recognized.
	// It wraps ErrInvalidStyle for errors.Is() compatibility.
	InvalidStyleError struct {
		Value Style
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors from Style and range checks.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// UI configures help rendering and diagnostics
		UI UIConfig `json:"ui" toml:"ui" mapstructure:"ui"`
		// Strict makes "not found" lookups exit with a non-zero status
		Strict bool `json:"strict" toml:"strict" mapstructure:"strict"`
		// Sample configures the sample value shown in function help
		Sample SampleConfig `json:"sample" toml:"sample" mapstructure:"sample"`

		// Path is the file the configuration was loaded from, empty for defaults.
		Path string `json:"-" toml:"-" mapstructure:"-"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Style sets the help rendering style
		Style Style `json:"style" toml:"style" mapstructure:"style"`
		// Width sets the help word-wrap width; 0 disables wrapping
		Width int `json:"width" toml:"width" mapstructure:"width" validate:"gte=0,lte=400"`
		// Verbose enables debug logging and hints
		Verbose bool `json:"verbose" toml:"verbose" mapstructure:"verbose"`
	}

	// SampleConfig configures live sample generation in function help.
	SampleConfig struct {
		// Enabled shows a freshly generated sample value
		Enabled bool `json:"enabled" toml:"enabled" mapstructure:"enabled"`
		// Seed makes samples reproducible; 0 draws a random seed
		Seed uint64 `json:"seed" toml:"seed" mapstructure:"seed"`
	}
)

// String returns the string representation of the Style.
func (s Style) String() string { return string(s) }

// IsValid returns whether the Style is one of the defined styles,
// and a list of validation errors if it is not.
func (s Style) IsValid() (bool, []error) {
	switch s {
	case StyleAuto, StyleDark, StyleLight, StyleNoTTY:
		return true, nil
	default:
		return false, []error{&InvalidStyleError{Value: s}}
	}
}

// Error implements the error interface.
func (e *InvalidStyleError) Error() string {
	return fmt.Sprintf("invalid style %q (valid: auto, dark, light, notty)", e.Value)
}

// Unwrap returns ErrInvalidStyle for errors.Is() compatibility.
func (e *InvalidStyleError) Unwrap() error { return ErrInvalidStyle }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to Style.IsValid() and checks Width against its struct tag range.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Style.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("ui.%s: must satisfy %s=%s, got %v",
					fieldKey(fe.Field()), fe.Tag(), fe.Param(), fe.Value()))
			}
		} else {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %s", joinErrors(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// Sample and Strict need no validation beyond their types.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s", joinErrors(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Style:   StyleAuto,
			Width:   DefaultWidth,
			Verbose: false,
		},
		Strict: false,
		Sample: SampleConfig{
			Enabled: true,
			Seed:    0,
		},
	}
}

func joinErrors(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msg := fmt.Sprintf("%d field error(s)", len(errs))
	for _, err := range errs {
		msg += "; " + err.Error()
	}
	return msg
}

// fieldKey maps a Go field name to its config key.
func fieldKey(field string) string {
	switch field {
	case "Width":
		return "width"
	case "Style":
		return "style"
	default:
		return field
	}
}
