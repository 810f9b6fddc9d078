package config

import (
	"fmt"
)

type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

type InvalidConfigError struct {
	Path    string
	Wrapped error
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s is not a valid config file: %v", e.Path, e.Wrapped)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Wrapped
}

type InvalidStyleConfigError struct {
	Path string
	Key  string
}

func (e *InvalidStyleConfigError) Error() string {
	return fmt.Sprintf("%s: style %q must define a start delimiter", e.Path, e.Key)
}
