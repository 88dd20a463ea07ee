package game

import "fmt"

// LoadError is returned when an asset or chart could not be fetched.
type LoadError struct {
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load %v: %v", e.Location, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a fetched asset or chart is malformed.
type ParseError struct {
	Location string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %v: %v", e.Location, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
