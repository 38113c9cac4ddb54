package nodeargs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRequiredParameter matches any *MissingRequiredParameterError.
	ErrMissingRequiredParameter = errors.New("missing required parameter")
	// ErrUnrecognizedParameter matches any *UnrecognizedParameterError.
	ErrUnrecognizedParameter = errors.New("unrecognized parameter")
	// ErrInvalidParameterType matches any *InvalidParameterTypeError.
	ErrInvalidParameterType = errors.New("invalid parameter type")
)

// MissingRequiredParameterError reports a parameter the active contract
// requires but the caller did not supply.
type MissingRequiredParameterError struct {
	Name string
}

func (e *MissingRequiredParameterError) Error() string {
	return fmt.Sprintf("required parameter %q undefined", e.Name)
}

// Is reports whether target is ErrMissingRequiredParameter.
func (e *MissingRequiredParameterError) Is(target error) bool {
	return target == ErrMissingRequiredParameter
}

// UnrecognizedParameterError reports every supplied parameter that is not
// part of the active contract. Names is sorted.
type UnrecognizedParameterError struct {
	Names []string
}

func (e *UnrecognizedParameterError) Error() string {
	return fmt.Sprintf("unknown parameter(s): %s", strings.Join(e.Names, ", "))
}

// Is reports whether target is ErrUnrecognizedParameter.
func (e *UnrecognizedParameterError) Is(target error) bool {
	return target == ErrUnrecognizedParameter
}

// InvalidParameterTypeError reports a parameter whose value has the wrong
// kind for its contract field.
type InvalidParameterTypeError struct {
	Name string
	Want string
	Got  any
}

func (e *InvalidParameterTypeError) Error() string {
	return fmt.Sprintf("parameter %q must be %s, got %T", e.Name, e.Want, e.Got)
}

// Is reports whether target is ErrInvalidParameterType.
func (e *InvalidParameterTypeError) Is(target error) bool {
	return target == ErrInvalidParameterType
}
