// FILE: lixenwraith/settings/errors.go
package settings

import "errors"

var (
	// ErrUnknownParamType is returned when a parameter declares a type other
	// than string, number or boolean. It signals a registration bug, not bad input.
	ErrUnknownParamType = errors.New("unknown param type")

	// ErrPathNotFound is returned by typed accessors for paths holding no value.
	ErrPathNotFound = errors.New("path not found")

	// ErrUnsupportedFormat is returned when a file format cannot be determined.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
