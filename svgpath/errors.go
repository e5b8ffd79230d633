package svgpath

import "fmt"

// MalformedPathError is returned by Parse when a path data string
// cannot be compiled: an unrecognized command letter, a command
// followed by too few numeric arguments, or a character that is
// neither a command nor part of a number.
// No commands are returned alongside the error.
type MalformedPathError struct {
	Reason string
	Data   string // the path data being parsed
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path data %q: %s", e.Data, e.Reason)
}

// UnsupportedTransformError is returned when a transform attribute
// contains an unrecognized function name, or a known function with the
// wrong number of arguments.
type UnsupportedTransformError struct {
	Name   string // transform function name, as written
	Reason string
}

func (e *UnsupportedTransformError) Error() string {
	return fmt.Sprintf("unsupported transform %q: %s", e.Name, e.Reason)
}
