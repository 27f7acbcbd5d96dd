/*
 * errors.go, part of ffconv.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ffconv

import (
	"errors"
	"fmt"
	"strings"
)

// The error categories. Errors returned by this module wrap one of these,
// so they can be told apart with errors.Is.
var (
	//A line that doesn't have the shape expected for its dialect and kind.
	ErrMalformed = errors.New("malformed record")
	//A well-formed record that can't be expressed in the target format.
	ErrUnsupported = errors.New("unsupported variant")
	//The input ended in the middle of a multi-line record. This one is fatal.
	ErrExhausted = errors.New("input exhausted")
)

// Error is the error type for the ffconv packages. As with gochem's errors, the
// Decorate method allows callers to add the names of the functions the error
// goes through, without wrapping it.
type Error struct {
	cause    error
	message  string
	line     string //the offending input, if any
	deco     []string
	critical bool
}

// NewError returns a new *Error of the category given by cause (one of the
// Err* variables), with the given message, offending line and caller.
// Only ErrExhausted errors are critical.
func NewError(cause error, message, line, caller string) *Error {
	E := &Error{cause: cause, message: message, line: line, critical: cause == ErrExhausted}
	if caller != "" {
		E.deco = []string{caller}
	}
	return E
}

func (E *Error) Error() string {
	s := fmt.Sprintf("%s: %s", E.cause, E.message)
	if E.line != "" {
		s += fmt.Sprintf(" (line: %q)", E.line)
	}
	if len(E.deco) > 0 {
		s += " [" + strings.Join(E.deco, " <- ") + "]"
	}
	return s
}

// Unwrap returns the category of the error.
func (E *Error) Unwrap() error { return E.cause }

// Decorate adds deco to the list of callers, unless it is empty,
// and returns the current list.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Line returns the input that caused the error, or an empty string.
func (E *Error) Line() string { return E.line }

// Critical returns true if the error should stop the processing of the file.
func (E *Error) Critical() bool { return E.critical }

// Decorate decorates err with caller if err is an *Error, and returns it.
// Other errors are returned unchanged.
func Decorate(err error, caller string) error {
	var E *Error
	if errors.As(err, &E) {
		E.Decorate(caller)
	}
	return err
}

// WithLine returns err with the offending line set, if err is an *Error without one.
func WithLine(err error, line string) error {
	var E *Error
	if errors.As(err, &E) && E.line == "" {
		E.line = line
	}
	return err
}
