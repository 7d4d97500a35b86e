package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidBool is returned by ParseStrictBool for anything but true/false.
var ErrInvalidBool = errors.New("must be true or false")

// ParseStrictBool accepts exactly "true" or "false".
func ParseStrictBool(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, ErrInvalidBool
	}
}

// ParseLooseBool is used for spreadsheet cells, which come in many spellings.
func ParseLooseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "y":
		return true, nil
	case "false", "0", "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("%q: %w", value, ErrInvalidBool)
	}
}

// ParseID parses a positive record identifier.
func ParseID(value string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", value, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return uint(id), nil
}
