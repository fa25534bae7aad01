package types

import (
	"fmt"
	"strings"
)

// IntBool is a boolean stored and serialized as the integer 0 or 1.
//
// On input, JSON booleans are accepted as well.
type IntBool int

const (
	False IntBool = 0
	True  IntBool = 1
)

// NewIntBool converts a bool.
func NewIntBool(b bool) IntBool {
	if b {
		return True
	}
	return False
}

// Bool reports if the flag is set.
func (b IntBool) Bool() bool {
	return b != False
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (b *IntBool) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true", "1":
		*b = True
	case "false", "0":
		*b = False
	case "null":
	default:
		return fmt.Errorf("%s is not a valid flag, use true, false, 1 or 0", data)
	}

	return nil
}
