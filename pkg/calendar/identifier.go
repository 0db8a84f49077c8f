package calendar

import (
	"encoding/json"
	"strconv"
)

// ID identifies an event or a resource. The frontend accepts both numeric and
// string identifiers and whichever form the caller supplies must survive
// serialization unconverted, so ID is a tagged int-or-string union instead of
// a plain string.
type ID struct {
	num      int
	str      string
	isString bool
	present  bool
}

// IntID returns an ID carrying a numeric identifier.
func IntID(v int) ID {
	return ID{num: v, present: true}
}

// StringID returns an ID carrying a string identifier.
func StringID(v string) ID {
	return ID{str: v, isString: true, present: true}
}

// IsZero reports whether the ID was never assigned a value.
func (id ID) IsZero() bool {
	return !id.present
}

// Int returns the numeric value and whether the ID holds one.
func (id ID) Int() (int, bool) {
	return id.num, id.present && !id.isString
}

// Str returns the string value and whether the ID holds one.
func (id ID) Str() (string, bool) {
	return id.str, id.present && id.isString
}

func (id ID) String() string {
	if id.isString {
		return id.str
	}
	return strconv.Itoa(id.num)
}

// MarshalJSON encodes the identifier as the same JSON type it was
// constructed with.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.isString {
		return json.Marshal(id.str)
	}
	return json.Marshal(id.num)
}
