package types

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt is an integer that also accepts numeric-looking JSON strings
// ("350000"), since admin forms historically posted numbers as text.
// Blank and null inputs leave it unset, the same way blank text fields
// are normalized to absent. Non-finite and fractional values are
// rejected.
type FlexInt struct {
	value int
	set   bool
}

// Flex wraps a plain int as a set FlexInt.
func Flex(v int) FlexInt { return FlexInt{value: v, set: true} }

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	return n.parse(string(bytes.Trim(b, `"`)))
}

// UnmarshalParam routes form and query binding through the same
// coercion as JSON.
func (n *FlexInt) UnmarshalParam(p string) error {
	return n.parse(strings.TrimSpace(p))
}

func (n *FlexInt) parse(s string) error {
	if s == "null" || s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return fmt.Errorf("not a finite integer: %q", s)
	}
	n.value = int(f)
	n.set = true
	return nil
}

// Int returns the plain value; zero when unset.
func (n FlexInt) Int() int { return n.value }

// Valid reports whether a value was actually supplied.
func (n FlexInt) Valid() bool { return n.set }

// IntPtr converts an optional FlexInt to an optional int. Both a nil
// pointer and a bound-but-blank value come back nil.
func IntPtr(n *FlexInt) *int {
	if n == nil || !n.set {
		return nil
	}
	v := n.value
	return &v
}
