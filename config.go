package docassert

import (
	"fmt"
	"strings"
)

// CompareMode says how much of the actual document has to match
type CompareMode int

const (
	// Strict requires both documents to be equal, including presence and
	// absence of every key and index
	Strict CompareMode = iota
	// Inclusive only requires the expected document to be contained in the
	// actual one; the actual document may carry extra keys and elements
	Inclusive
)

func (m CompareMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Inclusive:
		return "inclusive"
	}
	return fmt.Sprintf("CompareMode(%d)", int(m))
}

// ParseCompareMode is the inverse of CompareMode.String
func ParseCompareMode(s string) (CompareMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "inclusive":
		return Inclusive, nil
	}
	return Strict, fmt.Errorf("unknown compare mode %q, expected strict or inclusive", s)
}

// NumericMode says how numbers are compared
type NumericMode int

const (
	// NumericStrict treats integers and floats as distinct, so 1 != 1.0
	NumericStrict NumericMode = iota
	// AssumeFloat converts both numbers to float64 before comparison
	AssumeFloat
)

func (m NumericMode) String() string {
	switch m {
	case NumericStrict:
		return "strict"
	case AssumeFloat:
		return "assume_float"
	}
	return fmt.Sprintf("NumericMode(%d)", int(m))
}

// ParseNumericMode is the inverse of NumericMode.String
func ParseNumericMode(s string) (NumericMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return NumericStrict, nil
	case "assume_float", "assume-float", "float":
		return AssumeFloat, nil
	}
	return NumericStrict, fmt.Errorf("unknown numeric mode %q, expected strict or assume_float", s)
}

// Config drives a single Diff call. Build it up front and do not modify it
// while Diff runs; Diff itself only reads it.
type Config struct {
	Mode         CompareMode
	Numeric      NumericMode
	IgnorePaths  []Path
	IgnoreOrders []Path
}

// NewConfig returns a Config with the given compare mode and strict numbers
func NewConfig(mode CompareMode) *Config {
	return &Config{Mode: mode, Numeric: NumericStrict}
}

// WithNumericMode sets the numeric mode
func (c *Config) WithNumericMode(m NumericMode) *Config {
	c.Numeric = m
	return c
}

// AddIgnore excludes every location covered by p from the result
func (c *Config) AddIgnore(p Path) *Config {
	c.IgnorePaths = append(c.IgnorePaths, p)
	return c
}

// AddIgnoreOrder makes arrays at locations matched by p compare as
// unordered collections
func (c *Config) AddIgnoreOrder(p Path) *Config {
	c.IgnoreOrders = append(c.IgnoreOrders, p)
	return c
}

// IgnorePathText parses exprs and adds them as ignore paths. Nothing is
// added unless all of them parse.
func (c *Config) IgnorePathText(exprs ...string) error {
	paths, err := parseAll("ignore path", exprs)
	if err != nil {
		return err
	}
	c.IgnorePaths = append(c.IgnorePaths, paths...)
	return nil
}

// IgnoreOrderText parses exprs and adds them as ignore-order paths.
// Nothing is added unless all of them parse.
func (c *Config) IgnoreOrderText(exprs ...string) error {
	paths, err := parseAll("ignore order path", exprs)
	if err != nil {
		return err
	}
	c.IgnoreOrders = append(c.IgnoreOrders, paths...)
	return nil
}

func parseAll(what string, exprs []string) ([]Path, error) {
	paths := make([]Path, 0, len(exprs))
	for _, expr := range exprs {
		p, err := ParsePath(expr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// ignored reports whether a difference at p must not be reported
func (c *Config) ignored(p Path) bool {
	for _, pattern := range c.IgnorePaths {
		if pattern.Prefixes(p) {
			return true
		}
	}
	return false
}

// unordered reports whether the array at p is compared ignoring order
func (c *Config) unordered(p Path) bool {
	for _, pattern := range c.IgnoreOrders {
		if pattern.Matches(p) {
			return true
		}
	}
	return false
}
