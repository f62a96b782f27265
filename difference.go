package docassert

import (
	"encoding/json"
	"fmt"
	"strings"
)

type missing struct{}

func (missing) String() string { return "<missing>" }

// Missing marks the side of a Difference on which the location does not exist
var Missing = missing{}

// Difference is a single mismatch between the actual and the expected document
type Difference struct {
	Path     Path
	Actual   interface{}
	Expected interface{}
	Mode     CompareMode
}

// MissingFromActual reports whether the location exists only in the
// expected document
func (d Difference) MissingFromActual() bool {
	return d.Actual == Missing
}

// MissingFromExpected reports whether the location exists only in the
// actual document
func (d Difference) MissingFromExpected() bool {
	return d.Expected == Missing
}

// Location renders the path of d for humans; the root is "(root)"
func (d Difference) Location() string {
	if d.Path.IsRoot() {
		return "(root)"
	}
	return d.Path.String()
}

func (d Difference) String() string {
	switch {
	case d.MissingFromActual():
		return fmt.Sprintf("json atom at path %q is missing from actual", d.Location())
	case d.MissingFromExpected():
		// only reachable in strict mode, inclusive comparison never
		// looks at locations the expected document lacks
		return fmt.Sprintf("json atom at path %q is missing from expected", d.Location())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "json atoms at path %q are not equal:\n", d.Location())
	b.WriteString("    actual:\n")
	b.WriteString(indent(pretty(d.Actual), 8))
	b.WriteString("\n    expected:\n")
	b.WriteString(indent(pretty(d.Expected), 8))
	return b.String()
}

// Report renders all differences separated by blank lines
func Report(diffs []Difference) string {
	lines := make([]string, len(diffs))
	for i, d := range diffs {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n\n")
}

func pretty(v interface{}) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(out)
}

func indent(s string, level int) string {
	prefix := strings.Repeat(" ", level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
