package docassert

import (
	"strconv"
	"strings"
)

// StepKind says what a single Step of a Path selects
type StepKind int

const (
	// Field is an exact object key
	Field StepKind = iota
	// Index is an exact array position
	Index
	// IndexRange selects array positions Start <= i < End
	IndexRange
	// IndexRangeFrom selects array positions Start <= i
	IndexRangeFrom
	// IndexRangeTo selects array positions i < End
	IndexRangeTo
	// WildcardIndex selects any array position
	WildcardIndex
	// WildcardField selects any object key
	WildcardField
)

// Step is one element of a Path. Only the members relevant for Kind are set.
type Step struct {
	Kind  StepKind
	Name  string
	Index int
	Start int
	End   int
}

// FieldStep returns a step selecting object key name
func FieldStep(name string) Step { return Step{Kind: Field, Name: name} }

// IndexStep returns a step selecting array position idx
func IndexStep(idx int) Step { return Step{Kind: Index, Index: idx} }

// RangeStep returns a step selecting array positions start <= i < end
func RangeStep(start, end int) Step { return Step{Kind: IndexRange, Start: start, End: end} }

// RangeFromStep returns a step selecting array positions start <= i
func RangeFromStep(start int) Step { return Step{Kind: IndexRangeFrom, Start: start} }

// RangeToStep returns a step selecting array positions i < end
func RangeToStep(end int) Step { return Step{Kind: IndexRangeTo, End: end} }

// AnyIndex returns a step selecting every array position
func AnyIndex() Step { return Step{Kind: WildcardIndex} }

// AnyField returns a step selecting every object key
func AnyField() Step { return Step{Kind: WildcardField} }

func (s Step) String() string {
	switch s.Kind {
	case Field:
		return "." + s.Name
	case Index:
		return "[" + strconv.Itoa(s.Index) + "]"
	case IndexRange:
		return "[" + strconv.Itoa(s.Start) + ":" + strconv.Itoa(s.End) + "]"
	case IndexRangeFrom:
		return "[" + strconv.Itoa(s.Start) + ":]"
	case IndexRangeTo:
		return "[:" + strconv.Itoa(s.End) + "]"
	case WildcardIndex:
		return "[*]"
	case WildcardField:
		return ".*"
	}
	return "?"
}

// covers reports whether pattern step s selects the concrete step o
func (s Step) covers(o Step) bool {
	if s == o {
		return true
	}
	switch s.Kind {
	case WildcardField:
		return o.Kind == Field
	case WildcardIndex:
		return o.Kind == Index
	case IndexRange:
		return o.Kind == Index && s.Start <= o.Index && o.Index < s.End
	case IndexRangeFrom:
		return o.Kind == Index && s.Start <= o.Index
	case IndexRangeTo:
		return o.Kind == Index && o.Index < s.End
	}
	return false
}

// Path is a location inside a JSON document. The empty Path is the root.
//
// Paths are values: Append never modifies the receiver, so a Path may be
// shared between goroutines and between sibling branches of a walk.
type Path []Step

// Root is the document root
var Root = Path(nil)

// IsRoot reports whether p addresses the whole document
func (p Path) IsRoot() bool { return len(p) == 0 }

// Append returns a new Path with next added after the steps of p
func (p Path) Append(next Step) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = next
	return out
}

// Equal reports whether p and o consist of the same steps
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Prefixes reports whether p, used as a pattern, covers subject or any of
// its ancestors. The root covers everything, and nothing but the root
// covers the root.
func (p Path) Prefixes(subject Path) bool {
	if p.IsRoot() {
		return true
	}
	if len(p) > len(subject) {
		return false
	}
	for i := range p {
		if !p[i].covers(subject[i]) {
			return false
		}
	}
	return true
}

// Matches reports whether p covers exactly subject, not its descendants
func (p Path) Matches(subject Path) bool {
	return len(p) == len(subject) && p.Prefixes(subject)
}

// Prefixes is the function form of Path.Prefixes
func Prefixes(pattern, subject Path) bool {
	return pattern.Prefixes(subject)
}

// String renders p in the syntax accepted by ParsePath
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("$")
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}
