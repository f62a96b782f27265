package docassert

import (
	"reflect"
	"sort"
)

// recorder receives the differences found during a walk. Two modes exist:
// collector keeps all of them, detector stops the walk at the first one.
type recorder interface {
	record(d Difference)
	done() bool
}

type collector struct {
	diffs []Difference
}

func (c *collector) record(d Difference) { c.diffs = append(c.diffs, d) }
func (c *collector) done() bool          { return false }

type detector struct {
	found bool
}

func (d *detector) record(Difference) { d.found = true }
func (d *detector) done() bool        { return d.found }

type walker struct {
	cfg *Config
	rec recorder
}

// Diff compares the actual document with the expected one and returns every
// difference not covered by an ignore path. The expected document drives
// the walk: in Inclusive mode only its keys and indices are visited, in
// Strict mode the union of both sides is.
//
// Neither value is modified. A nil cfg means NewConfig(Strict).
func Diff(actual, expected interface{}, cfg *Config) []Difference {
	c := &collector{}
	newWalker(cfg, c).walk(Root, actual, expected)
	return c.diffs
}

// Equal reports whether Diff would return no differences, stopping at the
// first one it finds
func Equal(actual, expected interface{}, cfg *Config) bool {
	d := &detector{}
	newWalker(cfg, d).walk(Root, actual, expected)
	return !d.found
}

// DiffJSON decodes both documents and compares them with Diff
func DiffJSON(actual, expected string, cfg *Config) ([]Difference, error) {
	a, err := Decode([]byte(actual))
	if err != nil {
		return nil, err
	}
	e, err := Decode([]byte(expected))
	if err != nil {
		return nil, err
	}
	return Diff(a, e, cfg), nil
}

func newWalker(cfg *Config, rec recorder) *walker {
	if cfg == nil {
		cfg = NewConfig(Strict)
	}
	return &walker{cfg: cfg, rec: rec}
}

// line records a difference at p unless p is ignored
func (w *walker) line(p Path, actual, expected interface{}) {
	if w.cfg.ignored(p) {
		return
	}
	w.rec.record(Difference{
		Path:     p,
		Actual:   actual,
		Expected: expected,
		Mode:     w.cfg.Mode,
	})
}

func (w *walker) walk(p Path, actual, expected interface{}) {
	if w.rec.done() {
		return
	}

	switch kindOf(expected) {
	case kindNull:
		if kindOf(actual) != kindNull {
			w.line(p, actual, expected)
		}
	case kindBool:
		if kindOf(actual) != kindBool || newValue(actual).MustBool() != newValue(expected).MustBool() {
			w.line(p, actual, expected)
		}
	case kindString:
		if kindOf(actual) != kindString || newValue(actual).MustStr() != newValue(expected).MustStr() {
			w.line(p, actual, expected)
		}
	case kindNumber:
		if !w.numbersEqual(actual, expected) {
			w.line(p, actual, expected)
		}
	case kindArray:
		if kindOf(actual) != kindArray {
			w.line(p, actual, expected)
			return
		}
		if w.cfg.unordered(p) {
			w.walkUnordered(p, actual, expected)
			return
		}
		w.walkArray(p, asArray(actual), asArray(expected))
	case kindObject:
		if kindOf(actual) != kindObject {
			w.line(p, actual, expected)
			return
		}
		w.walkObject(p, asObject(actual), asObject(expected))
	default:
		if !reflect.DeepEqual(actual, expected) {
			w.line(p, actual, expected)
		}
	}
}

func (w *walker) numbersEqual(actual, expected interface{}) bool {
	a, ok := toNumber(actual)
	if !ok {
		return false
	}
	e, _ := toNumber(expected)
	return a.equal(e, w.cfg.Numeric)
}

func (w *walker) walkArray(p Path, actual, expected []interface{}) {
	n := len(expected)
	if w.cfg.Mode == Strict && len(actual) > n {
		n = len(actual)
	}

	for idx := 0; idx < n; idx++ {
		if w.rec.done() {
			return
		}
		sub := p.Append(IndexStep(idx))
		switch {
		case idx < len(actual) && idx < len(expected):
			w.walk(sub, actual[idx], expected[idx])
		case idx < len(expected):
			w.line(sub, Missing, expected[idx])
		default:
			w.line(sub, actual[idx], Missing)
		}
	}
}

// walkUnordered compares two arrays as multisets. Every expected element
// takes the first not yet matched actual element it equals. The matching
// is greedy and never backtracks, so an early element may take a partner
// a later one needed and produce an extra difference on ambiguous input.
//
// All differences are reported on the array itself, never per element.
func (w *walker) walkUnordered(p Path, actualRaw, expectedRaw interface{}) {
	actual, expected := asArray(actualRaw), asArray(expectedRaw)

	if len(expected) > len(actual) || (w.cfg.Mode == Strict && len(expected) != len(actual)) {
		w.line(p, actualRaw, expectedRaw)
	}

	taken := make([]bool, len(actual))
	matched := 0
	for idx, e := range expected {
		if w.rec.done() {
			return
		}
		sub := p.Append(IndexStep(idx))
		found := false
		for candidate, a := range actual {
			if taken[candidate] {
				continue
			}
			if w.equalAt(sub, a, e) {
				taken[candidate] = true
				matched++
				found = true
				break
			}
		}
		if !found {
			w.line(p, actualRaw, expectedRaw)
		}
	}

	if matched != len(actual) {
		w.line(p, actualRaw, expectedRaw)
	}
}

// equalAt runs a stop-at-first walk at p with the same configuration
func (w *walker) equalAt(p Path, actual, expected interface{}) bool {
	d := &detector{}
	(&walker{cfg: w.cfg, rec: d}).walk(p, actual, expected)
	return !d.found
}

func (w *walker) walkObject(p Path, actual, expected map[string]interface{}) {
	keys := sortedKeys(expected)
	if w.cfg.Mode == Strict {
		for key := range actual {
			if _, found := expected[key]; !found {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
	}

	for _, key := range keys {
		if w.rec.done() {
			return
		}
		sub := p.Append(FieldStep(key))
		a, inActual := actual[key]
		e, inExpected := expected[key]
		switch {
		case inActual && inExpected:
			w.walk(sub, a, e)
		case inExpected:
			w.line(sub, Missing, e)
		default:
			w.line(sub, a, Missing)
		}
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
