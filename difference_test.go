package docassert

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifferenceString(t *testing.T) {
	assert := assert.New(t)

	d := Difference{Path: MustParsePath("$.id"), Actual: json.Number("1"), Expected: json.Number("2"), Mode: Strict}
	assert.Equal(`json atoms at path "$.id" are not equal:
    actual:
        1
    expected:
        2`, d.String())

	d = Difference{
		Path:     Root,
		Actual:   map[string]interface{}{"a": []interface{}{true}},
		Expected: "x",
		Mode:     Inclusive,
	}
	assert.Equal(`json atoms at path "(root)" are not equal:
    actual:
        {
          "a": [
            true
          ]
        }
    expected:
        "x"`, d.String())

	d = Difference{Path: MustParsePath("$.a[1]"), Actual: Missing, Expected: json.Number("2"), Mode: Inclusive}
	assert.Equal(`json atom at path "$.a[1]" is missing from actual`, d.String())

	d = Difference{Path: MustParsePath("$.a[1]"), Actual: Missing, Expected: json.Number("2"), Mode: Strict}
	assert.Equal(`json atom at path "$.a[1]" is missing from actual`, d.String())

	d = Difference{Path: MustParsePath("$.extra"), Actual: nil, Expected: Missing, Mode: Strict}
	assert.Equal(`json atom at path "$.extra" is missing from expected`, d.String())
	assert.True(d.MissingFromExpected())
	assert.False(d.MissingFromActual())
}

func TestReport(t *testing.T) {
	lines, err := DiffJSON(`{"a": 1, "b": 2}`, `{"a": 2, "c": 3}`, NewConfig(Strict))
	assert.NoError(t, err)
	assert.Len(t, lines, 3)

	report := Report(lines)
	assert.Equal(t, 3, strings.Count(report, "json atom"))
	assert.Contains(t, report, `path "$.b" is missing from expected`)
	assert.Contains(t, report, `path "$.c" is missing from actual`)
	assert.Empty(t, Report(nil))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  foo", indent("foo", 2))
	assert.Equal(t, "  foo\n  bar", indent("foo\nbar", 2))
}
