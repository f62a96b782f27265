package docassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixes(t *testing.T) {
	tcs := []struct {
		pattern, subject string
		want             bool
	}{
		{"$.a.b.c", "$.a.b.c", true},
		{"$.a.b", "$.a.b.c", true},
		{"$.a.b.c", "$.a.b", false},
		{"$.a.b.c", "$.a.b.d", false},
		{"$.a.*.c[0:3]", "$.a.b.c[1]", true},
		{"$.a.*.c[0:3]", "$.a.b.c[0]", true},
		{"$.a.*.c[0:3]", "$.a.b.c[3]", false},
		{"$.a.*.c[0]", "$.a[1].c[0]", false},
		{"$.a.*.c[0].*", "$.a.d.c[0]", false},
		{"$.a.*.c[:3]", "$.a.d.c[2]", true},
		{"$.a.*.c[:3]", "$.a.d.c[3]", false},
		{"$.a.*.c[:3]", "$.a.d.c[4]", false},
		{"$.a.*.c[3:]", "$.a.d.c[4]", true},
		{"$.a.*.c[3:]", "$.a.d.c[3]", true},
		{"$.a.*.c[3:]", "$.a.d.c[2]", false},
		{"$[*]", "$[7].x", true},
		{"$[*]", "$.x", false},
		{"$.*", "$[0]", false},
		{"$", "$", true},
		{"$", "$.a[0]", true},
		{"$.a", "$", false},
	}

	for _, tc := range tcs {
		pattern, subject := MustParsePath(tc.pattern), MustParsePath(tc.subject)
		assert.Equal(t, tc.want, Prefixes(pattern, subject), "%s prefixes %s", tc.pattern, tc.subject)
	}
}

// a wildcard in the subject is not covered by a concrete pattern step
func TestPrefixesNotSymmetric(t *testing.T) {
	assert.True(t, Prefixes(MustParsePath("$.*"), MustParsePath("$.a")))
	assert.False(t, Prefixes(MustParsePath("$.a"), MustParsePath("$.*")))
	assert.True(t, Prefixes(MustParsePath("$[1:3]"), MustParsePath("$[1:3]")))
	assert.False(t, Prefixes(MustParsePath("$[0:5]"), MustParsePath("$[1:3]")))
}

func TestMatches(t *testing.T) {
	assert := assert.New(t)
	assert.True(MustParsePath("$.a[*].b").Matches(MustParsePath("$.a[3].b")))
	assert.False(MustParsePath("$.a[*]").Matches(MustParsePath("$.a[3].b")))
	assert.True(Root.Matches(Root))
	assert.False(Root.Matches(MustParsePath("$.a")))
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 8)
	base[0] = FieldStep("a")

	left := base.Append(FieldStep("l"))
	right := base.Append(FieldStep("r"))

	assert.Equal(t, "$.a.l", left.String())
	assert.Equal(t, "$.a.r", right.String())
	assert.Len(t, base, 1)
}

func TestPathString(t *testing.T) {
	p := Root.
		Append(FieldStep("a")).
		Append(IndexStep(0)).
		Append(FieldStep("b")).
		Append(RangeStep(1, 4)).
		Append(AnyField())
	assert.Equal(t, "$.a[0].b[1:4].*", p.String())
	assert.Equal(t, "$", Root.String())
	assert.True(t, p.Equal(MustParsePath(p.String())))
	assert.False(t, p.Equal(Root))
}
