package docassert

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidPath is wrapped by every error ParsePath returns
var ErrInvalidPath = errors.New("invalid JSONPath")

// PathError describes a path expression that could not be parsed
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s %q", ErrInvalidPath, e.Path)
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidPath, e.Path, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidPath)
func (e *PathError) Unwrap() error {
	return ErrInvalidPath
}

const (
	identPattern   = `[a-zA-Z_][a-zA-Z0-9_]*`
	bracketPattern = `\[(?:\d+|\*|\d*:\d*)\]`
)

// pathGrammar is the whole accepted language: the root sigil, an optional
// bracket on the root, then `.name`, `.name[...]` or `.*` segments
var pathGrammar = regexp.MustCompile(
	`^\$(?:` + bracketPattern + `)?(?:\.(?:` + identPattern + `(?:` + bracketPattern + `)?|\*))*$`,
)

// ValidPath reports whether text is a syntactically valid path expression
func ValidPath(text string) bool {
	return pathGrammar.MatchString(text)
}

// ParsePath converts a path expression such as `$.items[*].id` into a Path.
// The whole text is checked against the grammar before any segment is
// interpreted.
func ParsePath(text string) (Path, error) {
	if !ValidPath(text) {
		return nil, &PathError{Path: text}
	}
	if text == "$" {
		return Root, nil
	}

	tokens := strings.FieldsFunc(strings.TrimPrefix(text, "$"), func(r rune) bool {
		return r == '.' || r == '['
	})
	path := make(Path, 0, len(tokens))
	for _, token := range tokens {
		step, err := parseToken(token)
		if err != nil {
			return nil, &PathError{Path: text, Reason: err.Error()}
		}
		path = append(path, step)
	}
	return path, nil
}

// MustParsePath is like ParsePath but panics on error. Intended for
// package level variables and tests.
func MustParsePath(text string) Path {
	p, err := ParsePath(text)
	if err != nil {
		panic(err)
	}
	return p
}

// parseToken classifies a single segment. A trailing ] marks the bracket
// family, anything else is an object key.
func parseToken(token string) (Step, error) {
	if !strings.HasSuffix(token, "]") {
		if token == "*" {
			return AnyField(), nil
		}
		return FieldStep(token), nil
	}

	inner := strings.TrimSuffix(token, "]")
	if inner == "*" || inner == ":" {
		return AnyIndex(), nil
	}

	colon := strings.IndexByte(inner, ':')
	if colon == -1 {
		idx, err := atoi(inner)
		if err != nil {
			return Step{}, err
		}
		return IndexStep(idx), nil
	}

	from, to := inner[:colon], inner[colon+1:]
	switch {
	case to == "":
		start, err := atoi(from)
		if err != nil {
			return Step{}, err
		}
		return RangeFromStep(start), nil
	case from == "":
		end, err := atoi(to)
		if err != nil {
			return Step{}, err
		}
		return RangeToStep(end), nil
	}
	start, err := atoi(from)
	if err != nil {
		return Step{}, err
	}
	end, err := atoi(to)
	if err != nil {
		return Step{}, err
	}
	return RangeStep(start, end), nil
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("index %q out of range", s)
	}
	return n, nil
}
