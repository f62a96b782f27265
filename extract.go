package docassert

import (
	"fmt"
	"sort"
)

// Extract returns the value at p inside doc. Only concrete paths made of
// Field and Index steps can be extracted; the root, wildcards and ranges
// report false, as does a location doc does not contain.
func Extract(doc interface{}, p Path) (interface{}, bool) {
	if p.IsRoot() {
		return nil, false
	}
	current := doc
	for _, step := range p {
		switch step.Kind {
		case Field:
			obj := asObject(current)
			if obj == nil {
				return nil, false
			}
			v, found := obj[step.Name]
			if !found {
				return nil, false
			}
			current = v
		case Index:
			if kindOf(current) != kindArray {
				return nil, false
			}
			arr := asArray(current)
			if step.Index < 0 || step.Index >= len(arr) {
				return nil, false
			}
			current = arr[step.Index]
		default:
			return nil, false
		}
	}
	return current, true
}

// ExtractAll captures one value per named path. It fails on the first
// name, in sorted order, whose path is not present in doc.
func ExtractAll(doc interface{}, paths map[string]Path) (map[string]interface{}, error) {
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]interface{}, len(paths))
	for _, name := range names {
		v, ok := Extract(doc, paths[name])
		if !ok {
			return nil, fmt.Errorf("variable %s: path %s not found in the document", name, paths[name])
		}
		out[name] = v
	}
	return out, nil
}
