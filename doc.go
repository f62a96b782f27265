// Package docassert compares JSON documents the way an API contract test
// needs it: an actual response body against an expected one, with
// locations that may legitimately change (ids, timestamps) excluded and
// arrays that may come back in any order compared as collections.
//
// Locations are written as small JSONPath-like expressions:
//
//	$                 the whole document
//	$.user.name       object keys
//	$.items[3]        an array position
//	$.items[*].id     any position
//	$.items[1:4]      positions 1, 2 and 3
//	$.items[2:]       positions from 2 on
//	$.items[:5]       positions below 5
//	$.user.*          any key
//
// A typical call:
//
//	cfg := docassert.NewConfig(docassert.Strict)
//	if err := cfg.IgnorePathText("$.id", "$.items[*].created_at"); err != nil {
//		return err
//	}
//	diffs, err := docassert.DiffJSON(actualBody, expectedBody, cfg)
//
// Documents are walked recursively, one Go stack frame per nesting level.
// Callers comparing untrusted input should bound its depth first.
package docassert
