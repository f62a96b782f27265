package docassert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/stretchr/objx"
)

type kind int

const (
	kindNull kind = iota
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
	// kindOther is any Go value that did not come out of a JSON decoder
	kindOther
)

func (k kind) String() string {
	return [...]string{"null", "bool", "number", "string", "array", "object", "other"}[k]
}

// newValue wraps i so the objx type predicates can be used on it
func newValue(i interface{}) *objx.Value {
	return objx.New(map[string]interface{}{"v": i}).Get("v")
}

func kindOf(i interface{}) kind {
	v := newValue(i)
	switch {
	case v.IsNil():
		return kindNull
	case v.IsBool():
		return kindBool
	case v.IsStr():
		return kindString
	case v.IsInterSlice():
		return kindArray
	case v.IsMSI(), v.IsObjxMap():
		return kindObject
	}
	if _, ok := toNumber(i); ok {
		return kindNumber
	}
	return kindOther
}

func asArray(i interface{}) []interface{} {
	return newValue(i).MustInterSlice()
}

func asObject(i interface{}) map[string]interface{} {
	switch m := i.(type) {
	case map[string]interface{}:
		return m
	case objx.Map:
		return map[string]interface{}(m)
	}
	return nil
}

// number is a JSON number split into the integer and float classes.
// Integers are kept exact, floats as float64.
type number struct {
	float bool
	i     *big.Int
	f     float64
}

func (n number) asFloat() float64 {
	if n.float {
		return n.f
	}
	f, _ := new(big.Float).SetInt(n.i).Float64()
	return f
}

func (n number) equal(o number, mode NumericMode) bool {
	if mode == AssumeFloat {
		return n.asFloat() == o.asFloat()
	}
	if n.float != o.float {
		return false
	}
	if n.float {
		return n.f == o.f
	}
	return n.i.Cmp(o.i) == 0
}

func toNumber(i interface{}) (number, bool) {
	switch n := i.(type) {
	case json.Number:
		return parseNumber(string(n))
	case float64:
		return number{float: true, f: n}, true
	case float32:
		return number{float: true, f: float64(n)}, true
	case int:
		return number{i: big.NewInt(int64(n))}, true
	case int8:
		return number{i: big.NewInt(int64(n))}, true
	case int16:
		return number{i: big.NewInt(int64(n))}, true
	case int32:
		return number{i: big.NewInt(int64(n))}, true
	case int64:
		return number{i: big.NewInt(n)}, true
	case uint:
		return number{i: new(big.Int).SetUint64(uint64(n))}, true
	case uint8:
		return number{i: new(big.Int).SetUint64(uint64(n))}, true
	case uint16:
		return number{i: new(big.Int).SetUint64(uint64(n))}, true
	case uint32:
		return number{i: new(big.Int).SetUint64(uint64(n))}, true
	case uint64:
		return number{i: new(big.Int).SetUint64(n)}, true
	}
	return number{}, false
}

// parseNumber classifies a JSON number literal: a fraction or an exponent
// makes it a float, everything else is an integer
func parseNumber(s string) (number, bool) {
	if !strings.ContainsAny(s, ".eE") {
		if i, ok := new(big.Int).SetString(s, 10); ok {
			return number{i: i}, true
		}
		return number{}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return number{}, false
	}
	return number{float: true, f: f}, true
}

// Decode reads exactly one JSON document from data. Numbers are kept as
// json.Number so integers and floats stay distinguishable.
func Decode(data []byte) (interface{}, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader is like Decode, reading from r
func DecodeReader(r io.Reader) (interface{}, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decoding JSON: unexpected data after the document")
	}
	return v, nil
}
