// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package browse

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// ValueKind discriminates the closed set of value variants a variable read
// can deliver.
type ValueKind uint8

const (
	KindUnknown ValueKind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindBytes
	KindTime
	KindArray
)

// Value is a dynamically typed variable value. Exactly one field, selected
// by Kind, is meaningful.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int   int64
	Uint  uint64
	Float float64
	Str   string
	Bytes []byte
	Time  time.Time
	Elems []Value
}

func BoolValue(v bool) Value { return Value{Kind: KindBool, Bool: v} }

func IntValue(v int64) Value { return Value{Kind: KindInt, Int: v} }

func UintValue(v uint64) Value { return Value{Kind: KindUint, Uint: v} }

func FloatValue(v float64) Value { return Value{Kind: KindFloat, Float: v} }

func StringValue(v string) Value { return Value{Kind: KindString, Str: v} }

func BytesValue(v []byte) Value { return Value{Kind: KindBytes, Bytes: v} }

func TimeValue(v time.Time) Value { return Value{Kind: KindTime, Time: v} }

func ArrayValue(elems ...Value) Value { return Value{Kind: KindArray, Elems: elems} }

// String renders the value for display. Unrecognized kinds render an
// explicit placeholder instead of failing.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindUint:
		return strconv.FormatUint(v.Uint, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return v.Str
	case KindBytes:
		return "0x" + hex.EncodeToString(v.Bytes)
	case KindTime:
		return v.Time.Format(time.RFC3339)
	case KindArray:
		parts := make([]string, 0, len(v.Elems))
		for _, e := range v.Elems {
			parts = append(parts, e.String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<unsupported value>"
	}
}
