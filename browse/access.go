// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package browse

// Access level bits defined by OPC-UA Part 3.
const (
	CurrentRead  uint8 = 0x01
	CurrentWrite uint8 = 0x02
)

// AccessFlag is a named access-level flag, the set-based counterpart of the
// bitmask representation.
type AccessFlag uint8

const (
	FlagCurrentRead AccessFlag = iota + 1
	FlagCurrentWrite
	FlagHistoryRead
	FlagHistoryWrite
	FlagSemanticChange
)

type accessKind uint8

const (
	accessInvalid accessKind = iota
	accessBitmask
	accessFlagSet
)

// AccessLevel carries one of the two representations client libraries use
// for a variable's access level: a bitmask or a set of named flags. The zero
// value carries neither and classifies as Unknown.
type AccessLevel struct {
	kind  accessKind
	bits  uint8
	flags []AccessFlag
}

// BitmaskAccess returns an AccessLevel backed by a bitmask.
func BitmaskAccess(bits uint8) AccessLevel {
	return AccessLevel{kind: accessBitmask, bits: bits}
}

// FlagSetAccess returns an AccessLevel backed by a set of named flags.
func FlagSetAccess(flags ...AccessFlag) AccessLevel {
	return AccessLevel{kind: accessFlagSet, flags: flags}
}

// Access is the normalized access label of a variable node.
type Access uint8

const (
	AccessUnknown Access = iota
	AccessReadOnly
	AccessWritable
)

func (a Access) String() string {
	switch a {
	case AccessReadOnly:
		return "Read-only"
	case AccessWritable:
		return "Writable"
	default:
		return "Unknown"
	}
}

// Classify normalizes either access-level representation to a tri-state
// label. A variable is Writable iff the current-write flag is present. Input
// carrying no interpretable representation classifies as Unknown.
func Classify(level AccessLevel) Access {
	switch level.kind {
	case accessBitmask:
		if level.bits&CurrentWrite == CurrentWrite {
			return AccessWritable
		}
		return AccessReadOnly
	case accessFlagSet:
		for _, f := range level.flags {
			if f == FlagCurrentWrite {
				return AccessWritable
			}
		}
		return AccessReadOnly
	default:
		return AccessUnknown
	}
}
