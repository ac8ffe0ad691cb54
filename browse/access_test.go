// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package browse_test

import (
	"fmt"
	"testing"

	"github.com/absmach/opcua-enum/browse"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		desc   string
		level  browse.AccessLevel
		access browse.Access
	}{
		{
			desc:   "bitmask with write bit",
			level:  browse.BitmaskAccess(browse.CurrentRead | browse.CurrentWrite),
			access: browse.AccessWritable,
		},
		{
			desc:   "bitmask write bit only",
			level:  browse.BitmaskAccess(browse.CurrentWrite),
			access: browse.AccessWritable,
		},
		{
			desc:   "bitmask without write bit",
			level:  browse.BitmaskAccess(browse.CurrentRead),
			access: browse.AccessReadOnly,
		},
		{
			desc:   "empty bitmask",
			level:  browse.BitmaskAccess(0),
			access: browse.AccessReadOnly,
		},
		{
			desc:   "flag set with write flag",
			level:  browse.FlagSetAccess(browse.FlagCurrentRead, browse.FlagCurrentWrite),
			access: browse.AccessWritable,
		},
		{
			desc:   "flag set without write flag",
			level:  browse.FlagSetAccess(browse.FlagCurrentRead, browse.FlagHistoryRead),
			access: browse.AccessReadOnly,
		},
		{
			desc:   "empty flag set",
			level:  browse.FlagSetAccess(),
			access: browse.AccessReadOnly,
		},
		{
			desc:   "zero value classifies as unknown",
			level:  browse.AccessLevel{},
			access: browse.AccessUnknown,
		},
	}

	for _, tc := range cases {
		access := browse.Classify(tc.level)
		assert.Equal(t, tc.access, access, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.access, access))
	}
}

func TestClassifyEquivalentRepresentations(t *testing.T) {
	cases := []struct {
		desc    string
		bitmask browse.AccessLevel
		flagSet browse.AccessLevel
	}{
		{
			desc:    "read and write",
			bitmask: browse.BitmaskAccess(browse.CurrentRead | browse.CurrentWrite),
			flagSet: browse.FlagSetAccess(browse.FlagCurrentRead, browse.FlagCurrentWrite),
		},
		{
			desc:    "read only",
			bitmask: browse.BitmaskAccess(browse.CurrentRead),
			flagSet: browse.FlagSetAccess(browse.FlagCurrentRead),
		},
		{
			desc:    "write only",
			bitmask: browse.BitmaskAccess(browse.CurrentWrite),
			flagSet: browse.FlagSetAccess(browse.FlagCurrentWrite),
		},
	}

	for _, tc := range cases {
		bm := browse.Classify(tc.bitmask)
		fs := browse.Classify(tc.flagSet)
		assert.Equal(t, bm, fs, fmt.Sprintf("%s: expected both representations to classify as %s", tc.desc, bm))
	}
}

func TestAccessString(t *testing.T) {
	assert.Equal(t, "Writable", browse.AccessWritable.String())
	assert.Equal(t, "Read-only", browse.AccessReadOnly.String())
	assert.Equal(t, "Unknown", browse.AccessUnknown.String())
}
