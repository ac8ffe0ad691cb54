// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package browse_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/absmach/opcua-enum/browse"
	"github.com/absmach/opcua-enum/browse/mocks"
	"github.com/absmach/opcua-enum/errors"
	"github.com/absmach/opcua-enum/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSession builds the reference address space:
//
//	Objects
//	├── Temperature (Variable, Read-only, Double, 21.5)
//	└── Controller (Object)
//	    ├── Start (Method)
//	    └── Status (Variable, Writable, Boolean, true)
func newTestSession() *mocks.Session {
	temperature := &mocks.Node{
		NodeID:     "ns=2;s=Temperature",
		NodeClass:  browse.ClassVariable,
		BrowseName: "Temperature",
		Access:     browse.BitmaskAccess(browse.CurrentRead),
		DataTypeID: "i=11",
		Val:        browse.FloatValue(21.5),
	}
	start := &mocks.Node{
		NodeID:     "ns=2;s=Start",
		NodeClass:  browse.ClassMethod,
		BrowseName: "Start",
	}
	status := &mocks.Node{
		NodeID:     "ns=2;s=Status",
		NodeClass:  browse.ClassVariable,
		BrowseName: "Status",
		Access:     browse.FlagSetAccess(browse.FlagCurrentRead, browse.FlagCurrentWrite),
		DataTypeID: "i=1",
		Val:        browse.BoolValue(true),
	}
	controller := &mocks.Node{
		NodeID:      "ns=2;s=Controller",
		NodeClass:   browse.ClassObject,
		BrowseName:  "Controller",
		MethodNodes: []*mocks.Node{start},
		ChildNodes:  []*mocks.Node{status},
	}
	objects := &mocks.Node{
		NodeID:     "i=85",
		NodeClass:  browse.ClassObject,
		BrowseName: "Objects",
		ChildNodes: []*mocks.Node{temperature, controller},
	}

	return &mocks.Session{
		Objects: objects,
		ByID: map[string]*mocks.Node{
			"i=85":               objects,
			"ns=2;s=Temperature": temperature,
			"ns=2;s=Controller":  controller,
			"ns=2;s=Start":       start,
			"ns=2;s=Status":      status,
			"i=11":               {NodeID: "i=11", NodeClass: browse.ClassDataType, BrowseName: "Double"},
			"i=1":                {NodeID: "i=1", NodeClass: browse.ClassDataType, BrowseName: "Boolean"},
		},
	}
}

func runBrowse(t *testing.T, sess *mocks.Session, req browse.Request) (string, string, error) {
	t.Helper()

	var out, logs bytes.Buffer
	log, err := logger.New(&logs, "debug")
	require.Nil(t, err, fmt.Sprintf("unexpected error creating logger: %s", err))

	svc := browse.New(&mocks.Dialer{Session: sess}, &out, log)
	browseErr := svc.Browse(context.Background(), "opc.tcp://localhost:4840", req)

	return out.String(), logs.String(), browseErr
}

func TestBrowseFullTree(t *testing.T) {
	sess := newTestSession()
	out, _, err := runBrowse(t, sess, browse.Request{Mode: browse.FullTree})
	assert.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))

	expected := strings.Join([]string{
		"- Objects (Object) | NodeId: i=85",
		"  - Temperature (Variable) | NodeId: ns=2;s=Temperature | DataType: Double | Access: Read-only",
		"    Value: 21.5",
		"  - Controller (Object) | NodeId: ns=2;s=Controller",
		"    - Start (Method) | NodeId: ns=2;s=Start",
		"    - Status (Variable) | NodeId: ns=2;s=Status | DataType: Boolean | Access: Writable",
		"      Value: true",
	}, "\n") + "\n"
	assert.Equal(t, expected, out, fmt.Sprintf("expected output\n%s\ngot\n%s", expected, out))
	assert.True(t, sess.Closed, "expected session to be closed after browsing")
}

func TestBrowseShowObjectByName(t *testing.T) {
	sess := newTestSession()
	out, _, err := runBrowse(t, sess, browse.Request{Mode: browse.ShowObject, Target: "Controller"})
	assert.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))

	assert.Contains(t, out, "- Controller (Object)", "expected Controller subtree in output")
	assert.Contains(t, out, "- Start (Method)", "expected Start method in output")
	assert.Contains(t, out, "- Status (Variable)", "expected Status variable in output")
	assert.NotContains(t, out, "Temperature", "expected only the Controller subtree in output")
}

func TestBrowseShowObjectByNodeID(t *testing.T) {
	sess := newTestSession()
	out, _, err := runBrowse(t, sess, browse.Request{Mode: browse.ShowObject, Target: "ns=2;s=Controller"})
	assert.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))

	assert.Contains(t, out, "- Controller (Object)", "expected Controller subtree in output")
	assert.NotContains(t, out, "Temperature", "expected only the Controller subtree in output")
}

func TestBrowseShowObjectResolutionOrder(t *testing.T) {
	byIdentifier := &mocks.Node{
		NodeID:     "X",
		NodeClass:  browse.ClassObject,
		BrowseName: "ByIdentifier",
	}
	sameName := &mocks.Node{
		NodeID:     "ns=2;s=ChildX",
		NodeClass:  browse.ClassObject,
		BrowseName: "X",
	}
	objects := &mocks.Node{
		NodeID:     "i=85",
		NodeClass:  browse.ClassObject,
		BrowseName: "Objects",
		ChildNodes: []*mocks.Node{sameName},
	}
	sess := &mocks.Session{
		Objects: objects,
		ByID: map[string]*mocks.Node{
			"i=85": objects,
			"X":    byIdentifier,
		},
	}

	out, _, err := runBrowse(t, sess, browse.Request{Mode: browse.ShowObject, Target: "X"})
	assert.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Contains(t, out, "ByIdentifier", "expected identifier lookup to win over name search")
	assert.NotContains(t, out, "ns=2;s=ChildX", "expected name match to be ignored when the identifier resolves")
}

func TestBrowseShowObjectNotFound(t *testing.T) {
	sess := newTestSession()
	out, _, err := runBrowse(t, sess, browse.Request{Mode: browse.ShowObject, Target: "DoesNotExist"})

	assert.True(t, errors.Contains(err, errors.ErrNotFound), fmt.Sprintf("expected %s got %s", errors.ErrNotFound, err))
	assert.Empty(t, out, "expected no traversal output for an unknown target")
	assert.True(t, sess.Closed, "expected session to be closed after a failed lookup")
}

func TestBrowseShowObjectMissingTarget(t *testing.T) {
	sess := newTestSession()
	dialer := &mocks.Dialer{Session: sess}

	var out bytes.Buffer
	log, err := logger.New(&out, "info")
	require.Nil(t, err, fmt.Sprintf("unexpected error creating logger: %s", err))

	svc := browse.New(dialer, &out, log)
	err = svc.Browse(context.Background(), "opc.tcp://localhost:4840", browse.Request{Mode: browse.ShowObject})

	assert.True(t, errors.Contains(err, errors.ErrMissingNodeID), fmt.Sprintf("expected %s got %s", errors.ErrMissingNodeID, err))
	assert.Equal(t, 0, dialer.Dials, "expected no connection attempt without a target")
}

func TestBrowseConnectionFailure(t *testing.T) {
	var out bytes.Buffer
	log, err := logger.New(&out, "info")
	require.Nil(t, err, fmt.Sprintf("unexpected error creating logger: %s", err))

	svc := browse.New(&mocks.Dialer{Err: errors.New("connection refused")}, &out, log)
	err = svc.Browse(context.Background(), "opc.tcp://localhost:4840", browse.Request{Mode: browse.FullTree})

	assert.True(t, errors.Contains(err, errors.ErrConnection), fmt.Sprintf("expected %s got %s", errors.ErrConnection, err))
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		desc string
		text string
		mode browse.Mode
		err  error
	}{
		{
			desc: "parse all",
			text: "all",
			mode: browse.FullTree,
		},
		{
			desc: "parse enum-objects",
			text: "enum-objects",
			mode: browse.EnumerateObjects,
		},
		{
			desc: "parse show-object",
			text: "show-object",
			mode: browse.ShowObject,
		},
		{
			desc: "parse unknown mode",
			text: "everything",
			err:  errors.ErrInvalidMode,
		},
	}

	for _, tc := range cases {
		mode, err := browse.ParseMode(tc.text)
		if tc.err != nil {
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.err, err))
			continue
		}
		assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
		assert.Equal(t, tc.mode, mode, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.mode, mode))
	}
}
