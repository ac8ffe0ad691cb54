// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package gopcua

import (
	"time"

	"github.com/absmach/opcua-enum/browse"
	"github.com/absmach/opcua-enum/errors"
	opcuagopcua "github.com/gopcua/opcua"
	"github.com/gopcua/opcua/id"
	uagopcua "github.com/gopcua/opcua/ua"
)

var _ browse.Node = (*node)(nil)

type node struct {
	sess *session
	n    *opcuagopcua.Node
}

func (nd *node) ID() string {
	return nd.n.ID.String()
}

func (nd *node) Class() (browse.NodeClass, error) {
	dv, err := nd.attr(uagopcua.AttributeIDNodeClass)
	if err != nil {
		return browse.ClassUnspecified, err
	}

	return browse.NodeClass(dv.Value.Int()), nil
}

func (nd *node) Name() (string, error) {
	dv, err := nd.attr(uagopcua.AttributeIDBrowseName)
	if err != nil {
		return "", err
	}

	return dv.Value.String(), nil
}

func (nd *node) DisplayName() (string, error) {
	dv, err := nd.attr(uagopcua.AttributeIDDisplayName)
	if err != nil {
		return "", err
	}

	return dv.Value.String(), nil
}

func (nd *node) AccessLevel() (browse.AccessLevel, error) {
	dv, err := nd.attr(uagopcua.AttributeIDAccessLevel)
	if err != nil {
		return browse.AccessLevel{}, err
	}

	return browse.BitmaskAccess(uint8(dv.Value.Int())), nil
}

func (nd *node) DataType() (string, error) {
	dv, err := nd.attr(uagopcua.AttributeIDDataType)
	if err != nil {
		return "", err
	}

	return dv.Value.NodeID().String(), nil
}

func (nd *node) Value() (browse.Value, error) {
	req := &uagopcua.ReadRequest{
		MaxAge: 2000,
		NodesToRead: []*uagopcua.ReadValueID{
			{NodeID: nd.n.ID},
		},
		TimestampsToReturn: uagopcua.TimestampsToReturnBoth,
	}

	resp, err := nd.sess.c.Read(req)
	if err != nil {
		return browse.Value{}, errors.Wrap(errFailedRead, err)
	}
	if resp.Results[0].Status != uagopcua.StatusOK {
		return browse.Value{}, errResponseStatus
	}

	return convertValue(resp.Results[0].Value.Value()), nil
}

func (nd *node) Children() ([]browse.Node, error) {
	var children []browse.Node
	for _, refType := range []uint32{id.HasComponent, id.Organizes, id.HasProperty} {
		refs, err := nd.n.ReferencedNodes(refType, uagopcua.BrowseDirectionForward, uagopcua.NodeClassAll, true)
		if err != nil {
			return nil, err
		}
		for _, rn := range refs {
			// Method children are reported separately by Methods.
			mc, err := (&node{sess: nd.sess, n: rn}).Class()
			if err == nil && mc == browse.ClassMethod {
				continue
			}
			children = append(children, &node{sess: nd.sess, n: rn})
		}
	}

	return children, nil
}

func (nd *node) Methods() ([]browse.Node, error) {
	refs, err := nd.n.ReferencedNodes(id.HasComponent, uagopcua.BrowseDirectionForward, uagopcua.NodeClassMethod, true)
	if err != nil {
		return nil, err
	}

	methods := make([]browse.Node, 0, len(refs))
	for _, rn := range refs {
		methods = append(methods, &node{sess: nd.sess, n: rn})
	}

	return methods, nil
}

// attr reads a single attribute and checks its status.
func (nd *node) attr(attrID uagopcua.AttributeID) (*uagopcua.DataValue, error) {
	attrs, err := nd.n.Attributes(attrID)
	if err != nil {
		return nil, err
	}
	if len(attrs) == 0 {
		return nil, errAttributeStatus
	}
	if attrs[0].Status != uagopcua.StatusOK {
		return nil, attrs[0].Status
	}

	return attrs[0], nil
}

// convertValue maps a decoded variant to the closed browse value variant.
// Kinds outside the closed set map to the unsupported placeholder.
func convertValue(v interface{}) browse.Value {
	switch val := v.(type) {
	case bool:
		return browse.BoolValue(val)
	case int8:
		return browse.IntValue(int64(val))
	case int16:
		return browse.IntValue(int64(val))
	case int32:
		return browse.IntValue(int64(val))
	case int64:
		return browse.IntValue(val)
	case uint16:
		return browse.UintValue(uint64(val))
	case uint32:
		return browse.UintValue(uint64(val))
	case uint64:
		return browse.UintValue(val)
	case float32:
		return browse.FloatValue(float64(val))
	case float64:
		return browse.FloatValue(val)
	case string:
		return browse.StringValue(val)
	case []byte:
		return browse.BytesValue(val)
	case time.Time:
		return browse.TimeValue(val)
	case *uagopcua.LocalizedText:
		return browse.StringValue(val.Text)
	case []interface{}:
		elems := make([]browse.Value, 0, len(val))
		for _, e := range val {
			elems = append(elems, convertValue(e))
		}
		return browse.ArrayValue(elems...)
	case []bool:
		return convertSlice(len(val), func(i int) browse.Value { return browse.BoolValue(val[i]) })
	case []int32:
		return convertSlice(len(val), func(i int) browse.Value { return browse.IntValue(int64(val[i])) })
	case []int64:
		return convertSlice(len(val), func(i int) browse.Value { return browse.IntValue(val[i]) })
	case []float64:
		return convertSlice(len(val), func(i int) browse.Value { return browse.FloatValue(val[i]) })
	case []string:
		return convertSlice(len(val), func(i int) browse.Value { return browse.StringValue(val[i]) })
	default:
		return browse.Value{}
	}
}

func convertSlice(n int, elem func(i int) browse.Value) browse.Value {
	elems := make([]browse.Value, 0, n)
	for i := 0; i < n; i++ {
		elems = append(elems, elem(i))
	}

	return browse.ArrayValue(elems...)
}
