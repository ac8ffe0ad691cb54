// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package browse enumerates the address space of an OPC-UA server and
// renders it as a human-readable tree.
package browse

import "context"

// NodeClass represents the category of an address-space node. The values
// mirror the OPC-UA node class masks.
type NodeClass uint32

const (
	ClassUnspecified   NodeClass = 0
	ClassObject        NodeClass = 1
	ClassVariable      NodeClass = 2
	ClassMethod        NodeClass = 4
	ClassObjectType    NodeClass = 8
	ClassVariableType  NodeClass = 16
	ClassReferenceType NodeClass = 32
	ClassDataType      NodeClass = 64
	ClassView          NodeClass = 128
)

func (nc NodeClass) String() string {
	switch nc {
	case ClassObject:
		return "Object"
	case ClassVariable:
		return "Variable"
	case ClassMethod:
		return "Method"
	case ClassObjectType:
		return "ObjectType"
	case ClassVariableType:
		return "VariableType"
	case ClassReferenceType:
		return "ReferenceType"
	case ClassDataType:
		return "DataType"
	case ClassView:
		return "View"
	default:
		return "Unknown"
	}
}

// Node is a read-only handle into the server address space. Nodes are owned
// by the session that produced them and stay valid until it is closed.
type Node interface {
	// ID returns the string form of the node identifier.
	ID() string

	// Class returns the node class.
	Class() (NodeClass, error)

	// Name returns the browse name of the node.
	Name() (string, error)

	// DisplayName returns the display name of the node.
	DisplayName() (string, error)

	// AccessLevel returns the access level of a variable node.
	AccessLevel() (AccessLevel, error)

	// DataType returns the identifier of the node describing a variable's
	// value type.
	DataType() (string, error)

	// Value reads the current value of a variable node.
	Value() (Value, error)

	// Children returns the structural children of the node, in server order.
	Children() ([]Node, error)

	// Methods returns the method children of the node, in server order.
	Methods() ([]Node, error)
}

// Session represents an established connection to an OPC-UA server.
type Session interface {
	// ObjectsNode returns the standard Objects folder node.
	ObjectsNode() (Node, error)

	// Node resolves a serialized node identifier. It fails for identifiers
	// unknown to the server.
	Node(id string) (Node, error)

	// Close releases the session.
	Close() error
}

// Dialer establishes sessions with an OPC-UA server endpoint.
type Dialer interface {
	Dial(ctx context.Context, endpoint string) (Session, error)
}
