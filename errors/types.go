// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

var (
	// ErrConnection indicates failure to establish a session with the OPC-UA server.
	ErrConnection = New("failed to connect to OPC-UA server")

	// ErrNodeAccess indicates failure to read a node's class, name or identifier.
	ErrNodeAccess = New("failed to access node attributes")

	// ErrValueRead indicates failure to read a variable's current value.
	ErrValueRead = New("failed to read node value")

	// ErrTypeResolution indicates failure to resolve a variable's data-type name.
	ErrTypeResolution = New("failed to resolve data type")

	// ErrNotFound indicates that the requested node does not exist on the server.
	ErrNotFound = New("node not found")

	// ErrMissingNodeID indicates that show-object mode was selected without a target.
	ErrMissingNodeID = New("nodeid is required for show-object mode")

	// ErrInvalidMode indicates an unsupported browse mode.
	ErrInvalidMode = New("invalid browse mode")
)
