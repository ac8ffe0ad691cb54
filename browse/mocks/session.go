// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package mocks provides in-memory address-space fakes for testing.
package mocks

import (
	"context"

	"github.com/absmach/opcua-enum/browse"
	"github.com/absmach/opcua-enum/errors"
)

var _ browse.Node = (*Node)(nil)

// Node is a configurable in-memory browse node.
type Node struct {
	NodeID      string
	NodeClass   browse.NodeClass
	BrowseName  string
	Display     string
	Access      browse.AccessLevel
	DataTypeID  string
	Val         browse.Value
	ChildNodes  []*Node
	MethodNodes []*Node

	ClassErr    error
	NameErr     error
	DisplayErr  error
	AccessErr   error
	DataTypeErr error
	ValueErr    error
	ChildrenErr error
	MethodsErr  error
}

func (n *Node) ID() string {
	return n.NodeID
}

func (n *Node) Class() (browse.NodeClass, error) {
	return n.NodeClass, n.ClassErr
}

func (n *Node) Name() (string, error) {
	return n.BrowseName, n.NameErr
}

func (n *Node) DisplayName() (string, error) {
	if n.Display == "" {
		return n.BrowseName, n.DisplayErr
	}
	return n.Display, n.DisplayErr
}

func (n *Node) AccessLevel() (browse.AccessLevel, error) {
	return n.Access, n.AccessErr
}

func (n *Node) DataType() (string, error) {
	return n.DataTypeID, n.DataTypeErr
}

func (n *Node) Value() (browse.Value, error) {
	return n.Val, n.ValueErr
}

func (n *Node) Children() ([]browse.Node, error) {
	if n.ChildrenErr != nil {
		return nil, n.ChildrenErr
	}
	children := make([]browse.Node, 0, len(n.ChildNodes))
	for _, c := range n.ChildNodes {
		children = append(children, c)
	}
	return children, nil
}

func (n *Node) Methods() ([]browse.Node, error) {
	if n.MethodsErr != nil {
		return nil, n.MethodsErr
	}
	methods := make([]browse.Node, 0, len(n.MethodNodes))
	for _, m := range n.MethodNodes {
		methods = append(methods, m)
	}
	return methods, nil
}

var _ browse.Session = (*Session)(nil)

// Session is an in-memory browse session over a fixed node graph.
type Session struct {
	Objects    *Node
	ByID       map[string]*Node
	ObjectsErr error
	Closed     bool
}

func (s *Session) ObjectsNode() (browse.Node, error) {
	if s.ObjectsErr != nil {
		return nil, s.ObjectsErr
	}
	return s.Objects, nil
}

func (s *Session) Node(id string) (browse.Node, error) {
	if n, ok := s.ByID[id]; ok {
		return n, nil
	}
	return nil, errors.ErrNotFound
}

func (s *Session) Close() error {
	s.Closed = true
	return nil
}

var _ browse.Dialer = (*Dialer)(nil)

// Dialer hands out the same session for every dial.
type Dialer struct {
	Session *Session
	Err     error
	Dials   int
}

func (d *Dialer) Dial(ctx context.Context, endpoint string) (browse.Session, error) {
	d.Dials++
	if d.Err != nil {
		return nil, d.Err
	}
	return d.Session, nil
}
