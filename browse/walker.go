// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package browse

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// unboundedDepth disables the depth cutoff.
const unboundedDepth = -1

// walker streams a depth-first rendering of the address space to out. Tree
// lines go to the sink as traversal proceeds; diagnostics go to the logger.
type walker struct {
	sess    Session
	out     io.Writer
	logger  *slog.Logger
	visited map[string]bool
}

func newWalker(sess Session, out io.Writer, logger *slog.Logger) *walker {
	return &walker{
		sess:   sess,
		out:    out,
		logger: logger,
	}
}

type frame struct {
	node  Node
	depth int
	// Method children are listed but never expanded.
	leaf bool
}

// Walk visits node and its descendants depth first, emitting one line per
// node. maxDepth is a hard cutoff on the visited depth; negative means
// unbounded. A node reachable through more than one reference within a
// single walk is visited once, so back-references cannot loop the traversal.
func (w *walker) Walk(node Node, maxDepth int) {
	w.visited = map[string]bool{}

	stack := []frame{{node: node}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if maxDepth >= 0 && f.depth > maxDepth {
			continue
		}
		if w.visited[f.node.ID()] {
			w.logger.Debug("Node already visited", slog.String("node_id", f.node.ID()))
			continue
		}
		w.visited[f.node.ID()] = true

		if !w.visit(f) || f.leaf {
			continue
		}

		methods, err := f.node.Methods()
		if err != nil {
			w.logger.Warn("Could not fetch methods", slog.String("node_id", f.node.ID()), slog.Any("error", err))
		}
		children, err := f.node.Children()
		if err != nil {
			w.logger.Error("Could not fetch children", slog.String("node_id", f.node.ID()), slog.Any("error", err))
		}

		// Pushed in reverse so that popping preserves the server's
		// enumeration order, methods ahead of structural children.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: children[i], depth: f.depth + 1})
		}
		for i := len(methods) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: methods[i], depth: f.depth + 1, leaf: true})
		}
	}
}

// visit emits the line(s) for a single node. It reports false when the node's
// attributes could not be read, in which case the subtree is skipped and
// siblings proceed.
func (w *walker) visit(f frame) bool {
	indent := strings.Repeat("  ", f.depth)

	class, err := f.node.Class()
	if err != nil {
		w.logger.Error("Error browsing node", slog.String("node_id", f.node.ID()), slog.Any("error", err))
		return false
	}
	name, err := f.node.Name()
	if err != nil {
		w.logger.Error("Error browsing node", slog.String("node_id", f.node.ID()), slog.Any("error", err))
		return false
	}
	id := f.node.ID()

	if class != ClassVariable {
		fmt.Fprintf(w.out, "%s- %s (%s) | NodeId: %s\n", indent, name, class, id)
		return true
	}

	level, err := f.node.AccessLevel()
	if err != nil {
		// Zero value classifies as Unknown.
		level = AccessLevel{}
	}
	fmt.Fprintf(w.out, "%s- %s (%s) | NodeId: %s | DataType: %s | Access: %s\n",
		indent, name, class, id, w.typeName(f.node), Classify(level))

	value, err := f.node.Value()
	if err != nil {
		w.logger.Warn("Could not read value", slog.String("node_id", id), slog.Any("error", err))
		return true
	}
	fmt.Fprintf(w.out, "%s  Value: %s\n", indent, value)

	return true
}

// typeName resolves the display name of a variable's data type. Failures are
// embedded in the returned string so that traversal continues.
func (w *walker) typeName(node Node) string {
	dataTypeID, err := node.DataType()
	if err != nil {
		return fmt.Sprintf("unknown type (%s)", err)
	}
	typeNode, err := w.sess.Node(dataTypeID)
	if err != nil {
		return fmt.Sprintf("unknown type (%s)", err)
	}
	name, err := typeNode.DisplayName()
	if err != nil {
		return fmt.Sprintf("unknown type (%s)", err)
	}

	return name
}
