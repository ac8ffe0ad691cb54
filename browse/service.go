// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package browse

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/absmach/opcua-enum/errors"
)

// Mode selects the traversal entry point.
type Mode uint8

const (
	// FullTree walks the whole tree from the Objects folder.
	FullTree Mode = iota
	// EnumerateObjects walks each direct child of the Objects folder
	// independently, with a depth limit.
	EnumerateObjects
	// ShowObject walks a single object resolved by node ID or name.
	ShowObject
)

// ParseMode maps a CLI mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "all":
		return FullTree, nil
	case "enum-objects":
		return EnumerateObjects, nil
	case "show-object":
		return ShowObject, nil
	default:
		return FullTree, errors.Wrap(errors.ErrInvalidMode, errors.New(s))
	}
}

func (m Mode) String() string {
	switch m {
	case FullTree:
		return "all"
	case EnumerateObjects:
		return "enum-objects"
	case ShowObject:
		return "show-object"
	default:
		return "unknown"
	}
}

// Request describes a single browse invocation.
type Request struct {
	Mode Mode
	// Depth limits traversal depth in EnumerateObjects mode.
	Depth int
	// Target is a serialized node identifier or a browse name, ShowObject
	// mode only.
	Target string
}

// Service specifies an API that must be fullfiled by the browse service
// implementation, and all of its decorators (e.g. logging).
type Service interface {
	// Browse connects to the given server endpoint and enumerates its
	// address space according to the request.
	Browse(ctx context.Context, serverURI string, req Request) error
}

var _ Service = (*browseService)(nil)

type browseService struct {
	dialer Dialer
	out    io.Writer
	logger *slog.Logger
}

// New instantiates the browse service.
func New(dialer Dialer, out io.Writer, logger *slog.Logger) Service {
	return &browseService{
		dialer: dialer,
		out:    out,
		logger: logger,
	}
}

func (bs *browseService) Browse(ctx context.Context, serverURI string, req Request) error {
	if req.Mode == ShowObject && req.Target == "" {
		return errors.ErrMissingNodeID
	}

	sess, err := bs.dialer.Dial(ctx, serverURI)
	if err != nil {
		return errors.Wrap(errors.ErrConnection, err)
	}
	defer func() {
		if err := sess.Close(); err != nil {
			bs.logger.Warn("Failed to close session", slog.Any("error", err))
		}
	}()
	bs.logger.Info("Connected successfully", slog.String("server_uri", serverURI))

	w := newWalker(sess, bs.out, bs.logger)

	switch req.Mode {
	case FullTree:
		objects, err := sess.ObjectsNode()
		if err != nil {
			return errors.Wrap(errors.ErrNodeAccess, err)
		}
		bs.logger.Info("Browsing all from root")
		w.Walk(objects, unboundedDepth)
		return nil
	case EnumerateObjects:
		return bs.enumerateObjects(w, sess, req.Depth)
	case ShowObject:
		return bs.showObject(w, sess, req.Target)
	default:
		return errors.ErrInvalidMode
	}
}

// enumerateObjects walks each direct child of the Objects folder with the
// given depth limit, restarting depth at 0 for every child. A failure on one
// child is logged and the enumeration continues with the next.
func (bs *browseService) enumerateObjects(w *walker, sess Session, depth int) error {
	objects, err := sess.ObjectsNode()
	if err != nil {
		return errors.Wrap(errors.ErrNodeAccess, err)
	}
	children, err := objects.Children()
	if err != nil {
		return errors.Wrap(errors.ErrNodeAccess, err)
	}

	bs.logger.Info(fmt.Sprintf("Enumerating Objects (depth %d)", depth))
	for _, child := range children {
		w.Walk(child, depth)
	}

	return nil
}

// showObject resolves the target to a node and walks it without a depth
// limit. A literal identifier lookup is attempted first, probing its
// validity by requesting the browse name; name search over the Objects
// children is the fallback.
func (bs *browseService) showObject(w *walker, sess Session, target string) error {
	node := bs.resolveTarget(sess, target)
	if node == nil {
		return errors.Wrap(errors.ErrNotFound, errors.New(target))
	}

	name, err := node.Name()
	if err != nil {
		return errors.Wrap(errors.ErrNodeAccess, err)
	}
	bs.logger.Info(fmt.Sprintf("Browsing object: %s | NodeId: %s", name, node.ID()))
	w.Walk(node, unboundedDepth)

	return nil
}

func (bs *browseService) resolveTarget(sess Session, target string) Node {
	if node, err := sess.Node(target); err == nil {
		if _, err := node.Name(); err == nil {
			return node
		}
	}

	objects, err := sess.ObjectsNode()
	if err != nil {
		return nil
	}
	children, err := objects.Children()
	if err != nil {
		return nil
	}
	for _, child := range children {
		name, err := child.Name()
		if err != nil {
			continue
		}
		if name == target {
			return child
		}
	}

	return nil
}
