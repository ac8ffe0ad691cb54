// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package gopcua implements the browse session contract on top of the
// gopcua client library.
package gopcua

import (
	"context"
	"log/slog"

	"github.com/absmach/opcua-enum/browse"
	"github.com/absmach/opcua-enum/errors"
	opcuagopcua "github.com/gopcua/opcua"
	"github.com/gopcua/opcua/id"
	uagopcua "github.com/gopcua/opcua/ua"
)

var (
	errFailedConn          = errors.New("failed to connect")
	errFailedParseNodeID   = errors.New("failed to parse NodeID")
	errFailedRead          = errors.New("failed to read")
	errResponseStatus      = errors.New("response status not OK")
	errAttributeStatus     = errors.New("attribute status not OK")
	errFailedFindEndpoint  = errors.New("failed to find suitable endpoint")
	errFailedFetchEndpoint = errors.New("failed to fetch OPC-UA server endpoints")
)

// Config holds optional transport security settings for the OPC-UA session.
// By default the session is established with security mode None.
type Config struct {
	Policy   string `env:"OPCUA_ENUM_POLICY"    envDefault:""`
	Mode     string `env:"OPCUA_ENUM_MODE"      envDefault:""`
	CertFile string `env:"OPCUA_ENUM_CERT_FILE" envDefault:""`
	KeyFile  string `env:"OPCUA_ENUM_KEY_FILE"  envDefault:""`
}

var _ browse.Dialer = (*dialer)(nil)

type dialer struct {
	cfg    Config
	logger *slog.Logger
}

// NewDialer returns a Dialer backed by the gopcua client library.
func NewDialer(cfg Config, log *slog.Logger) browse.Dialer {
	return dialer{
		cfg:    cfg,
		logger: log,
	}
}

func (d dialer) Dial(ctx context.Context, endpoint string) (browse.Session, error) {
	opts := []opcuagopcua.Option{
		opcuagopcua.SecurityMode(uagopcua.MessageSecurityModeNone),
	}

	if d.cfg.Mode != "" {
		endpoints, err := opcuagopcua.GetEndpoints(endpoint)
		if err != nil {
			return nil, errors.Wrap(errFailedFetchEndpoint, err)
		}

		ep := opcuagopcua.SelectEndpoint(endpoints, d.cfg.Policy, uagopcua.MessageSecurityModeFromString(d.cfg.Mode))
		if ep == nil {
			return nil, errFailedFindEndpoint
		}

		opts = []opcuagopcua.Option{
			opcuagopcua.SecurityPolicy(d.cfg.Policy),
			opcuagopcua.SecurityModeString(d.cfg.Mode),
			opcuagopcua.CertificateFile(d.cfg.CertFile),
			opcuagopcua.PrivateKeyFile(d.cfg.KeyFile),
			opcuagopcua.AuthAnonymous(),
			opcuagopcua.SecurityFromEndpoint(ep, uagopcua.UserTokenTypeAnonymous),
		}
	}

	oc := opcuagopcua.NewClient(endpoint, opts...)
	if err := oc.Connect(ctx); err != nil {
		return nil, errors.Wrap(errFailedConn, err)
	}

	return &session{c: oc}, nil
}

var _ browse.Session = (*session)(nil)

type session struct {
	c *opcuagopcua.Client
}

func (s *session) ObjectsNode() (browse.Node, error) {
	n := s.c.Node(uagopcua.NewNumericNodeID(0, id.ObjectsFolder))
	return &node{sess: s, n: n}, nil
}

func (s *session) Node(nodeID string) (browse.Node, error) {
	nid, err := uagopcua.ParseNodeID(nodeID)
	if err != nil {
		return nil, errors.Wrap(errFailedParseNodeID, err)
	}

	return &node{sess: s, n: s.c.Node(nid)}, nil
}

func (s *session) Close() error {
	return s.c.Close()
}
