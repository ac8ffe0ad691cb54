// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/absmach/opcua-enum/browse"
	"github.com/spf13/cobra"
)

var (
	mode   string
	depth  int
	nodeID string
)

// NewBrowseCmd returns the root command performing the enumeration.
func NewBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "opcua-enum <ip> <port>",
		Short: "OPC-UA address space enumeration tool",
		Long: "Connects to an OPC-UA server and recursively enumerates its exposed\n" +
			"address space, printing a tree of objects, variables and methods with\n" +
			"node IDs, data types, access rights and current values.",
		Example: "opcua-enum 192.168.1.10 4840\n" +
			"opcua-enum 192.168.1.10 4840 --mode enum-objects --depth 2\n" +
			"opcua-enum 192.168.1.10 4840 --mode show-object --nodeid \"ns=2;s=Controller\"",
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			m, err := browse.ParseMode(mode)
			if err != nil {
				logUsageCmd(*cmd, "--mode must be one of: all, enum-objects, show-object")
				ExitCode = 1
				return
			}
			if m == browse.ShowObject && nodeID == "" {
				logUsageCmd(*cmd, "--nodeid is required for show-object mode")
				ExitCode = 1
				return
			}

			serverURI := fmt.Sprintf("opc.tcp://%s:%s", args[0], args[1])
			logger.Info(fmt.Sprintf("Connecting to OPC-UA server at %s", serverURI))

			req := browse.Request{
				Mode:   m,
				Depth:  depth,
				Target: nodeID,
			}
			if err := svc.Browse(cmd.Context(), serverURI, req); err != nil {
				logErrorCmd(*cmd, err)
			}
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "all", "Enumeration mode: all, enum-objects or show-object")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Depth limit for enum-objects mode")
	cmd.Flags().StringVarP(&nodeID, "nodeid", "n", "", "NodeId or object name for show-object mode")

	return cmd
}
