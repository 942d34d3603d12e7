package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Parley MCP server",
	Long:  `Launch an MCP server that allows AI agents to score interview answers and sample questions via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean when running in MCP mode since stdio
		// carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		var embedder contract.Embedder
		if cfg.EmbedURL != "" {
			e, err := newEmbedder()
			if err != nil {
				return err
			}
			embedder = e
		}
		return mcp.StartMCPServer(rootCtx, cfg, embedder)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
