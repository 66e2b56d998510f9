package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/metawedding/wedding-api/internal/client/ipfs"
	"github.com/metawedding/wedding-api/internal/config"
)

var metaGateway string

var metaCmd = &cobra.Command{
	Use:   "meta <ipfs-url>",
	Short: "Fetch the JSON metadata behind an ipfs:// meta URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		data, err := ipfs.NewGateway(gatewayURL()).FetchMetadata(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), map[string]any{"meta_url": args[0], "data": data})
	},
}

// gatewayURL picks --gateway, then IPFS_GATEWAY_URL, then the public gateway.
func gatewayURL() string {
	if metaGateway != "" {
		return metaGateway
	}
	if v := os.Getenv(config.EnvIPFSGateway); v != "" {
		return v
	}
	return config.DefaultIPFSGateway
}

func init() {
	metaCmd.Flags().StringVar(&metaGateway, "gateway", "", "IPFS HTTP gateway base URL")
}
