package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/metawedding/wedding-api/internal/logger"
)

// GlobalFlags are shared by every command
type GlobalFlags struct {
	Timeout time.Duration
	Stage   string
	Verbose bool
}

var globalFlags GlobalFlags

var rootCmd = &cobra.Command{
	Use:   "wedding-cli",
	Short: "Command line client for the wedding contracts",
	Long: `wedding-cli reads marriages and propositions, encodes calls for a user's
wallet, and submits agent and faucet transactions against the configured
deployment.

Configuration is read from the environment (and .env) the same way the API
server reads it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if globalFlags.Stage != "" {
			if err := os.Setenv("STAGE", globalFlags.Stage); err != nil {
				return err
			}
		}
		if globalFlags.Verbose {
			if err := os.Setenv("LOG_LEVEL", "debug"); err != nil {
				return err
			}
		}
		logger.InitLogger(os.Getenv("STAGE"))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&globalFlags.Timeout, "timeout", 2*time.Minute, "overall deadline of the command")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Stage, "stage", "", "override STAGE (local, dev, prod)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(blockHashCmd)
	rootCmd.AddCommand(gasPriceCmd)
	rootCmd.AddCommand(verifyChainCmd)
	rootCmd.AddCommand(marriageCmd)
	rootCmd.AddCommand(propositionsCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(faucetCmd)
	rootCmd.AddCommand(metaCmd)
}

// commandContext returns the command's context bounded by --timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if globalFlags.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, globalFlags.Timeout)
}
