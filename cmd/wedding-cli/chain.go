package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/metawedding/wedding-api/internal/services"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Print the ether balance of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(rt *runtime) error {
			balance, err := call(cmd.Context(), rt.main, func(done func(float64, error)) {
				rt.client.GetBalance(args[0], done)
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"address": args[0], "balance": balance})
		})
	},
}

var blockHashCmd = &cobra.Command{
	Use:   "block-hash <number>",
	Short: "Print the hash of a block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			return fmt.Errorf("%w: %q", services.ErrInvalidBlockNumber, args[0])
		}
		return withRuntime(cmd, func(rt *runtime) error {
			hash, err := call(cmd.Context(), rt.main, func(done func(string, error)) {
				rt.client.GetBlockHash(number, done)
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"block_number": number.String(), "hash": hash})
		})
	},
}

var gasPriceCmd = &cobra.Command{
	Use:   "gas-price",
	Short: "Print the suggested gas price in wei",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(rt *runtime) error {
			price, err := call(cmd.Context(), rt.main, rt.client.GetGasPrice)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"gas_price": price.String()})
		})
	},
}

var verifyChainCmd = &cobra.Command{
	Use:   "verify-chain",
	Short: "Check that the RPC node serves the configured chain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(rt *runtime) error {
			_, err := call(cmd.Context(), rt.main, func(done func(struct{}, error)) {
				rt.client.VerifyChain(func(err error) { done(struct{}{}, err) })
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: chain id %d (%s)\n", rt.stack.Config.Deployment.ChainID, rt.stack.Config.Deployment.Name)
			return nil
		})
	},
}

// withRuntime builds the runtime under the command's deadline, runs fn and
// tears the runtime down.
func withRuntime(cmd *cobra.Command, fn func(rt *runtime) error) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()
	cmd.SetContext(ctx)

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	return fn(rt)
}
