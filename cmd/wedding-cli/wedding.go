package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"

	"github.com/metawedding/wedding-api/internal/constants"
	"github.com/metawedding/wedding-api/internal/contract"
	"github.com/metawedding/wedding-api/internal/interfaces"
	"github.com/metawedding/wedding-api/internal/services"
	"github.com/metawedding/wedding-api/internal/types/business"
)

var waitForReceipt bool

var marriageCmd = &cobra.Command{
	Use:   "marriage <address>",
	Short: "Print the current marriage of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(rt *runtime) error {
			m, err := call(cmd.Context(), rt.main, func(done func(business.Marriage, error)) {
				rt.client.GetCurrentMarriage(args[0], done)
			})
			if err != nil {
				return err
			}
			if m.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), "no marriage")
				return nil
			}
			return printJSON(cmd.OutOrStdout(), m)
		})
	},
}

var propositionsCmd = &cobra.Command{
	Use:       "propositions <incoming|outgoing> <address>",
	Short:     "List the propositions of an address",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"incoming", "outgoing"},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction, address := args[0], args[1]
		return withRuntime(cmd, func(rt *runtime) error {
			var start func(string, func([]business.Proposal, error))
			switch direction {
			case "incoming":
				start = rt.client.GetIncomingPropositions
			case "outgoing":
				start = rt.client.GetOutgoingPropositions
			default:
				return fmt.Errorf("unknown direction %q, want incoming or outgoing", direction)
			}

			proposals, err := call(cmd.Context(), rt.main, func(done func([]business.Proposal, error)) {
				start(address, done)
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), proposals)
		})
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode <method> [to meta-url cond-data]",
	Short: "Print the call data of a wedding method for the user's wallet",
	Long: `Encodes one of propose, updateProposition, acceptProposition (which take
to, meta-url and cond-data) or requestDivorce, confirmDivorce (which take none).`,
	Args: cobra.RangeArgs(1, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(rt *runtime) error {
			data, err := encodeCallData(rt.stack.Wedding, args[0], args[1:])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"method":   args[0],
				"chain_id": rt.stack.Config.Deployment.ChainID,
				"to":       rt.stack.Config.Deployment.WeddingContract,
				"data":     data,
			})
		})
	},
}

var agentCmd = &cobra.Command{
	Use:   "agent <method> [to meta-url cond-data]",
	Short: "Submit a wedding method signed by the agent account",
	Args:  cobra.RangeArgs(1, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(rt *runtime) error {
			start, err := agentCall(rt.client, args[0], args[1:])
			if err != nil {
				return err
			}
			return submitAndReport(cmd, rt, args[0], start)
		})
	},
}

var faucetCmd = &cobra.Command{
	Use:   "faucet <to>",
	Short: "Fund an address from the faucet contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(rt *runtime) error {
			return submitAndReport(cmd, rt, constants.MethodFaucet, func(done func(common.Hash, error)) {
				rt.client.CallFaucet(args[0], done)
			})
		})
	},
}

func init() {
	agentCmd.Flags().BoolVar(&waitForReceipt, "wait", false, "wait for the transaction receipt")
	faucetCmd.Flags().BoolVar(&waitForReceipt, "wait", false, "wait for the transaction receipt")
}

// submitAndReport prints the transaction hash and, with --wait, the receipt.
// The receipt is only requested once the submission callback has run.
func submitAndReport(cmd *cobra.Command, rt *runtime, method string, start func(func(common.Hash, error))) error {
	hash, err := call(cmd.Context(), rt.main, start)
	if err != nil {
		return err
	}
	out := map[string]any{"method": method, "tx_hash": hash.Hex()}

	if waitForReceipt {
		receipt, err := call(cmd.Context(), rt.main, func(done func(*types.Receipt, error)) {
			rt.client.WaitForReceipt(hash, done)
		})
		if err != nil {
			return err
		}
		out["status"] = receipt.Status
		out["block_number"] = receipt.BlockNumber
		out["gas_used"] = receipt.GasUsed
	}
	return printJSON(cmd.OutOrStdout(), out)
}

// encodeCallData maps a method name and its arguments onto the encoder.
func encodeCallData(w interfaces.WeddingService, method string, args []string) (string, error) {
	switch method {
	case constants.MethodPropose, constants.MethodUpdateProposition, constants.MethodAcceptProposition:
		if len(args) != 3 {
			return "", fmt.Errorf("%s takes <to> <meta-url> <cond-data>", method)
		}
	case constants.MethodRequestDivorce, constants.MethodConfirmDivorce:
		if len(args) != 0 {
			return "", fmt.Errorf("%s takes no arguments", method)
		}
	}

	switch method {
	case constants.MethodPropose:
		return w.ProposeData(args[0], args[1], args[2])
	case constants.MethodUpdateProposition:
		return w.UpdatePropositionData(args[0], args[1], args[2])
	case constants.MethodAcceptProposition:
		return w.AcceptPropositionData(args[0], args[1], args[2])
	case constants.MethodRequestDivorce:
		return w.RequestDivorceData()
	case constants.MethodConfirmDivorce:
		return w.ConfirmDivorceData()
	default:
		return "", fmt.Errorf("%w: %s", contract.ErrMethodNotFound, method)
	}
}

// agentCall returns the async submission for method.
func agentCall(c *services.AsyncClient, method string, args []string) (func(func(common.Hash, error)), error) {
	switch method {
	case constants.MethodPropose, constants.MethodUpdateProposition, constants.MethodAcceptProposition:
		if len(args) != 3 {
			return nil, fmt.Errorf("%s takes <to> <meta-url> <cond-data>", method)
		}
	case constants.MethodRequestDivorce, constants.MethodConfirmDivorce:
		if len(args) != 0 {
			return nil, fmt.Errorf("%s takes no arguments", method)
		}
	}

	switch method {
	case constants.MethodPropose:
		return func(done func(common.Hash, error)) { c.ProposeAgent(args[0], args[1], args[2], done) }, nil
	case constants.MethodUpdateProposition:
		return func(done func(common.Hash, error)) { c.UpdatePropositionAgent(args[0], args[1], args[2], done) }, nil
	case constants.MethodAcceptProposition:
		return func(done func(common.Hash, error)) { c.AcceptPropositionAgent(args[0], args[1], args[2], done) }, nil
	case constants.MethodRequestDivorce:
		return c.RequestDivorceAgent, nil
	case constants.MethodConfirmDivorce:
		return c.ConfirmDivorceAgent, nil
	default:
		return nil, fmt.Errorf("%w: %s", contract.ErrMethodNotFound, method)
	}
}
