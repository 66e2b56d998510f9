package services

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/metawedding/wedding-api/internal/dispatch"
	"github.com/metawedding/wedding-api/internal/interfaces"
	"github.com/metawedding/wedding-api/internal/types/business"
)

// AsyncClient exposes the chain and wedding operations as callbacks. Work runs
// on the dispatcher and every callback is delivered on the main queue, except
// address validation failures which are reported immediately on the caller's
// goroutine. Concurrent calls are independent and unordered.
type AsyncClient struct {
	chain      interfaces.ChainService
	wedding    interfaces.WeddingService
	dispatcher *dispatch.Dispatcher
	main       *dispatch.MainQueue
}

// NewAsyncClient creates a new async client
func NewAsyncClient(chain interfaces.ChainService, wedding interfaces.WeddingService, dispatcher *dispatch.Dispatcher, main *dispatch.MainQueue) *AsyncClient {
	return &AsyncClient{
		chain:      chain,
		wedding:    wedding,
		dispatcher: dispatcher,
		main:       main,
	}
}

// validAddresses reports the first invalid address, if any.
func validAddresses(addresses ...string) error {
	for _, a := range addresses {
		if _, err := ValidateAddress(a); err != nil {
			return err
		}
	}
	return nil
}

// GetBalance delivers the ether balance of address.
func (c *AsyncClient) GetBalance(address string, onResult func(float64, error)) {
	if err := validAddresses(address); err != nil {
		onResult(0, err)
		return
	}
	dispatch.Go(c.dispatcher, c.main, "getBalance", func(ctx context.Context) (float64, error) {
		return c.chain.GetBalance(ctx, address)
	}, onResult)
}

// GetBlockHash delivers the hash of the block at blockNumber.
func (c *AsyncClient) GetBlockHash(blockNumber *big.Int, onResult func(string, error)) {
	dispatch.Go(c.dispatcher, c.main, "getBlockHash", func(ctx context.Context) (string, error) {
		return c.chain.GetBlockHash(ctx, blockNumber)
	}, onResult)
}

// GetGasPrice delivers the suggested gas price.
func (c *AsyncClient) GetGasPrice(onResult func(*big.Int, error)) {
	dispatch.Go(c.dispatcher, c.main, "getGasPrice", c.chain.GetGasPrice, onResult)
}

// VerifyChain delivers nil when the node serves the configured chain.
func (c *AsyncClient) VerifyChain(onResult func(error)) {
	dispatch.Go(c.dispatcher, c.main, "verifyChain", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.chain.VerifyChain(ctx)
	}, func(_ struct{}, err error) {
		onResult(err)
	})
}

// WaitForReceipt delivers the receipt of txHash once mined.
func (c *AsyncClient) WaitForReceipt(txHash common.Hash, onResult func(*types.Receipt, error)) {
	dispatch.Go(c.dispatcher, c.main, "waitForReceipt", func(ctx context.Context) (*types.Receipt, error) {
		return c.chain.WaitForReceipt(ctx, txHash)
	}, onResult)
}

// GetCurrentMarriage delivers the marriage of address.
func (c *AsyncClient) GetCurrentMarriage(address string, onResult func(business.Marriage, error)) {
	if err := validAddresses(address); err != nil {
		onResult(business.Marriage{}, err)
		return
	}
	dispatch.Go(c.dispatcher, c.main, "getCurrentMarriage", func(ctx context.Context) (business.Marriage, error) {
		return c.wedding.GetCurrentMarriage(ctx, address)
	}, onResult)
}

// GetIncomingPropositions delivers the propositions addressed to address.
func (c *AsyncClient) GetIncomingPropositions(address string, onResult func([]business.Proposal, error)) {
	if err := validAddresses(address); err != nil {
		onResult(nil, err)
		return
	}
	dispatch.Go(c.dispatcher, c.main, "getIncomingPropositions", func(ctx context.Context) ([]business.Proposal, error) {
		return c.wedding.GetIncomingPropositions(ctx, address)
	}, onResult)
}

// GetOutgoingPropositions delivers the propositions made by address.
func (c *AsyncClient) GetOutgoingPropositions(address string, onResult func([]business.Proposal, error)) {
	if err := validAddresses(address); err != nil {
		onResult(nil, err)
		return
	}
	dispatch.Go(c.dispatcher, c.main, "getOutgoingPropositions", func(ctx context.Context) ([]business.Proposal, error) {
		return c.wedding.GetOutgoingPropositions(ctx, address)
	}, onResult)
}

// ProposeAgent delivers the hash of the agent-signed propose transaction.
func (c *AsyncClient) ProposeAgent(to, metaURL, condData string, onResult func(common.Hash, error)) {
	if err := validAddresses(to); err != nil {
		onResult(common.Hash{}, err)
		return
	}
	dispatch.Go(c.dispatcher, c.main, "proposeAgent", func(ctx context.Context) (common.Hash, error) {
		return c.wedding.ProposeAgent(ctx, to, metaURL, condData)
	}, onResult)
}

// UpdatePropositionAgent delivers the hash of the agent-signed updateProposition transaction.
func (c *AsyncClient) UpdatePropositionAgent(to, metaURL, condData string, onResult func(common.Hash, error)) {
	if err := validAddresses(to); err != nil {
		onResult(common.Hash{}, err)
		return
	}
	dispatch.Go(c.dispatcher, c.main, "updatePropositionAgent", func(ctx context.Context) (common.Hash, error) {
		return c.wedding.UpdatePropositionAgent(ctx, to, metaURL, condData)
	}, onResult)
}

// AcceptPropositionAgent delivers the hash of the agent-signed acceptProposition transaction.
func (c *AsyncClient) AcceptPropositionAgent(to, metaURL, condData string, onResult func(common.Hash, error)) {
	if err := validAddresses(to); err != nil {
		onResult(common.Hash{}, err)
		return
	}
	dispatch.Go(c.dispatcher, c.main, "acceptPropositionAgent", func(ctx context.Context) (common.Hash, error) {
		return c.wedding.AcceptPropositionAgent(ctx, to, metaURL, condData)
	}, onResult)
}

// RequestDivorceAgent delivers the hash of the agent-signed requestDivorce transaction.
func (c *AsyncClient) RequestDivorceAgent(onResult func(common.Hash, error)) {
	dispatch.Go(c.dispatcher, c.main, "requestDivorceAgent", c.wedding.RequestDivorceAgent, onResult)
}

// ConfirmDivorceAgent delivers the hash of the agent-signed confirmDivorce transaction.
func (c *AsyncClient) ConfirmDivorceAgent(onResult func(common.Hash, error)) {
	dispatch.Go(c.dispatcher, c.main, "confirmDivorceAgent", c.wedding.ConfirmDivorceAgent, onResult)
}

// CallFaucet delivers the hash of the faucet transaction funding to.
func (c *AsyncClient) CallFaucet(to string, onResult func(common.Hash, error)) {
	if err := validAddresses(to); err != nil {
		onResult(common.Hash{}, err)
		return
	}
	dispatch.Go(c.dispatcher, c.main, "callFaucet", func(ctx context.Context) (common.Hash, error) {
		return c.wedding.CallFaucet(ctx, to)
	}, onResult)
}
