package contract

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/logger"
)

// Backend is the chain access a bound contract needs. *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
}

// RawResult is an undecoded-by-domain read response.
type RawResult struct {
	Method string
	// Success is false when the call returned no data or the data does not
	// match the method's outputs.
	Success bool
	Values  []any
	Data    []byte
}

// BoundContract is one contract address under one ABI and at most one signer.
type BoundContract struct {
	name    string
	address common.Address
	abi     abi.ABI
	backend Backend
	signer  *Signer
	bound   *bind.BoundContract
	log     *zap.Logger
}

// NewBoundContract binds parsed at address. A nil signer gives a read-only binding.
func NewBoundContract(name string, address common.Address, parsed abi.ABI, backend Backend, signer *Signer) *BoundContract {
	log := logger.Log.With(zap.String("contract", name), zap.String("address", address.Hex()))
	if signer != nil {
		log = log.With(zap.String("signer", signer.Name()))
	}
	return &BoundContract{
		name:    name,
		address: address,
		abi:     parsed,
		backend: backend,
		signer:  signer,
		bound:   bind.NewBoundContract(address, parsed, backend, backend, backend),
		log:     log,
	}
}

// Name returns the binding name.
func (b *BoundContract) Name() string { return b.name }

// Address returns the contract address.
func (b *BoundContract) Address() common.Address { return b.address }

// Signer returns the bound signer or nil for read-only bindings.
func (b *BoundContract) Signer() *Signer { return b.signer }

// Method looks a method up by its exact ABI name.
func (b *BoundContract) Method(name string) (abi.Method, error) {
	var found []abi.Method
	for _, m := range b.abi.Methods {
		if m.RawName == name {
			found = append(found, m)
		}
	}

	switch len(found) {
	case 0:
		return abi.Method{}, fmt.Errorf("%w: %s", ErrMethodNotFound, name)
	case 1:
		return found[0], nil
	default:
		return abi.Method{}, fmt.Errorf("%w: %s has %d variants", ErrAmbiguousMethod, name, len(found))
	}
}

// Encode returns selector plus ABI-encoded params for method.
func (b *BoundContract) Encode(method string, params ...any) ([]byte, error) {
	m, err := b.Method(method)
	if err != nil {
		return nil, err
	}
	data, err := b.abi.Pack(m.Name, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", method, err)
	}
	return data, nil
}

// Read performs an eth_call of method from the given account.
// Transport errors are returned as is.
func (b *BoundContract) Read(ctx context.Context, method string, from common.Address, params ...any) (RawResult, error) {
	m, err := b.Method(method)
	if err != nil {
		return RawResult{}, err
	}
	input, err := b.abi.Pack(m.Name, params...)
	if err != nil {
		return RawResult{}, fmt.Errorf("failed to encode %s: %w", method, err)
	}

	output, err := b.backend.CallContract(ctx, ethereum.CallMsg{
		From: from,
		To:   &b.address,
		Data: input,
	}, nil)
	if err != nil {
		return RawResult{}, err
	}

	result := RawResult{Method: method, Data: output}
	if len(output) == 0 {
		b.log.Debug("Contract read returned no data", zap.String("method", method))
		return result, nil
	}

	values, err := m.Outputs.UnpackValues(output)
	if err != nil {
		b.log.Debug("Contract read returned undecodable data",
			zap.String("method", method),
			zap.Error(err),
		)
		return result, nil
	}

	result.Success = true
	result.Values = values
	return result, nil
}

// Write submits method as a transaction signed by the bound signer and
// returns its hash. The transaction is sent once.
func (b *BoundContract) Write(ctx context.Context, method string, params ...any) (common.Hash, error) {
	if b.signer == nil {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrReadOnlyBinding, b.name)
	}
	m, err := b.Method(method)
	if err != nil {
		return common.Hash{}, err
	}

	opts, err := b.signer.TransactOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	log := logger.FromContext(ctx, b.log)
	tx, err := b.bound.Transact(opts, m.Name, params...)
	if err != nil {
		log.Error("Transaction submission failed",
			zap.String("method", method),
			zap.Error(err),
		)
		return common.Hash{}, err
	}

	log.Info("Transaction submitted",
		zap.String("method", method),
		zap.String("txHash", tx.Hash().Hex()),
		zap.Uint64("nonce", tx.Nonce()),
	)
	return tx.Hash(), nil
}
