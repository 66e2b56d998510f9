package contract

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer is a named signing identity bound to one chain.
type Signer struct {
	name    string
	address common.Address
	key     *ecdsa.PrivateKey
	chainID *big.Int
}

// NewSigner builds a signer from a hex private key, with or without 0x prefix.
func NewSigner(name, hexKey string, chainID *big.Int) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s private key: %w", name, err)
	}
	if chainID == nil || chainID.Sign() <= 0 {
		return nil, fmt.Errorf("invalid chain id for %s signer", name)
	}
	return &Signer{
		name:    name,
		address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
		chainID: new(big.Int).Set(chainID),
	}, nil
}

// Name returns the identity name, e.g. "agent".
func (s *Signer) Name() string { return s.name }

// Address returns the account the signer sends from.
func (s *Signer) Address() common.Address { return s.address }

// ChainID returns the chain the signer signs for.
func (s *Signer) ChainID() *big.Int { return new(big.Int).Set(s.chainID) }

// TransactOpts returns fresh options for a single transaction: value 0,
// gas price and gas limit left to the node.
func (s *Signer) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s transactor: %w", s.name, err)
	}
	opts.Context = ctx
	opts.Value = big.NewInt(0)
	return opts, nil
}
