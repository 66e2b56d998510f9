package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/config"
	"github.com/metawedding/wedding-api/internal/constants"
	"github.com/metawedding/wedding-api/internal/interfaces"
	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/metrics"
)

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// ChainService handles balance, block and gas queries against one chain
type ChainService struct {
	backend      interfaces.ChainBackend
	chainID      int64
	pollInterval time.Duration
	logger       *zap.Logger
}

// NewChainService creates a new chain service for the configured deployment
func NewChainService(backend interfaces.ChainBackend, cfg *config.Config) *ChainService {
	pollInterval := cfg.ReceiptPollInterval
	if pollInterval <= 0 {
		// a zero interval would make WaitForReceipt spin on the RPC endpoint
		pollInterval = config.DefaultReceiptPollInterval
	}
	return &ChainService{
		backend:      backend,
		chainID:      cfg.Deployment.ChainID,
		pollInterval: pollInterval,
		logger:       logger.Log,
	}
}

// GetBalance returns the ether balance of address truncated to six decimals.
func (s *ChainService) GetBalance(ctx context.Context, address string) (balance float64, err error) {
	account, err := ValidateAddress(address)
	if err != nil {
		return 0, err
	}
	defer metrics.ObserveRPC("balance_at", time.Now(), &err)

	wei, err := s.backend.BalanceAt(ctx, account, nil)
	if err != nil {
		return 0, err
	}

	formatted := FormatEther(wei, constants.BalanceDecimals)
	balance, err = strconv.ParseFloat(formatted, 64)
	if err != nil {
		s.logger.Error("Failed to parse balance",
			zap.String("address", address),
			zap.String("balance", formatted),
			zap.Error(err),
		)
		return 0, fmt.Errorf("%w: %q", ErrBalanceParse, formatted)
	}

	s.logger.Debug("Fetched balance",
		zap.String("address", address),
		zap.String("balance", formatted),
	)
	return balance, nil
}

// GetBlockHash returns the 0x-prefixed hash of the block at blockNumber.
func (s *ChainService) GetBlockHash(ctx context.Context, blockNumber *big.Int) (hash string, err error) {
	if blockNumber == nil || blockNumber.Sign() < 0 {
		return "", ErrInvalidBlockNumber
	}
	defer metrics.ObserveRPC("header_by_number", time.Now(), &err)

	header, err := s.backend.HeaderByNumber(ctx, blockNumber)
	if err != nil {
		return "", err
	}

	hash = header.Hash().Hex()
	s.logger.Debug("Fetched block hash",
		zap.String("block", blockNumber.String()),
		zap.String("hash", hash),
	)
	return hash, nil
}

// GetGasPrice returns the node-suggested gas price in wei.
func (s *ChainService) GetGasPrice(ctx context.Context) (price *big.Int, err error) {
	defer metrics.ObserveRPC("suggest_gas_price", time.Now(), &err)

	return s.backend.SuggestGasPrice(ctx)
}

// VerifyChain checks that the node serves the configured chain.
func (s *ChainService) VerifyChain(ctx context.Context) (err error) {
	defer metrics.ObserveRPC("chain_id", time.Now(), &err)

	actual, err := s.backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain id: %w", err)
	}
	if !actual.IsInt64() || actual.Int64() != s.chainID {
		s.logger.Warn("Connected to wrong chain",
			zap.Int64("expected", s.chainID),
			zap.String("actual", actual.String()),
		)
		return &WrongChainError{Expected: s.chainID, Actual: actual.Int64()}
	}
	return nil
}

// WaitForReceipt polls for the receipt of txHash with exponential backoff
// until it is mined or ctx is done.
func (s *ChainService) WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.pollInterval
	b.MaxInterval = 10 * s.pollInterval
	b.MaxElapsedTime = 0

	var receipt *types.Receipt
	attempts := 0
	operation := func() (err error) {
		attempts++
		defer metrics.ObserveRPC("transaction_receipt", time.Now(), &err)

		r, err := s.backend.TransactionReceipt(ctx, txHash)
		if errors.Is(err, ethereum.NotFound) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		receipt = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to wait for receipt %s: %w", txHash.Hex(), err)
	}

	logger.FromContext(ctx, s.logger).Info("Transaction mined",
		zap.String("txHash", txHash.Hex()),
		zap.Uint64("status", receipt.Status),
		zap.Int("attempts", attempts),
	)
	return receipt, nil
}

// FormatEther renders wei as ether with the given number of decimals, truncating.
func FormatEther(wei *big.Int, decimals int) string {
	if wei == nil {
		return ""
	}
	whole, rem := new(big.Int).QuoRem(wei, weiPerEther, new(big.Int))
	if decimals <= 0 {
		return whole.String()
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(18-decimals)), nil)
	frac := new(big.Int).Quo(rem.Abs(rem), scale)
	return fmt.Sprintf("%s.%0*d", whole.String(), decimals, frac.Int64())
}
