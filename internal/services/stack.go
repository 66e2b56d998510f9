package services

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/client/aws"
	"github.com/metawedding/wedding-api/internal/client/ethereum"
	"github.com/metawedding/wedding-api/internal/client/ipfs"
	"github.com/metawedding/wedding-api/internal/config"
	"github.com/metawedding/wedding-api/internal/contract"
	"github.com/metawedding/wedding-api/internal/logger"
)

// Stack is the set of services built from one configuration
type Stack struct {
	Config  *config.Config
	Client  *ethclient.Client
	Chain   *ChainService
	Wedding *WeddingService
	Meta    *ipfs.Gateway
}

// LoadConfig loads the configuration, resolving keys through Secrets Manager
// when AWS credentials are available.
func LoadConfig(ctx context.Context) (*config.Config, error) {
	var secrets config.SecretSource
	sm, err := aws.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Log.Warn("Secrets Manager unavailable, reading keys from environment", zap.Error(err))
	} else {
		secrets = sm
	}
	return config.Load(ctx, secrets)
}

// NewStack dials the configured node and builds the chain and wedding services.
func NewStack(ctx context.Context, cfg *config.Config) (*Stack, error) {
	abis, err := contract.LoadABIs(cfg.ABIDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load contract ABIs: %w", err)
	}

	client, err := ethereum.NewClient(ctx, ethereum.ClientConfig{RPCURL: cfg.RPCURL})
	if err != nil {
		return nil, err
	}

	bindings, err := contract.NewBindings(cfg, abis, client)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to bind contracts: %w", err)
	}

	logger.Log.Info("Contracts bound",
		zap.String("deployment", cfg.Deployment.Name),
		zap.Int64("chain_id", cfg.Deployment.ChainID),
		zap.String("wedding", cfg.Deployment.WeddingContract),
		zap.String("faucet", cfg.Deployment.FaucetContract),
		zap.Bool("agent_signer", bindings.WeddingAgent.Signer() != nil),
		zap.Bool("faucet_signer", bindings.Faucet.Signer() != nil),
	)

	return &Stack{
		Config:  cfg,
		Client:  client,
		Chain:   NewChainService(client, cfg),
		Wedding: NewWeddingService(bindings),
		Meta:    ipfs.NewGateway(cfg.IPFSGatewayURL),
	}, nil
}

// Close releases the RPC connection.
func (s *Stack) Close() {
	s.Client.Close()
}
