package ethereum

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/logger"
)

// ClientConfig configures the connection to the JSON-RPC node
type ClientConfig struct {
	RPCURL      string
	DialTimeout time.Duration
}

// NewClient dials the node at cfg.RPCURL.
func NewClient(ctx context.Context, cfg ClientConfig) (*ethclient.Client, error) {
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("rpc url is required")
	}

	timeout := cfg.DialTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := ethclient.DialContext(dialCtx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rpc node: %w", err)
	}

	logger.Log.Info("Connected to rpc node", zap.String("rpc_url", redactURL(cfg.RPCURL)))
	return client, nil
}

// redactURL keeps the scheme and host of an RPC url; provider urls often
// carry an API key in the path.
func redactURL(raw string) string {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '/' && i+1 < len(raw) && raw[i+1] == '/' {
			for j := i + 2; j < len(raw); j++ {
				if raw[j] == '/' || raw[j] == '?' {
					return raw[:j]
				}
			}
			return raw
		}
	}
	return raw
}
