package interfaces

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/metawedding/wedding-api/internal/types/business"
)

//go:generate mockgen -source=services.go -destination=../mocks/mock_services.go -package=mocks

// ChainService handles plain chain queries
type ChainService interface {
	GetBalance(ctx context.Context, address string) (float64, error)
	GetBlockHash(ctx context.Context, blockNumber *big.Int) (string, error)
	GetGasPrice(ctx context.Context) (*big.Int, error)
	VerifyChain(ctx context.Context) error
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// WeddingService handles wedding and faucet contract operations
type WeddingService interface {
	GetCurrentMarriage(ctx context.Context, address string) (business.Marriage, error)
	GetIncomingPropositions(ctx context.Context, address string) ([]business.Proposal, error)
	GetOutgoingPropositions(ctx context.Context, address string) ([]business.Proposal, error)

	ProposeData(to, metaURL, condData string) (string, error)
	UpdatePropositionData(to, metaURL, condData string) (string, error)
	AcceptPropositionData(to, metaURL, condData string) (string, error)
	RequestDivorceData() (string, error)
	ConfirmDivorceData() (string, error)

	ProposeAgent(ctx context.Context, to, metaURL, condData string) (common.Hash, error)
	UpdatePropositionAgent(ctx context.Context, to, metaURL, condData string) (common.Hash, error)
	AcceptPropositionAgent(ctx context.Context, to, metaURL, condData string) (common.Hash, error)
	RequestDivorceAgent(ctx context.Context) (common.Hash, error)
	ConfirmDivorceAgent(ctx context.Context) (common.Hash, error)

	CallFaucet(ctx context.Context, to string) (common.Hash, error)
}

// MetadataFetcher resolves ipfs:// meta URLs to their JSON documents
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, metaURL string) (json.RawMessage, error)
}
