package services

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/multiformats/go-multihash"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/constants"
	"github.com/metawedding/wedding-api/internal/contract"
	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/types/business"
)

// WeddingService reads wedding state, encodes user call data and submits
// agent and faucet transactions
type WeddingService struct {
	bindings *contract.Bindings
	logger   *zap.Logger
}

// NewWeddingService creates a new wedding service over the given bindings
func NewWeddingService(bindings *contract.Bindings) *WeddingService {
	return &WeddingService{
		bindings: bindings,
		logger:   logger.Log,
	}
}

// GetCurrentMarriage returns the marriage address belongs to, or the empty
// Marriage when there is none.
func (s *WeddingService) GetCurrentMarriage(ctx context.Context, address string) (business.Marriage, error) {
	from, err := ValidateAddress(address)
	if err != nil {
		return business.Marriage{}, err
	}

	res, err := s.read(ctx, constants.MethodGetCurrentMarriage, from)
	if err != nil {
		return business.Marriage{}, err
	}
	if len(res.Values) < 1 {
		return business.Marriage{}, &StructParseError{Record: recordMarriage, Index: -1, Raw: res.Values, Reason: "missing result"}
	}

	tuple, err := TupleFields(res.Values[0])
	if err != nil {
		return business.Marriage{}, err
	}
	return ParseMarriage(tuple)
}

// GetIncomingPropositions returns the propositions addressed to address.
func (s *WeddingService) GetIncomingPropositions(ctx context.Context, address string) ([]business.Proposal, error) {
	return s.requestPropositions(ctx, constants.MethodGetIncomingPropositions, address)
}

// GetOutgoingPropositions returns the propositions address has made.
func (s *WeddingService) GetOutgoingPropositions(ctx context.Context, address string) ([]business.Proposal, error) {
	return s.requestPropositions(ctx, constants.MethodGetOutgoingPropositions, address)
}

func (s *WeddingService) requestPropositions(ctx context.Context, method, address string) ([]business.Proposal, error) {
	from, err := ValidateAddress(address)
	if err != nil {
		return nil, err
	}

	res, err := s.read(ctx, method, from)
	if err != nil {
		return nil, err
	}
	if len(res.Values) < 2 {
		return nil, &StructParseError{Record: recordProposal, Index: -1, Raw: res.Values, Reason: "missing result"}
	}

	addresses, err := AddressSlice(res.Values[0])
	if err != nil {
		return nil, err
	}
	tuples, err := TupleSlice(res.Values[1])
	if err != nil {
		return nil, err
	}

	proposals, err := ParseProposals(addresses, tuples)
	if err != nil {
		s.logger.Error("Failed to parse propositions", zap.String("method", method), zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Fetched propositions",
		zap.String("method", method),
		zap.String("address", address),
		zap.Int("count", len(proposals)),
	)
	return proposals, nil
}

// read calls a wedding view method as from and rejects unsuccessful responses
// before anything is parsed.
func (s *WeddingService) read(ctx context.Context, method string, from common.Address) (contract.RawResult, error) {
	res, err := s.bindings.Wedding.Read(ctx, method, from)
	if err != nil {
		return contract.RawResult{}, err
	}
	if !res.Success {
		s.logger.Warn("Unsuccessful contract read",
			zap.String("method", method),
			zap.String("from", from.Hex()),
		)
		return contract.RawResult{}, &UnsuccessfulReadError{Method: method, Description: spew.Sdump(res)}
	}
	return res, nil
}

// ProposeData returns the call data of propose(to, metaURL, condData).
func (s *WeddingService) ProposeData(to, metaURL, condData string) (string, error) {
	return s.encodeWithRecipient(constants.MethodPropose, to, metaURL, condData)
}

// UpdatePropositionData returns the call data of updateProposition(to, metaURL, condData).
func (s *WeddingService) UpdatePropositionData(to, metaURL, condData string) (string, error) {
	return s.encodeWithRecipient(constants.MethodUpdateProposition, to, metaURL, condData)
}

// AcceptPropositionData returns the call data of acceptProposition with the
// sha2-256 digests of metaURL and condData.
func (s *WeddingService) AcceptPropositionData(to, metaURL, condData string) (string, error) {
	recipient, err := ValidateAddress(to)
	if err != nil {
		return "", err
	}
	metaHash, condHash, err := acceptanceDigests(metaURL, condData)
	if err != nil {
		return "", err
	}
	return s.encode(constants.MethodAcceptProposition, recipient, metaHash, condHash)
}

// RequestDivorceData returns the call data of requestDivorce().
func (s *WeddingService) RequestDivorceData() (string, error) {
	return s.encode(constants.MethodRequestDivorce)
}

// ConfirmDivorceData returns the call data of confirmDivorce().
func (s *WeddingService) ConfirmDivorceData() (string, error) {
	return s.encode(constants.MethodConfirmDivorce)
}

func (s *WeddingService) encodeWithRecipient(method, to, metaURL, condData string) (string, error) {
	recipient, err := ValidateAddress(to)
	if err != nil {
		return "", err
	}
	return s.encode(method, recipient, metaURL, condData)
}

func (s *WeddingService) encode(method string, params ...any) (string, error) {
	data, err := s.bindings.Wedding.Encode(method, params...)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(data), nil
}

// ProposeAgent submits propose(to, metaURL, condData) signed by the agent.
func (s *WeddingService) ProposeAgent(ctx context.Context, to, metaURL, condData string) (common.Hash, error) {
	recipient, err := ValidateAddress(to)
	if err != nil {
		return common.Hash{}, err
	}
	return s.writeAgent(ctx, constants.MethodPropose, recipient, metaURL, condData)
}

// UpdatePropositionAgent submits updateProposition(to, metaURL, condData) signed by the agent.
func (s *WeddingService) UpdatePropositionAgent(ctx context.Context, to, metaURL, condData string) (common.Hash, error) {
	recipient, err := ValidateAddress(to)
	if err != nil {
		return common.Hash{}, err
	}
	return s.writeAgent(ctx, constants.MethodUpdateProposition, recipient, metaURL, condData)
}

// AcceptPropositionAgent submits acceptProposition with content digests signed by the agent.
func (s *WeddingService) AcceptPropositionAgent(ctx context.Context, to, metaURL, condData string) (common.Hash, error) {
	recipient, err := ValidateAddress(to)
	if err != nil {
		return common.Hash{}, err
	}
	metaHash, condHash, err := acceptanceDigests(metaURL, condData)
	if err != nil {
		return common.Hash{}, err
	}
	return s.writeAgent(ctx, constants.MethodAcceptProposition, recipient, metaHash, condHash)
}

// RequestDivorceAgent submits requestDivorce() signed by the agent.
func (s *WeddingService) RequestDivorceAgent(ctx context.Context) (common.Hash, error) {
	return s.writeAgent(ctx, constants.MethodRequestDivorce)
}

// ConfirmDivorceAgent submits confirmDivorce() signed by the agent.
func (s *WeddingService) ConfirmDivorceAgent(ctx context.Context) (common.Hash, error) {
	return s.writeAgent(ctx, constants.MethodConfirmDivorce)
}

func (s *WeddingService) writeAgent(ctx context.Context, method string, params ...any) (common.Hash, error) {
	logger.FromContext(ctx, s.logger).Info("Calling method by agent", zap.String("method", method))
	hash, err := s.bindings.WeddingAgent.Write(ctx, method, params...)
	if err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}

// CallFaucet submits faucet(to) from the faucet account.
func (s *WeddingService) CallFaucet(ctx context.Context, to string) (common.Hash, error) {
	recipient, err := ValidateAddress(to)
	if err != nil {
		return common.Hash{}, err
	}

	logger.FromContext(ctx, s.logger).Info("Calling faucet", zap.String("to", recipient.Hex()))
	return s.bindings.Faucet.Write(ctx, constants.MethodFaucet, recipient)
}

// ContentDigest returns the sha2-256 digest of content.
func ContentDigest(content string) ([32]byte, error) {
	var digest [32]byte

	mh, err := multihash.Sum([]byte(content), multihash.SHA2_256, -1)
	if err != nil {
		return digest, fmt.Errorf("failed to hash content: %w", err)
	}
	decoded, err := multihash.Decode(mh)
	if err != nil {
		return digest, fmt.Errorf("failed to decode multihash: %w", err)
	}
	copy(digest[:], decoded.Digest)
	return digest, nil
}

func acceptanceDigests(metaURL, condData string) ([32]byte, [32]byte, error) {
	metaHash, err := ContentDigest(metaURL)
	if err != nil {
		return [32]byte{}, [32]byte{}, err
	}
	condHash, err := ContentDigest(condData)
	if err != nil {
		return [32]byte{}, [32]byte{}, err
	}
	return metaHash, condHash, nil
}
