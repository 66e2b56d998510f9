package contract

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/metawedding/wedding-api/internal/config"
	"github.com/metawedding/wedding-api/internal/constants"
)

// Bindings are the three bound contracts used by the service:
// the wedding contract for user reads and call data, the same contract
// under the agent signer, and the faucet contract under the faucet account.
type Bindings struct {
	Wedding      *BoundContract
	WeddingAgent *BoundContract
	Faucet       *BoundContract
}

// NewBindings builds the bindings for the configured deployment. Signers are
// only attached when their keys are configured.
func NewBindings(cfg *config.Config, abis ABIs, backend Backend) (*Bindings, error) {
	chainID := big.NewInt(cfg.Deployment.ChainID)
	wedding := common.HexToAddress(cfg.Deployment.WeddingContract)
	faucet := common.HexToAddress(cfg.Deployment.FaucetContract)

	agent, err := optionalSigner(constants.SignerAgent, cfg.AgentKey, cfg.AgentAddress, chainID)
	if err != nil {
		return nil, err
	}
	faucetAccount, err := optionalSigner(constants.SignerFaucet, cfg.FaucetKey, cfg.Deployment.FaucetAccount, chainID)
	if err != nil {
		return nil, err
	}

	return &Bindings{
		Wedding:      NewBoundContract(constants.WeddingContractName, wedding, abis.Wedding, backend, nil),
		WeddingAgent: NewBoundContract(constants.WeddingContractName, wedding, abis.Wedding, backend, agent),
		Faucet:       NewBoundContract(constants.FaucetContractName, faucet, abis.Faucet, backend, faucetAccount),
	}, nil
}

// optionalSigner returns nil when no key is configured. When an expected
// address is configured the key must belong to it.
func optionalSigner(name, key, expected string, chainID *big.Int) (*Signer, error) {
	if key == "" {
		return nil, nil
	}
	signer, err := NewSigner(name, key, chainID)
	if err != nil {
		return nil, err
	}
	if expected != "" && signer.Address() != common.HexToAddress(expected) {
		return nil, fmt.Errorf("%s key does not match configured address %s", name, expected)
	}
	return signer, nil
}
