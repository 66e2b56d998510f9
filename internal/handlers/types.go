package handlers

import "github.com/ethereum/go-ethereum/core/types"

// PropositionRequest is the body of the propose, update and accept endpoints
type PropositionRequest struct {
	To       string `json:"to" binding:"required"`
	MetaURL  string `json:"meta_url" binding:"required"`
	CondData string `json:"cond_data"`
}

// FaucetRequest is the body of the faucet endpoint
type FaucetRequest struct {
	To string `json:"to" binding:"required"`
}

// CallDataResponse is an unsigned call the user's wallet can sign and send
type CallDataResponse struct {
	Object  string `json:"object"`
	Method  string `json:"method"`
	ChainID int64  `json:"chain_id"`
	To      string `json:"to"`
	Data    string `json:"data"`
}

// TransactionResponse describes a submitted transaction. Receipt is only set
// when the caller asked to wait for it.
type TransactionResponse struct {
	Object  string         `json:"object"`
	Method  string         `json:"method"`
	ChainID int64          `json:"chain_id"`
	TxHash  string         `json:"tx_hash"`
	Receipt *types.Receipt `json:"receipt,omitempty"`
}
