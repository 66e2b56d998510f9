package testutil

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// MarriageTuple packs into the getCurrentMarriage output tuple.
type MarriageTuple struct {
	Author                  common.Address
	Receiver                common.Address
	DivorceState            uint8
	DivorceRequestTimestamp *big.Int
	DivorceTimeout          *big.Int
	Timestamp               *big.Int
	MetaUrl                 string
	Conditions              string
	TokenId                 *big.Int
	PrevBlockNumber         *big.Int
}

// PropositionTuple packs into one element of the propositions output.
type PropositionTuple struct {
	MetaUrl          string
	CondData         string
	DivorceTimeout   *big.Int
	Timestamp        *big.Int
	AuthorAccepted   uint8
	ReceiverAccepted uint8
	TokenId          *big.Int
	PrevBlockNumber  *big.Int
}

// NewMarriageTuple returns a populated marriage between author and receiver.
func NewMarriageTuple(author, receiver common.Address, divorceState uint8) MarriageTuple {
	return MarriageTuple{
		Author:                  author,
		Receiver:                receiver,
		DivorceState:            divorceState,
		DivorceRequestTimestamp: big.NewInt(0),
		DivorceTimeout:          big.NewInt(86400),
		Timestamp:               big.NewInt(1_650_000_000),
		MetaUrl:                 "ipfs://meta",
		Conditions:              "{}",
		TokenId:                 big.NewInt(7),
		PrevBlockNumber:         big.NewInt(12345),
	}
}

// NewPropositionTuple returns a proposition with the given acceptance flags.
func NewPropositionTuple(metaURL string, authorAccepted, receiverAccepted uint8) PropositionTuple {
	return PropositionTuple{
		MetaUrl:          metaURL,
		CondData:         "{}",
		DivorceTimeout:   big.NewInt(86400),
		Timestamp:        big.NewInt(1_650_000_000),
		AuthorAccepted:   authorAccepted,
		ReceiverAccepted: receiverAccepted,
		TokenId:          big.NewInt(1),
		PrevBlockNumber:  big.NewInt(999),
	}
}
