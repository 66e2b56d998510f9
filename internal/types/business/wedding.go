package business

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ipfs/go-cid"
)

const ipfsScheme = "ipfs://"

// Proposal is a marriage proposition as stored by the wedding contract.
// Address is the counterparty: the receiver for outgoing propositions and
// the author for incoming ones.
type Proposal struct {
	Address          common.Address `json:"address"`
	MetaURL          string         `json:"meta_url"`
	CondData         string         `json:"cond_data"`
	DivorceTimeout   *big.Int       `json:"divorce_timeout"`
	Timestamp        *big.Int       `json:"timestamp"`
	AuthorAccepted   bool           `json:"author_accepted"`
	ReceiverAccepted bool           `json:"receiver_accepted"`
	TokenID          *big.Int       `json:"token_id"`
	PrevBlockNumber  *big.Int       `json:"prev_block_number"`
}

// MetaCID returns the CID of an ipfs:// meta URL.
func (p Proposal) MetaCID() (cid.Cid, bool) {
	return ParseIPFSURL(p.MetaURL)
}

// BothAccepted reports whether both sides accepted the proposition.
func (p Proposal) BothAccepted() bool {
	return p.AuthorAccepted && p.ReceiverAccepted
}

// Marriage is the current marriage of an address. The zero value is the
// "no marriage" sentinel.
type Marriage struct {
	AuthorAddress           common.Address `json:"author_address"`
	ReceiverAddress         common.Address `json:"receiver_address"`
	DivorceState            DivorceState   `json:"divorce_state"`
	DivorceRequestTimestamp *big.Int       `json:"divorce_request_timestamp"`
	DivorceTimeout          *big.Int       `json:"divorce_timeout"`
	Timestamp               *big.Int       `json:"timestamp"`
	MetaURL                 string         `json:"meta_url"`
	Conditions              string         `json:"conditions"`
	TokenID                 *big.Int       `json:"token_id"`
	PrevBlockNumber         *big.Int       `json:"prev_block_number"`
}

// IsEmpty reports whether m is the "no marriage" sentinel.
func (m Marriage) IsEmpty() bool {
	return m.AuthorAddress == (common.Address{})
}

// MetaCID returns the CID of an ipfs:// meta URL.
func (m Marriage) MetaCID() (cid.Cid, bool) {
	return ParseIPFSURL(m.MetaURL)
}

// DivorceState is the divorce progress of a marriage.
type DivorceState int

const (
	DivorceNotRequested DivorceState = iota
	DivorceRequestedByAuthor
	DivorceRequestedByReceiver
)

var divorceStateNames = map[DivorceState]string{
	DivorceNotRequested:        "not_requested",
	DivorceRequestedByAuthor:   "requested_by_author",
	DivorceRequestedByReceiver: "requested_by_receiver",
}

func (s DivorceState) String() string {
	if name, ok := divorceStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s DivorceState) MarshalText() ([]byte, error) {
	name, ok := divorceStateNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown divorce state %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *DivorceState) UnmarshalText(text []byte) error {
	for state, name := range divorceStateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown divorce state %q", string(text))
}

// ParseIPFSURL extracts the CID from an ipfs://<cid>[/path] URL.
func ParseIPFSURL(url string) (cid.Cid, bool) {
	if !strings.HasPrefix(url, ipfsScheme) {
		return cid.Undef, false
	}
	rest := strings.TrimPrefix(url, ipfsScheme)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	c, err := cid.Decode(rest)
	if err != nil {
		return cid.Undef, false
	}
	return c, true
}
