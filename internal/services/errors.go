package services

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/metawedding/wedding-api/internal/helpers"
)

var (
	// ErrBalanceParse is returned when a balance cannot be converted for display.
	ErrBalanceParse = errors.New("failed to parse balance")
	// ErrInvalidBlockNumber is returned for nil or negative block numbers.
	ErrInvalidBlockNumber = errors.New("invalid block number")
)

// InvalidAddressError reports an address that failed format or checksum validation.
type InvalidAddressError struct {
	Address string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address: %q", e.Address)
}

// StructParseError reports a decoded tuple that does not match its record schema.
// Index is -1 when the tuple as a whole is malformed.
type StructParseError struct {
	Record string
	Field  string
	Index  int
	Raw    any
	Reason string
}

func (e *StructParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("failed to parse %s: %s (raw: %v)", e.Record, e.Reason, e.Raw)
	}
	return fmt.Sprintf("failed to parse %s field %s at index %d: %s (raw: %v)", e.Record, e.Field, e.Index, e.Reason, e.Raw)
}

// UnsuccessfulReadError reports a contract read the node did not answer with decodable data.
type UnsuccessfulReadError struct {
	Method      string
	Description string
}

func (e *UnsuccessfulReadError) Error() string {
	return fmt.Sprintf("unsuccessful contract read %s: %s", e.Method, e.Description)
}

// WrongChainError reports an RPC endpoint serving another chain than configured.
type WrongChainError struct {
	Expected int64
	Actual   int64
}

func (e *WrongChainError) Error() string {
	return fmt.Sprintf("wrong chain: expected chain id %d, node reports %d", e.Expected, e.Actual)
}

// ValidateAddress parses address or returns *InvalidAddressError.
func ValidateAddress(address string) (common.Address, error) {
	if !helpers.IsAddressValid(address) {
		return common.Address{}, &InvalidAddressError{Address: address}
	}
	return common.HexToAddress(address), nil
}
