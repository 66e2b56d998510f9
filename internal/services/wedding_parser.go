package services

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common"

	"github.com/metawedding/wedding-api/internal/types/business"
)

const (
	recordProposal     = "proposal"
	recordMarriage     = "marriage"
	recordDivorceState = "divorceState"
)

// fieldSpec binds one fixed tuple position to a typed destination.
type fieldSpec struct {
	name string
	bind func(raw any) error
}

func proposalSchema(p *business.Proposal) []fieldSpec {
	return []fieldSpec{
		{name: "metaUrl", bind: stringInto(&p.MetaURL)},
		{name: "condData", bind: stringInto(&p.CondData)},
		{name: "divorceTimeout", bind: uintInto(&p.DivorceTimeout)},
		{name: "timestamp", bind: uintInto(&p.Timestamp)},
		{name: "authorAccepted", bind: flagInto(&p.AuthorAccepted)},
		{name: "receiverAccepted", bind: flagInto(&p.ReceiverAccepted)},
		{name: "tokenId", bind: uintInto(&p.TokenID)},
		{name: "prevBlockNumber", bind: uintInto(&p.PrevBlockNumber)},
	}
}

func marriageSchema(m *business.Marriage, divorceCode **big.Int) []fieldSpec {
	return []fieldSpec{
		{name: "author", bind: addressInto(&m.AuthorAddress)},
		{name: "receiver", bind: addressInto(&m.ReceiverAddress)},
		{name: "divorceState", bind: intInto(divorceCode)},
		{name: "divorceRequestTimestamp", bind: uintInto(&m.DivorceRequestTimestamp)},
		{name: "divorceTimeout", bind: uintInto(&m.DivorceTimeout)},
		{name: "timestamp", bind: uintInto(&m.Timestamp)},
		{name: "metaUrl", bind: stringInto(&m.MetaURL)},
		{name: "conditions", bind: stringInto(&m.Conditions)},
		{name: "tokenId", bind: uintInto(&m.TokenID)},
		{name: "prevBlockNumber", bind: uintInto(&m.PrevBlockNumber)},
	}
}

// decodeTuple maps tuple onto fields in one pass. Extra trailing values are ignored.
func decodeTuple(record string, tuple []any, fields []fieldSpec) error {
	if len(tuple) < len(fields) {
		return &StructParseError{
			Record: record,
			Index:  -1,
			Raw:    tuple,
			Reason: fmt.Sprintf("expected at least %d fields, got %d", len(fields), len(tuple)),
		}
	}
	for i, f := range fields {
		if err := f.bind(tuple[i]); err != nil {
			return &StructParseError{
				Record: record,
				Field:  f.name,
				Index:  i,
				Raw:    tuple[i],
				Reason: err.Error(),
			}
		}
	}
	return nil
}

// ParseProposals pairs each address with its decoded tuple. Any malformed
// element fails the whole batch.
func ParseProposals(addresses []common.Address, raw [][]any) ([]business.Proposal, error) {
	if len(addresses) != len(raw) {
		return nil, &StructParseError{
			Record: recordProposal,
			Index:  -1,
			Raw:    raw,
			Reason: fmt.Sprintf("got %d addresses for %d proposals", len(addresses), len(raw)),
		}
	}

	proposals := make([]business.Proposal, 0, len(raw))
	for i, tuple := range raw {
		p := business.Proposal{Address: addresses[i]}
		if err := decodeTuple(recordProposal, tuple, proposalSchema(&p)); err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, nil
}

// ParseMarriage decodes a marriage tuple. A zero author address means no
// marriage exists and yields the empty Marriage, whatever the other fields hold.
func ParseMarriage(raw []any) (business.Marriage, error) {
	var (
		m    business.Marriage
		code *big.Int
	)
	if err := decodeTuple(recordMarriage, raw, marriageSchema(&m, &code)); err != nil {
		return business.Marriage{}, err
	}
	if m.AuthorAddress == (common.Address{}) {
		return business.Marriage{}, nil
	}

	state, err := ParseDivorceState(code)
	if err != nil {
		return business.Marriage{}, err
	}
	m.DivorceState = state
	return m, nil
}

// ParseDivorceState maps the contract's divorce state code.
func ParseDivorceState(code *big.Int) (business.DivorceState, error) {
	if code == nil || !code.IsInt64() {
		return 0, &StructParseError{Record: recordDivorceState, Index: -1, Raw: code, Reason: "unknown state"}
	}
	switch state := business.DivorceState(code.Int64()); state {
	case business.DivorceNotRequested, business.DivorceRequestedByAuthor, business.DivorceRequestedByReceiver:
		return state, nil
	default:
		return 0, &StructParseError{Record: recordDivorceState, Index: -1, Raw: code, Reason: "unknown state"}
	}
}

// TupleFields flattens a decoded tuple (struct, pointer to struct or []any)
// into its positional values.
func TupleFields(v any) ([]any, error) {
	if fields, ok := v.([]any); ok {
		return fields, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, &StructParseError{Record: "tuple", Index: -1, Raw: v, Reason: fmt.Sprintf("unexpected %T", v)}
	}

	fields := make([]any, rv.NumField())
	for i := range fields {
		fields[i] = rv.Field(i).Interface()
	}
	return fields, nil
}

// TupleSlice flattens a decoded tuple array.
func TupleSlice(v any) ([][]any, error) {
	if tuples, ok := v.([][]any); ok {
		return tuples, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, &StructParseError{Record: "tuple[]", Index: -1, Raw: v, Reason: fmt.Sprintf("unexpected %T", v)}
	}

	tuples := make([][]any, rv.Len())
	for i := range tuples {
		fields, err := TupleFields(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		tuples[i] = fields
	}
	return tuples, nil
}

// AddressSlice converts a decoded address array.
func AddressSlice(v any) ([]common.Address, error) {
	switch addrs := v.(type) {
	case []common.Address:
		return addrs, nil
	case []any:
		out := make([]common.Address, len(addrs))
		for i, a := range addrs {
			if err := addressInto(&out[i])(a); err != nil {
				return nil, &StructParseError{Record: "address[]", Index: i, Raw: a, Reason: err.Error()}
			}
		}
		return out, nil
	default:
		return nil, &StructParseError{Record: "address[]", Index: -1, Raw: v, Reason: fmt.Sprintf("unexpected %T", v)}
	}
}

func stringInto(dst *string) func(any) error {
	return func(raw any) error {
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", raw)
		}
		*dst = s
		return nil
	}
}

func addressInto(dst *common.Address) func(any) error {
	return func(raw any) error {
		switch a := raw.(type) {
		case common.Address:
			*dst = a
		case *common.Address:
			if a == nil {
				return fmt.Errorf("nil address")
			}
			*dst = *a
		default:
			return fmt.Errorf("expected address, got %T", raw)
		}
		return nil
	}
}

func intInto(dst **big.Int) func(any) error {
	return func(raw any) error {
		n, err := toBigInt(raw)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func uintInto(dst **big.Int) func(any) error {
	return func(raw any) error {
		n, err := toBigInt(raw)
		if err != nil {
			return err
		}
		if n.Sign() < 0 {
			return fmt.Errorf("negative value %s", n)
		}
		*dst = n
		return nil
	}
}

// flagInto accepts 0/1 integers or booleans.
func flagInto(dst *bool) func(any) error {
	return func(raw any) error {
		if b, ok := raw.(bool); ok {
			*dst = b
			return nil
		}
		n, err := toBigInt(raw)
		if err != nil {
			return err
		}
		if !n.IsInt64() || (n.Int64() != 0 && n.Int64() != 1) {
			return fmt.Errorf("expected flag 0 or 1, got %s", n)
		}
		*dst = n.Int64() == 1
		return nil
	}
}

func toBigInt(raw any) (*big.Int, error) {
	switch v := raw.(type) {
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("nil integer")
		}
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	case string:
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("expected numeric string, got %q", v)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("expected integer, got %T", raw)
	}
}
