package testutil

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CallHandler answers an eth_call.
type CallHandler func(msg ethereum.CallMsg) ([]byte, error)

// FakeBackend is an in-memory chain that satisfies the contract and chain
// backends. Calls are answered per 4-byte selector; transactions are recorded.
type FakeBackend struct {
	mu sync.Mutex

	chainID  *big.Int
	gasPrice *big.Int
	latest   uint64
	code     []byte
	err      error

	balances map[common.Address]*big.Int
	headers  map[uint64]*types.Header
	handlers map[[4]byte]CallHandler
	receipts map[common.Hash]pendingReceipt
	nonces   map[common.Address]uint64

	sent  []*types.Transaction
	calls int
}

type pendingReceipt struct {
	receipt *types.Receipt
	after   int
}

// NewFakeBackend returns a backend for chainID with a deployed-code stub at
// every address and a 30 gwei gas price.
func NewFakeBackend(chainID int64) *FakeBackend {
	return &FakeBackend{
		chainID:  big.NewInt(chainID),
		gasPrice: big.NewInt(30_000_000_000),
		latest:   100,
		code:     []byte{0x60, 0x80},
		balances: make(map[common.Address]*big.Int),
		headers:  make(map[uint64]*types.Header),
		handlers: make(map[[4]byte]CallHandler),
		receipts: make(map[common.Hash]pendingReceipt),
		nonces:   make(map[common.Address]uint64),
	}
}

// SetError makes every subsequent call fail with err.
func (f *FakeBackend) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// SetBalance sets the wei balance of account.
func (f *FakeBackend) SetBalance(account common.Address, wei *big.Int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances[account] = wei
}

// SetGasPrice sets the suggested gas price.
func (f *FakeBackend) SetGasPrice(wei *big.Int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gasPrice = wei
}

// AddHeader registers a block header under its number.
func (f *FakeBackend) AddHeader(h *types.Header) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.headers[h.Number.Uint64()] = h
}

// OnCall installs a handler for calls to method.
func (f *FakeBackend) OnCall(method abi.Method, handler CallHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var selector [4]byte
	copy(selector[:], method.ID)
	f.handlers[selector] = handler
}

// RespondWith answers calls to method with its outputs packed from values.
func (f *FakeBackend) RespondWith(method abi.Method, values ...any) error {
	data, err := method.Outputs.Pack(values...)
	if err != nil {
		return err
	}
	f.OnCall(method, func(ethereum.CallMsg) ([]byte, error) { return data, nil })
	return nil
}

// RespondRaw answers calls to method with data as is.
func (f *FakeBackend) RespondRaw(method abi.Method, data []byte) {
	f.OnCall(method, func(ethereum.CallMsg) ([]byte, error) { return data, nil })
}

// AddReceipt makes receipt available after the given number of lookups.
func (f *FakeBackend) AddReceipt(hash common.Hash, receipt *types.Receipt, after int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receipts[hash] = pendingReceipt{receipt: receipt, after: after}
}

// Sent returns the transactions submitted so far.
func (f *FakeBackend) Sent() []*types.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*types.Transaction(nil), f.sent...)
}

// CallCount returns the number of backend methods invoked.
func (f *FakeBackend) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeBackend) enter() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

// CodeAt implements bind.ContractCaller.
func (f *FakeBackend) CodeAt(_ context.Context, _ common.Address, _ *big.Int) ([]byte, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	return f.code, nil
}

// CallContract implements bind.ContractCaller.
func (f *FakeBackend) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	if len(call.Data) < 4 {
		return nil, errors.New("execution reverted")
	}
	var selector [4]byte
	copy(selector[:], call.Data[:4])

	f.mu.Lock()
	handler, ok := f.handlers[selector]
	f.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return handler(call)
}

// HeaderByNumber returns a registered header, or a bare latest header for nil.
func (f *FakeBackend) HeaderByNumber(_ context.Context, number *big.Int) (*types.Header, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if number == nil {
		if h, ok := f.headers[f.latest]; ok {
			return h, nil
		}
		return &types.Header{Number: new(big.Int).SetUint64(f.latest)}, nil
	}
	h, ok := f.headers[number.Uint64()]
	if !ok {
		return nil, ethereum.NotFound
	}
	return h, nil
}

// PendingCodeAt implements bind.ContractTransactor.
func (f *FakeBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return f.CodeAt(ctx, account, nil)
}

// PendingNonceAt implements bind.ContractTransactor.
func (f *FakeBackend) PendingNonceAt(_ context.Context, account common.Address) (uint64, error) {
	if err := f.enter(); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nonces[account], nil
}

// SuggestGasPrice implements bind.ContractTransactor.
func (f *FakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return new(big.Int).Set(f.gasPrice), nil
}

// SuggestGasTipCap implements bind.ContractTransactor.
func (f *FakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	return big.NewInt(1_000_000_000), nil
}

// EstimateGas implements bind.ContractTransactor.
func (f *FakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	if err := f.enter(); err != nil {
		return 0, err
	}
	return 150_000, nil
}

// SendTransaction records tx and bumps the sender nonce.
func (f *FakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	if err := f.enter(); err != nil {
		return err
	}
	sender, err := types.Sender(types.LatestSignerForChainID(f.chainID), tx)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	f.nonces[sender] = tx.Nonce() + 1
	return nil
}

// FilterLogs implements bind.ContractFilterer.
func (f *FakeBackend) FilterLogs(context.Context, ethereum.FilterQuery) ([]types.Log, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	return nil, nil
}

// SubscribeFilterLogs implements bind.ContractFilterer.
func (f *FakeBackend) SubscribeFilterLogs(context.Context, ethereum.FilterQuery, chan<- types.Log) (ethereum.Subscription, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	return nil, errors.New("subscriptions are not supported")
}

// BalanceAt returns the configured balance or zero.
func (f *FakeBackend) BalanceAt(_ context.Context, account common.Address, _ *big.Int) (*big.Int, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.balances[account]; ok {
		return new(big.Int).Set(b), nil
	}
	return new(big.Int), nil
}

// ChainID returns the configured chain id.
func (f *FakeBackend) ChainID(context.Context) (*big.Int, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	return new(big.Int).Set(f.chainID), nil
}

// TransactionReceipt returns ethereum.NotFound until the receipt's lookup
// budget is used up.
func (f *FakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	if p.after > 0 {
		p.after--
		f.receipts[hash] = p
		return nil, ethereum.NotFound
	}
	return p.receipt, nil
}
