package services_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metawedding/wedding-api/internal/config"
	"github.com/metawedding/wedding-api/internal/constants"
	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/services"
	"github.com/metawedding/wedding-api/internal/testutil"
)

func init() {
	logger.InitLogger("test")
}

const validAddress = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

var invalidAddresses = []string{
	"",
	"0x123",
	"5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed00",
	"0xZZZeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD",
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.RPCURL = "http://localhost:8545"
	cfg.ReceiptPollInterval = time.Millisecond
	cfg.Deployment = config.Deployment{
		Name:            constants.DeploymentTestnet,
		ChainID:         constants.ChainIDPolygonTestnet,
		WeddingContract: "0x1111111111111111111111111111111111111111",
		FaucetContract:  "0x2222222222222222222222222222222222222222",
	}
	return &cfg
}

func ether(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return v
}

func TestFormatEther(t *testing.T) {
	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{name: "zero", wei: big.NewInt(0), want: "0.000000"},
		{name: "one ether", wei: ether("1000000000000000000"), want: "1.000000"},
		{name: "truncates", wei: ether("1234567899999999999"), want: "1.234567"},
		{name: "small", wei: ether("1000000000000"), want: "0.000001"},
		{name: "below precision", wei: ether("999999999999"), want: "0.000000"},
		{name: "nil", wei: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.FormatEther(tt.wei, constants.BalanceDecimals))
		})
	}
}

func TestChainService_GetBalance(t *testing.T) {
	backend := testutil.NewFakeBackend(constants.ChainIDPolygonTestnet)
	backend.SetBalance(common.HexToAddress(validAddress), ether("2500000000000000000"))
	svc := services.NewChainService(backend, testConfig())

	balance, err := svc.GetBalance(context.Background(), validAddress)
	require.NoError(t, err)
	assert.Equal(t, 2.5, balance)
}

func TestChainService_GetBalance_InvalidAddress(t *testing.T) {
	for _, address := range invalidAddresses {
		t.Run(address, func(t *testing.T) {
			backend := testutil.NewFakeBackend(constants.ChainIDPolygonTestnet)
			svc := services.NewChainService(backend, testConfig())

			_, err := svc.GetBalance(context.Background(), address)

			var invalid *services.InvalidAddressError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, address, invalid.Address)
			assert.Zero(t, backend.CallCount())
		})
	}
}

func TestChainService_GetBalance_TransportError(t *testing.T) {
	backend := testutil.NewFakeBackend(constants.ChainIDPolygonTestnet)
	boom := errors.New("dial tcp: connection refused")
	backend.SetError(boom)
	svc := services.NewChainService(backend, testConfig())

	_, err := svc.GetBalance(context.Background(), validAddress)
	assert.Equal(t, boom, err)
	assert.False(t, errors.Is(err, services.ErrBalanceParse))
}

func TestChainService_GetBlockHash(t *testing.T) {
	backend := testutil.NewFakeBackend(constants.ChainIDPolygonTestnet)
	header := &types.Header{Number: big.NewInt(42), GasLimit: 30_000_000, Time: 1_650_000_000}
	backend.AddHeader(header)
	svc := services.NewChainService(backend, testConfig())

	hash, err := svc.GetBlockHash(context.Background(), big.NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, header.Hash().Hex(), hash)
	assert.Len(t, hash, 66)

	_, err = svc.GetBlockHash(context.Background(), big.NewInt(43))
	assert.Error(t, err)

	calls := backend.CallCount()
	_, err = svc.GetBlockHash(context.Background(), big.NewInt(-1))
	assert.ErrorIs(t, err, services.ErrInvalidBlockNumber)
	_, err = svc.GetBlockHash(context.Background(), nil)
	assert.ErrorIs(t, err, services.ErrInvalidBlockNumber)
	assert.Equal(t, calls, backend.CallCount())
}

func TestChainService_GetGasPrice(t *testing.T) {
	backend := testutil.NewFakeBackend(constants.ChainIDPolygonTestnet)
	backend.SetGasPrice(big.NewInt(42_000_000_000))
	svc := services.NewChainService(backend, testConfig())

	price, err := svc.GetGasPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42_000_000_000), price.Int64())
}

func TestChainService_VerifyChain(t *testing.T) {
	cfg := testConfig()

	svc := services.NewChainService(testutil.NewFakeBackend(constants.ChainIDPolygonTestnet), cfg)
	assert.NoError(t, svc.VerifyChain(context.Background()))

	svc = services.NewChainService(testutil.NewFakeBackend(constants.ChainIDPolygon), cfg)
	err := svc.VerifyChain(context.Background())
	var wrong *services.WrongChainError
	require.ErrorAs(t, err, &wrong)
	assert.Equal(t, constants.ChainIDPolygonTestnet, wrong.Expected)
	assert.Equal(t, constants.ChainIDPolygon, wrong.Actual)
}

func TestChainService_WaitForReceipt(t *testing.T) {
	backend := testutil.NewFakeBackend(constants.ChainIDPolygonTestnet)
	hash := common.HexToHash("0xabc")
	backend.AddReceipt(hash, &types.Receipt{TxHash: hash, Status: types.ReceiptStatusSuccessful}, 2)
	svc := services.NewChainService(backend, testConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	receipt, err := svc.WaitForReceipt(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, hash, receipt.TxHash)
	assert.Equal(t, 3, backend.CallCount())
}

func TestChainService_WaitForReceipt_ContextDone(t *testing.T) {
	backend := testutil.NewFakeBackend(constants.ChainIDPolygonTestnet)
	svc := services.NewChainService(backend, testConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.WaitForReceipt(ctx, common.HexToHash("0xdead"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChainService_WaitForReceipt_NonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		t.Run(interval.String(), func(t *testing.T) {
			backend := testutil.NewFakeBackend(constants.ChainIDPolygonTestnet)
			cfg := testConfig()
			cfg.ReceiptPollInterval = interval
			svc := services.NewChainService(backend, cfg)

			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			_, err := svc.WaitForReceipt(ctx, common.HexToHash("0xdead"))
			assert.ErrorIs(t, err, context.DeadlineExceeded)
			assert.LessOrEqual(t, backend.CallCount(), 2, "polling must fall back to the default interval")
		})
	}
}

func TestChainService_WaitForReceipt_PermanentError(t *testing.T) {
	backend := testutil.NewFakeBackend(constants.ChainIDPolygonTestnet)
	backend.SetError(errors.New("unauthorized"))
	svc := services.NewChainService(backend, testConfig())

	_, err := svc.WaitForReceipt(context.Background(), common.HexToHash("0xdead"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
	assert.Equal(t, 1, backend.CallCount())
}
