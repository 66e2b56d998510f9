package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metawedding/wedding-api/internal/constants"
)

const (
	testWedding = "0x1111111111111111111111111111111111111111"
	testFaucet  = "0x2222222222222222222222222222222222222222"
	testAccount = "0x3333333333333333333333333333333333333333"
	testKey     = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
)

type fakeSecrets struct {
	values map[string]string
	err    error
}

func (f fakeSecrets) GetSecretString(_ context.Context, arnEnv, plainEnv string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if v, ok := f.values[plainEnv]; ok {
		return v, nil
	}
	return "", errors.New("secret not found")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvStage, "dev")
	t.Setenv(EnvRPCURL, "http://localhost:8545")
	t.Setenv(EnvWeddingContract, testWedding)
	t.Setenv(EnvFaucetContract, testFaucet)
}

func TestLoad_EnvOnly(t *testing.T) {
	setBaseEnv(t)
	t.Setenv(EnvAgentKey, testKey)
	t.Setenv(EnvDispatchWorkers, "8")
	t.Setenv(EnvDispatchTimeout, "250ms")
	t.Setenv(EnvAPIKeys, " key-one, key-two,,")

	cfg, err := Load(context.Background(), nil)
	require.NoError(t, err)

	assert.True(t, cfg.Testing)
	assert.Equal(t, constants.DeploymentTestnet, cfg.Deployment.Name)
	assert.Equal(t, constants.ChainIDPolygonTestnet, cfg.Deployment.ChainID)
	assert.Equal(t, testWedding, cfg.Deployment.WeddingContract)
	assert.Equal(t, testKey, cfg.AgentKey)
	assert.Empty(t, cfg.FaucetKey)
	assert.Equal(t, 8, cfg.Dispatch.Workers)
	assert.Equal(t, 250*time.Millisecond, cfg.Dispatch.SubmitTimeout)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, DefaultIPFSGateway, cfg.IPFSGatewayURL)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.APIKeys)
}

func TestLoad_YAMLDeployments(t *testing.T) {
	path := writeConfig(t, `
rpcUrl: https://polygon-rpc.example
deployments:
  mainnet:
    weddingContract: "`+testWedding+`"
    faucetContract: "`+testFaucet+`"
    faucetAccount: "`+testAccount+`"
dispatch:
  workers: 2
  queueSize: 10
  submitTimeout: 1s
faucet:
  ratePerSecond: 0.5
  burst: 3
ipfsGateway: https://gateway.pinata.example
`)
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvStage, "prod")

	cfg, err := Load(context.Background(), fakeSecrets{values: map[string]string{
		EnvAgentKey:  testKey,
		EnvFaucetKey: testKey,
	}})
	require.NoError(t, err)

	assert.False(t, cfg.Testing)
	assert.Equal(t, constants.DeploymentMainnet, cfg.Deployment.Name)
	assert.Equal(t, constants.ChainIDPolygon, cfg.Deployment.ChainID)
	assert.Equal(t, testAccount, cfg.Deployment.FaucetAccount)
	assert.Equal(t, "https://polygon-rpc.example", cfg.RPCURL)
	assert.Equal(t, 2, cfg.Dispatch.Workers)
	assert.Equal(t, 10, cfg.Dispatch.QueueSize)
	assert.Equal(t, time.Second, cfg.Dispatch.SubmitTimeout)
	assert.Equal(t, 0.5, cfg.Faucet.RatePerSecond)
	assert.Equal(t, 3, cfg.Faucet.Burst)
	assert.Equal(t, testKey, cfg.AgentKey)
	assert.Equal(t, testKey, cfg.FaucetKey)
	assert.Equal(t, "https://gateway.pinata.example", cfg.IPFSGatewayURL)
	assert.Empty(t, cfg.APIKeys)
}

func TestLoad_TestingOverridesStage(t *testing.T) {
	setBaseEnv(t)
	t.Setenv(EnvStage, "prod")
	t.Setenv(EnvTesting, "true")

	cfg, err := Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, constants.DeploymentTestnet, cfg.Deployment.Name)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		secrets SecretSource
		wantErr string
	}{
		{
			name:    "invalid stage",
			env:     map[string]string{EnvStage: "staging"},
			wantErr: "invalid STAGE",
		},
		{
			name:    "invalid testing flag",
			env:     map[string]string{EnvTesting: "maybe"},
			wantErr: "invalid TESTING",
		},
		{
			name:    "missing config file",
			env:     map[string]string{EnvConfigPath: "/does/not/exist.yaml"},
			wantErr: "failed to read config file",
		},
		{
			name:    "bad worker count",
			env:     map[string]string{EnvDispatchWorkers: "many"},
			wantErr: "invalid DISPATCH_WORKERS",
		},
		{
			name:    "bad agent key",
			env:     map[string]string{EnvAgentKey: "0x1234"},
			wantErr: "invalid agent private key",
		},
		{
			name:    "arn set but secret unavailable",
			env:     map[string]string{EnvAgentKeyARN: "arn:aws:secretsmanager:x"},
			secrets: fakeSecrets{err: errors.New("AccessDenied")},
			wantErr: "failed to resolve AGENT_PRIVATE_KEY",
		},
		{
			name:    "checksum mismatch",
			env:     map[string]string{EnvWeddingContract: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD"},
			wantErr: "invalid wedding contract address",
		},
		{
			name:    "zero receipt poll interval",
			env:     map[string]string{EnvReceiptPollInterval: "0s"},
			wantErr: "receipt poll interval must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(context.Background(), tt.secrets)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Default()
	valid.RPCURL = "http://localhost:8545"
	valid.Deployment = Deployment{
		Name:            constants.DeploymentTestnet,
		ChainID:         constants.ChainIDPolygonTestnet,
		WeddingContract: testWedding,
		FaucetContract:  testFaucet,
	}
	require.NoError(t, valid.Validate())

	noRPC := valid
	noRPC.RPCURL = ""
	assert.Error(t, noRPC.Validate())

	noWedding := valid
	noWedding.Deployment.WeddingContract = ""
	assert.Error(t, noWedding.Validate())

	noWorkers := valid
	noWorkers.Dispatch.Workers = 0
	assert.Error(t, noWorkers.Validate())

	badAgent := valid
	badAgent.AgentAddress = "0x123"
	assert.Error(t, badAgent.Validate())

	noPoll := valid
	noPoll.ReceiptPollInterval = -time.Second
	assert.ErrorContains(t, noPoll.Validate(), "receipt poll interval")
}
