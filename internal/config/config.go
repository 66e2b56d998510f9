package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/metawedding/wedding-api/internal/constants"
	"github.com/metawedding/wedding-api/internal/helpers"
	"github.com/metawedding/wedding-api/internal/logger"
)

// Environment variable names read by Load.
const (
	EnvStage               = "STAGE"
	EnvTesting             = "TESTING"
	EnvConfigPath          = "CONFIG_PATH"
	EnvRPCURL              = "RPC_URL"
	EnvWeddingContract     = "WEDDING_CONTRACT_ADDRESS"
	EnvFaucetContract      = "FAUCET_CONTRACT_ADDRESS"
	EnvFaucetAccount       = "FAUCET_ACCOUNT_ADDRESS"
	EnvAgentAddress        = "AGENT_ADDRESS"
	EnvAgentKey            = "AGENT_PRIVATE_KEY"
	EnvAgentKeyARN         = "AGENT_PRIVATE_KEY_ARN"
	EnvFaucetKey           = "FAUCET_PRIVATE_KEY"
	EnvFaucetKeyARN        = "FAUCET_PRIVATE_KEY_ARN"
	EnvABIDir              = "ABI_DIR"
	EnvDispatchWorkers     = "DISPATCH_WORKERS"
	EnvDispatchQueueSize   = "DISPATCH_QUEUE_SIZE"
	EnvDispatchTimeout     = "DISPATCH_SUBMIT_TIMEOUT"
	EnvFaucetRate          = "FAUCET_RATE_PER_SECOND"
	EnvFaucetBurst         = "FAUCET_BURST"
	EnvReceiptPollInterval = "RECEIPT_POLL_INTERVAL"
	EnvPort                = "PORT"
	EnvIPFSGateway         = "IPFS_GATEWAY_URL"
	EnvAPIKeys             = "API_KEYS"
	EnvAPIKeysARN          = "API_KEYS_ARN"
)

const (
	// DefaultIPFSGateway serves metadata when no gateway is configured.
	DefaultIPFSGateway = "https://ipfs.io"
	// DefaultReceiptPollInterval is the first delay between receipt lookups.
	DefaultReceiptPollInterval = 2 * time.Second
)

var defaultConfigCandidates = []string{
	"configs/config.yaml",
	"../configs/config.yaml",
}

// Deployment describes one on-chain installation of the wedding contracts.
type Deployment struct {
	Name            string `yaml:"name"`
	ChainID         int64  `yaml:"chainId"`
	WeddingContract string `yaml:"weddingContract"`
	FaucetContract  string `yaml:"faucetContract"`
	FaucetAccount   string `yaml:"faucetAccount"`
}

// DispatchConfig sizes the background worker pool.
type DispatchConfig struct {
	Workers       int           `yaml:"workers"`
	QueueSize     int           `yaml:"queueSize"`
	SubmitTimeout time.Duration `yaml:"submitTimeout"`
}

// FaucetConfig limits how often a single recipient can be funded.
type FaucetConfig struct {
	RatePerSecond float64 `yaml:"ratePerSecond"`
	Burst         int     `yaml:"burst"`
}

// Config is passed explicitly to every constructor that needs it.
type Config struct {
	Stage   string
	Testing bool
	RPCURL  string

	Deployment Deployment

	AgentAddress string
	AgentKey     string
	FaucetKey    string

	ABIDir string

	Dispatch            DispatchConfig
	Faucet              FaucetConfig
	ReceiptPollInterval time.Duration
	Port                string
	IPFSGatewayURL      string
	// APIKeys guard the agent and faucet routes. Empty leaves them open.
	APIKeys []string
}

// SecretSource resolves a secret from an ARN variable with a plain variable fallback.
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

type fileConfig struct {
	RPCURL              string                `yaml:"rpcUrl"`
	AgentAddress        string                `yaml:"agentAddress"`
	ABIDir              string                `yaml:"abiDir"`
	Deployments         map[string]Deployment `yaml:"deployments"`
	Dispatch            DispatchConfig        `yaml:"dispatch"`
	Faucet              FaucetConfig          `yaml:"faucet"`
	ReceiptPollInterval time.Duration         `yaml:"receiptPollInterval"`
	Port                string                `yaml:"port"`
	IPFSGateway         string                `yaml:"ipfsGateway"`
}

// DefaultDeployments returns the known deployments keyed by name. Contract
// addresses are filled in from the config file or environment.
func DefaultDeployments() map[string]Deployment {
	return map[string]Deployment{
		constants.DeploymentMainnet: {Name: constants.DeploymentMainnet, ChainID: constants.ChainIDPolygon},
		constants.DeploymentTestnet: {Name: constants.DeploymentTestnet, ChainID: constants.ChainIDPolygonTestnet},
	}
}

// Default returns a configuration with every tunable set.
func Default() Config {
	return Config{
		Stage: helpers.StageLocal,
		Dispatch: DispatchConfig{
			Workers:       4,
			QueueSize:     64,
			SubmitTimeout: 5 * time.Second,
		},
		Faucet: FaucetConfig{
			RatePerSecond: 1.0 / 60,
			Burst:         1,
		},
		ReceiptPollInterval: DefaultReceiptPollInterval,
		Port:                "8000",
		IPFSGatewayURL:      DefaultIPFSGateway,
	}
}

// Load builds the configuration from .env, the optional YAML file, the
// environment and finally the secret source. A nil secrets falls back to
// reading keys straight from the environment.
func Load(ctx context.Context, secrets SecretSource) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("No .env file loaded", zap.Error(err))
	}

	cfg := Default()
	if stage := strings.TrimSpace(os.Getenv(EnvStage)); stage != "" {
		cfg.Stage = stage
	}
	if !helpers.IsValidStage(cfg.Stage) {
		return nil, errors.Errorf("invalid STAGE %q", cfg.Stage)
	}

	cfg.Testing = helpers.IsTestnetStage(cfg.Stage)
	if raw := strings.TrimSpace(os.Getenv(EnvTesting)); raw != "" {
		testing, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s", EnvTesting)
		}
		cfg.Testing = testing
	}

	deployments := DefaultDeployments()
	file, path, err := readFile(os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, err
	}
	if file != nil {
		logger.Log.Info("Loaded config file", zap.String("path", path))
		merge(&cfg, deployments, file)
	}

	cfg.Deployment = deployments[cfg.DeploymentName()]
	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.loadSecrets(ctx, secrets); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DeploymentName returns the deployment selected by the testing flag.
func (c Config) DeploymentName() string {
	if c.Testing {
		return constants.DeploymentTestnet
	}
	return constants.DeploymentMainnet
}

// Validate checks stage, endpoint, addresses, keys and tuning values.
func (c Config) Validate() error {
	if !helpers.IsValidStage(c.Stage) {
		return errors.Errorf("invalid stage %q", c.Stage)
	}
	if c.RPCURL == "" {
		return errors.Errorf("%s is required", EnvRPCURL)
	}
	if c.Deployment.ChainID <= 0 {
		return errors.Errorf("deployment %q has no chain id", c.Deployment.Name)
	}

	addresses := []struct {
		name     string
		value    string
		required bool
	}{
		{name: "wedding contract", value: c.Deployment.WeddingContract, required: true},
		{name: "faucet contract", value: c.Deployment.FaucetContract, required: true},
		{name: "faucet account", value: c.Deployment.FaucetAccount},
		{name: "agent address", value: c.AgentAddress},
	}
	for _, a := range addresses {
		if a.value == "" {
			if a.required {
				return errors.Errorf("%s address is required for deployment %q", a.name, c.Deployment.Name)
			}
			continue
		}
		if !helpers.IsAddressValid(a.value) {
			return errors.Errorf("invalid %s address %q", a.name, a.value)
		}
	}

	if c.AgentKey != "" && !helpers.IsPrivateKeyValid(c.AgentKey) {
		return errors.New("invalid agent private key")
	}
	if c.FaucetKey != "" && !helpers.IsPrivateKeyValid(c.FaucetKey) {
		return errors.New("invalid faucet private key")
	}

	if c.Dispatch.Workers <= 0 || c.Dispatch.QueueSize <= 0 {
		return errors.Errorf("dispatch workers and queue size must be positive, got %d/%d", c.Dispatch.Workers, c.Dispatch.QueueSize)
	}
	if c.Faucet.RatePerSecond <= 0 || c.Faucet.Burst <= 0 {
		return errors.New("faucet rate and burst must be positive")
	}
	if c.ReceiptPollInterval <= 0 {
		return errors.Errorf("receipt poll interval must be positive, got %s", c.ReceiptPollInterval)
	}
	return nil
}

func readFile(explicit string) (*fileConfig, string, error) {
	candidates := defaultConfigCandidates
	if explicit != "" {
		candidates = []string{explicit}
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if explicit != "" {
				return nil, "", errors.Wrapf(err, "failed to read config file %s", path)
			}
			continue
		}

		var parsed fileConfig
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, "", errors.Wrapf(err, "failed to parse config file %s", path)
		}
		return &parsed, path, nil
	}
	return nil, "", nil
}

func merge(cfg *Config, deployments map[string]Deployment, src *fileConfig) {
	if src.RPCURL != "" {
		cfg.RPCURL = src.RPCURL
	}
	if src.AgentAddress != "" {
		cfg.AgentAddress = src.AgentAddress
	}
	if src.ABIDir != "" {
		cfg.ABIDir = src.ABIDir
	}
	for name, d := range src.Deployments {
		dst := deployments[name]
		dst.Name = name
		if d.ChainID != 0 {
			dst.ChainID = d.ChainID
		}
		if d.WeddingContract != "" {
			dst.WeddingContract = d.WeddingContract
		}
		if d.FaucetContract != "" {
			dst.FaucetContract = d.FaucetContract
		}
		if d.FaucetAccount != "" {
			dst.FaucetAccount = d.FaucetAccount
		}
		deployments[name] = dst
	}
	if src.Dispatch.Workers != 0 {
		cfg.Dispatch.Workers = src.Dispatch.Workers
	}
	if src.Dispatch.QueueSize != 0 {
		cfg.Dispatch.QueueSize = src.Dispatch.QueueSize
	}
	if src.Dispatch.SubmitTimeout != 0 {
		cfg.Dispatch.SubmitTimeout = src.Dispatch.SubmitTimeout
	}
	if src.Faucet.RatePerSecond != 0 {
		cfg.Faucet.RatePerSecond = src.Faucet.RatePerSecond
	}
	if src.Faucet.Burst != 0 {
		cfg.Faucet.Burst = src.Faucet.Burst
	}
	if src.ReceiptPollInterval != 0 {
		cfg.ReceiptPollInterval = src.ReceiptPollInterval
	}
	if src.Port != "" {
		cfg.Port = src.Port
	}
	if src.IPFSGateway != "" {
		cfg.IPFSGatewayURL = src.IPFSGateway
	}
}

func applyEnvOverrides(cfg *Config) error {
	stringVars := []struct {
		key string
		dst *string
	}{
		{EnvRPCURL, &cfg.RPCURL},
		{EnvWeddingContract, &cfg.Deployment.WeddingContract},
		{EnvFaucetContract, &cfg.Deployment.FaucetContract},
		{EnvFaucetAccount, &cfg.Deployment.FaucetAccount},
		{EnvAgentAddress, &cfg.AgentAddress},
		{EnvABIDir, &cfg.ABIDir},
		{EnvPort, &cfg.Port},
		{EnvIPFSGateway, &cfg.IPFSGatewayURL},
	}
	for _, v := range stringVars {
		if value := strings.TrimSpace(os.Getenv(v.key)); value != "" {
			*v.dst = value
		}
	}

	intVars := []struct {
		key string
		dst *int
	}{
		{EnvDispatchWorkers, &cfg.Dispatch.Workers},
		{EnvDispatchQueueSize, &cfg.Dispatch.QueueSize},
		{EnvFaucetBurst, &cfg.Faucet.Burst},
	}
	for _, v := range intVars {
		raw := strings.TrimSpace(os.Getenv(v.key))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", v.key)
		}
		*v.dst = n
	}

	durationVars := []struct {
		key string
		dst *time.Duration
	}{
		{EnvDispatchTimeout, &cfg.Dispatch.SubmitTimeout},
		{EnvReceiptPollInterval, &cfg.ReceiptPollInterval},
	}
	for _, v := range durationVars {
		raw := strings.TrimSpace(os.Getenv(v.key))
		if raw == "" {
			continue
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", v.key)
		}
		*v.dst = d
	}

	if raw := strings.TrimSpace(os.Getenv(EnvFaucetRate)); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvFaucetRate)
		}
		cfg.Faucet.RatePerSecond = rate
	}
	return nil
}

// loadSecrets resolves the agent and faucet keys. Missing keys are not an
// error here: a service without a key is read-only for that signer.
func (c *Config) loadSecrets(ctx context.Context, secrets SecretSource) error {
	var apiKeys string
	keys := []struct {
		arnEnv   string
		plainEnv string
		dst      *string
	}{
		{EnvAgentKeyARN, EnvAgentKey, &c.AgentKey},
		{EnvFaucetKeyARN, EnvFaucetKey, &c.FaucetKey},
		{EnvAPIKeysARN, EnvAPIKeys, &apiKeys},
	}

	for _, k := range keys {
		if secrets == nil {
			*k.dst = strings.TrimSpace(os.Getenv(k.plainEnv))
			continue
		}
		value, err := secrets.GetSecretString(ctx, k.arnEnv, k.plainEnv)
		if err != nil {
			if os.Getenv(k.arnEnv) != "" {
				return errors.Wrapf(err, "failed to resolve %s", k.plainEnv)
			}
			logger.Log.Warn("Secret not configured", zap.String("envVar", k.plainEnv))
			continue
		}
		*k.dst = strings.TrimSpace(value)
	}

	c.APIKeys = splitList(apiKeys)
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
