package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// ZeroAddress is what the wedding contract returns as the author of a
	// marriage that does not exist.
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	// BalanceDecimals is the number of ether decimals kept when a balance is
	// converted for display.
	BalanceDecimals = 6
)

// Chain ids of the supported deployments
const (
	ChainIDPolygon        int64 = 137
	ChainIDPolygonTestnet int64 = 80001
)

// Deployment names
const (
	DeploymentMainnet = "mainnet"
	DeploymentTestnet = "testnet"
)

// Signer names
const (
	SignerAgent  = "agent"
	SignerFaucet = "faucet"
)

// Contract names
const (
	WeddingContractName = "wedding"
	FaucetContractName  = "faucet"
)
