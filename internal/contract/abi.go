package contract

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ABI resource file names.
const (
	WeddingABIFile = "wedding_abi.json"
	FaucetABIFile  = "faucet_abi.json"
)

//go:embed abi/*.json
var bundled embed.FS

// ABIs holds the parsed interfaces of both contracts.
type ABIs struct {
	Wedding abi.ABI
	Faucet  abi.ABI
}

// LoadABIs parses the wedding and faucet ABIs. When dir is empty the copies
// bundled into the binary are used.
func LoadABIs(dir string) (ABIs, error) {
	var source fs.FS
	if dir == "" {
		sub, err := fs.Sub(bundled, "abi")
		if err != nil {
			return ABIs{}, err
		}
		source = sub
	} else {
		source = os.DirFS(dir)
	}

	wedding, err := readABI(source, WeddingABIFile)
	if err != nil {
		return ABIs{}, err
	}
	faucet, err := readABI(source, FaucetABIFile)
	if err != nil {
		return ABIs{}, err
	}
	return ABIs{Wedding: wedding, Faucet: faucet}, nil
}

func readABI(source fs.FS, name string) (abi.ABI, error) {
	data, err := fs.ReadFile(source, name)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("%w: %s: %v", ErrABINotFound, name, err)
	}
	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return parsed, nil
}
