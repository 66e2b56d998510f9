package ethereum

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactURL(t *testing.T) {
	tests := map[string]string{
		"https://polygon-mumbai.g.alchemy.com/v2/secret": "https://polygon-mumbai.g.alchemy.com",
		"http://localhost:8545":                          "http://localhost:8545",
		"https://rpc.example?key=secret":                 "https://rpc.example",
		"not a url":                                      "not a url",
	}
	for in, want := range tests {
		assert.Equal(t, want, redactURL(in), in)
	}
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(context.Background(), ClientConfig{})
	require.Error(t, err)
}

func TestNewClient_HTTPDialIsLazy(t *testing.T) {
	client, err := NewClient(context.Background(), ClientConfig{RPCURL: "http://127.0.0.1:1"})
	require.NoError(t, err)
	client.Close()
}
