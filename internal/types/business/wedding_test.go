package business

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIPFSURL(t *testing.T) {
	sum, err := multihash.Sum([]byte("wedding meta"), multihash.SHA2_256, -1)
	require.NoError(t, err)
	want := cid.NewCidV1(cid.Raw, sum)

	tests := []struct {
		name   string
		url    string
		wantOK bool
	}{
		{name: "bare cid", url: "ipfs://" + want.String(), wantOK: true},
		{name: "cid with path", url: "ipfs://" + want.String() + "/meta.json", wantOK: true},
		{name: "https url", url: "https://example.com/meta.json", wantOK: false},
		{name: "garbage cid", url: "ipfs://x", wantOK: false},
		{name: "empty", url: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIPFSURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, want.Equals(got))
			}
		})
	}

	p := Proposal{MetaURL: "ipfs://" + want.String()}
	got, ok := p.MetaCID()
	require.True(t, ok)
	assert.True(t, want.Equals(got))
}

func TestMarriage_IsEmpty(t *testing.T) {
	assert.True(t, Marriage{}.IsEmpty())
	assert.True(t, Marriage{MetaURL: "ipfs://x", TokenID: big.NewInt(3)}.IsEmpty())
	assert.False(t, Marriage{AuthorAddress: common.HexToAddress("0x01")}.IsEmpty())
}

func TestDivorceState_Text(t *testing.T) {
	for _, state := range []DivorceState{DivorceNotRequested, DivorceRequestedByAuthor, DivorceRequestedByReceiver} {
		text, err := state.MarshalText()
		require.NoError(t, err)

		var back DivorceState
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, state, back)
	}

	_, err := DivorceState(7).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "unknown(7)", DivorceState(7).String())

	var s DivorceState
	assert.Error(t, s.UnmarshalText([]byte("divorced")))
}

func TestMarriage_JSON(t *testing.T) {
	m := Marriage{
		AuthorAddress:   common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"),
		ReceiverAddress: common.HexToAddress("0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"),
		DivorceState:    DivorceRequestedByReceiver,
		TokenID:         big.NewInt(42),
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"divorce_state":"requested_by_receiver"`)
	assert.Contains(t, string(data), `"author_address":"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"`)
	assert.Contains(t, string(data), `"token_id":42`)
}
