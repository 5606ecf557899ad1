package checksum_test

import (
	"errors"
	"strings"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/lazyhash/tokenpick/checksum"
)

// Canonical EIP-55 test vectors plus a few well-known mainnet addresses.
var knownVectors = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	// vitalik.eth
	"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
	// USDC on mainnet
	"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	"0x0000000000000000000000000000000000000000",
	"0x0000000000000000000000000000000000000001",
}

func TestEncodeKnownVectors(t *testing.T) {
	for _, want := range knownVectors {
		got, err := checksum.Encode(strings.ToLower(want))
		if err != nil {
			t.Fatalf("Encode(%q): %s", want, err)
		}
		if got != want {
			t.Errorf("Encode(%q):\n  want %s\n   got %s", strings.ToLower(want), want, got)
		}
	}
}

func TestEncodeCaseInsensitiveInput(t *testing.T) {
	for _, want := range knownVectors {
		inputs := []string{
			strings.ToLower(want),
			"0x" + strings.ToUpper(want[2:]),
			want,     // already checksummed
			want[2:], // checksummed, no prefix
		}
		for _, in := range inputs {
			got, err := checksum.Encode(in)
			if err != nil {
				t.Fatalf("Encode(%q): %s", in, err)
			}
			if got != want {
				t.Errorf("Encode(%q): want %s, got %s", in, want, got)
			}
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	addr := "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
	first, err := checksum.Encode(addr)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := checksum.Encode(addr)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("Encode is not deterministic: %s vs %s", first, again)
		}
	}
}

// Encode must agree with go-ethereum's own EIP-55 rendering for every
// valid address, otherwise addresses we hand out would be rejected by
// the rest of the ecosystem.
func TestEncodeMatchesGoEthereum(t *testing.T) {
	addrs := append([]string{}, knownVectors...)
	addrs = append(addrs,
		"0xffffffffffffffffffffffffffffffffffffffff",
		"0x52908400098527886e0f7030069857d2e4169ee7",
		"0xde709f2102306220921060314715629080e2fb77",
		"0x27b1fdb04752bbc536007a920d24acb045561c26",
	)
	for _, a := range addrs {
		want := ethcommon.HexToAddress(a).Hex()
		got, err := checksum.Encode(a)
		if err != nil {
			t.Fatalf("Encode(%q): %s", a, err)
		}
		if got != want {
			t.Errorf("Encode(%q) diverges from go-ethereum: want %s, got %s", a, want, got)
		}
	}
}

func TestEncodeInvalidInput(t *testing.T) {
	bad := []string{
		"",
		"0x",
		"0x123",
		"0xd8da6bf26964af9d7eed9e03e53415d37aa9604",   // 39 hex chars
		"0xd8da6bf26964af9d7eed9e03e53415d37aa960455", // 41 hex chars
		"0xg8da6bf26964af9d7eed9e03e53415d37aa96045",  // non-hex character
		"d8da6bf26964af9d7eed9e03e53415d37aa9604z",    // non-hex, no prefix
		"0x d8da6bf26964af9d7eed9e03e53415d37aa9604",  // embedded space
	}
	for _, in := range bad {
		got, err := checksum.Encode(in)
		if err == nil {
			t.Errorf("Encode(%q): expected error, got %q", in, got)
			continue
		}
		if !errors.Is(err, checksum.ErrInvalidAddress) {
			t.Errorf("Encode(%q): error %v is not ErrInvalidAddress", in, err)
		}
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", true},
		{"0xd8da6bf26964af9d7eed9e03e53415d37aa96045", true}, // all lower: no checksum info
		{"0xD8DA6BF26964AF9D7EED9E03E53415D37AA96045", true}, // all upper: no checksum info
		{"0xd8Da6BF26964aF9D7eEd9e03E53415D37aA96045", false}, // one flipped letter
		{"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", true},
		{"0xa0b86991C6218b36c1d19D4a2e9Eb0cE3606eB48", false},
		{"0x123", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := checksum.Verify(tt.in); got != tt.want {
			t.Errorf("Verify(%q): want %v, got %v", tt.in, tt.want, got)
		}
	}
}
