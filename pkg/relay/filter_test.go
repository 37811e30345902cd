package relay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPubkey = "ee11a5dff40c19a555f41fe42b48f00e618c91225622ae37b6c2bb67b76c4e49"

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

func eligibleRelay() *Relay {
	return &Relay{
		URL:             "wss://relay.example.com/",
		SuccessCount:    10,
		FailureCount:    2,
		LastConnectedAt: int64Ptr(1700000000),
		NIP11: &InfoDocument{
			Name:   "example",
			Pubkey: strPtr(testPubkey),
		},
	}
}

func TestEligiblePasses(t *testing.T) {
	c, ok := Eligible(eligibleRelay())
	require.True(t, ok)
	require.NotNil(t, c)
	assert.Equal(t, testPubkey, c.Identity.Hex)
	assert.True(t, c.Identity.Full())
}

func TestEligibleRejections(t *testing.T) {
	tests := map[string]func(r *Relay){
		"no successes": func(r *Relay) {
			r.SuccessCount = 0
		},
		"sub-path url": func(r *Relay) {
			r.URL = "wss://relay.example.com/foo"
		},
		"no nip11": func(r *Relay) {
			r.NIP11 = nil
		},
		"no pubkey": func(r *Relay) {
			r.NIP11.Pubkey = nil
		},
		"pubkey too long": func(r *Relay) {
			r.NIP11.Pubkey = strPtr(testPubkey + "00")
		},
		"pubkey odd length": func(r *Relay) {
			r.NIP11.Pubkey = strPtr(testPubkey[:63])
		},
		"pubkey not hex": func(r *Relay) {
			r.NIP11.Pubkey = strPtr(strings.Replace(testPubkey, "e", "z", 1))
		},
		"payments url": func(r *Relay) {
			r.NIP11.PaymentsURL = strPtr("https://relay.example.com/pay")
		},
		"fees": func(r *Relay) {
			r.NIP11.Fees = &Fees{}
		},
		"excluded operator": func(r *Relay) {
			r.URL = "wss://nostr.mikedilger.com/"
		},
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			r := eligibleRelay()
			mutate(r)
			_, ok := Eligible(r)
			assert.False(t, ok)
		})
	}
}

func TestEligibleAcceptsPubkeyPrefix(t *testing.T) {
	r := eligibleRelay()
	r.NIP11.Pubkey = strPtr(testPubkey[:16])

	c, ok := Eligible(r)
	require.True(t, ok)
	assert.False(t, c.Identity.Full())
	assert.Len(t, c.Identity.Bytes, 8)
}

func TestEligibleBareAuthorityIsRootPath(t *testing.T) {
	r := eligibleRelay()
	r.URL = "wss://relay.example.com"

	_, ok := Eligible(r)
	assert.True(t, ok)
}
