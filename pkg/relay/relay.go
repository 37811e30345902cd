package relay

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Relay is one record of the input feed: locally tracked connection
// statistics for a single relay, plus the last NIP-11 information
// document fetched from it. Fields the ranking never consults are still
// decoded so the full exchange format round-trips.
type Relay struct {
	URL               string        `json:"url" yaml:"url"`
	SuccessCount      uint64        `json:"success_count" yaml:"successCount"`
	FailureCount      uint64        `json:"failure_count" yaml:"failureCount"`
	LastConnectedAt   *int64        `json:"last_connected_at" yaml:"lastConnectedAt"`
	LastGeneralEOSEAt *int64        `json:"last_general_eose_at" yaml:"lastGeneralEoseAt"`
	Rank              uint64        `json:"rank" yaml:"rank"`
	Hidden            bool          `json:"hidden" yaml:"hidden"`
	UsageBits         uint64        `json:"usage_bits" yaml:"usageBits"`
	NIP11             *InfoDocument `json:"nip11" yaml:"nip11"`
	LastAttemptNIP11  *int64        `json:"last_attempt_nip11" yaml:"lastAttemptNip11"`
}

// InfoDocument is a relay's self-published NIP-11 information document.
// Eligibility only looks at Pubkey, PaymentsURL, and Fees; the
// descriptive fields ride along.
type InfoDocument struct {
	Name          string      `json:"name,omitempty" yaml:"name,omitempty"`
	Description   string      `json:"description,omitempty" yaml:"description,omitempty"`
	Pubkey        *string     `json:"pubkey,omitempty" yaml:"pubkey,omitempty"`
	Contact       string      `json:"contact,omitempty" yaml:"contact,omitempty"`
	SupportedNIPs []int       `json:"supported_nips,omitempty" yaml:"supportedNips,omitempty"`
	Software      string      `json:"software,omitempty" yaml:"software,omitempty"`
	Version       string      `json:"version,omitempty" yaml:"version,omitempty"`
	Limitation    *Limitation `json:"limitation,omitempty" yaml:"limitation,omitempty"`
	PaymentsURL   *string     `json:"payments_url,omitempty" yaml:"paymentsUrl,omitempty"`
	Fees          *Fees       `json:"fees,omitempty" yaml:"fees,omitempty"`
	Icon          string      `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Limitation is the NIP-11 server limitation block.
type Limitation struct {
	MaxMessageLength int  `json:"max_message_length,omitempty" yaml:"maxMessageLength,omitempty"`
	MaxSubscriptions int  `json:"max_subscriptions,omitempty" yaml:"maxSubscriptions,omitempty"`
	MaxFilters       int  `json:"max_filters,omitempty" yaml:"maxFilters,omitempty"`
	MaxLimit         int  `json:"max_limit,omitempty" yaml:"maxLimit,omitempty"`
	MaxSubidLength   int  `json:"max_subid_length,omitempty" yaml:"maxSubidLength,omitempty"`
	MaxEventTags     int  `json:"max_event_tags,omitempty" yaml:"maxEventTags,omitempty"`
	MaxContentLength int  `json:"max_content_length,omitempty" yaml:"maxContentLength,omitempty"`
	MinPowDifficulty int  `json:"min_pow_difficulty,omitempty" yaml:"minPowDifficulty,omitempty"`
	AuthRequired     bool `json:"auth_required" yaml:"authRequired"`
	PaymentRequired  bool `json:"payment_required" yaml:"paymentRequired"`
	RestrictedWrites bool `json:"restricted_writes" yaml:"restrictedWrites"`
}

// Fees is the NIP-11 fee schedule block. Its presence alone marks a
// relay as monetized; the amounts are never inspected.
type Fees struct {
	Admission    []Fee `json:"admission,omitempty" yaml:"admission,omitempty"`
	Subscription []Fee `json:"subscription,omitempty" yaml:"subscription,omitempty"`
	Publication  []Fee `json:"publication,omitempty" yaml:"publication,omitempty"`
}

// Fee is a single NIP-11 fee entry.
type Fee struct {
	Amount int64  `json:"amount" yaml:"amount"`
	Unit   string `json:"unit" yaml:"unit"`
	Period int64  `json:"period,omitempty" yaml:"period,omitempty"`
	Kinds  []int  `json:"kinds,omitempty" yaml:"kinds,omitempty"`
}

// Decode parses a single feed line into a Relay. The URL must be a
// well-formed relay address (ws or wss scheme with a host); a record
// that fails here is malformed, which is fatal for the run, unlike an
// eligibility rejection which is silent.
func Decode(line []byte) (*Relay, error) {
	var r Relay
	if err := json.Unmarshal(line, &r); err != nil {
		return nil, fmt.Errorf("decoding relay record: %w", err)
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid relay url %q: %w", r.URL, err)
	}
	if (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
		return nil, fmt.Errorf("invalid relay url %q: want ws:// or wss:// with a host", r.URL)
	}

	return &r, nil
}
