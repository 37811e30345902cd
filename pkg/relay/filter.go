package relay

import (
	"net/url"
	"strings"
)

// excludedURLSubstring removes the maintainer's archival relay from the
// shortlist; its connection stats are inflated by non-representative use.
const excludedURLSubstring = "mikedilger"

// Candidate is a relay that passed every eligibility predicate, paired
// with its validated operator identity.
type Candidate struct {
	Relay    *Relay
	Identity Identity
}

// Eligible applies the eligibility predicates in order and returns false
// at the first one the relay fails. Rejection is silent: it is the
// expected fate of most records, not an error. The predicates are
// independent, so the order only matters for short-circuiting.
func Eligible(r *Relay) (*Candidate, bool) {
	// Never successfully connected.
	if r.SuccessCount == 0 {
		return nil, false
	}

	// Only root-level endpoints count as canonical relay addresses;
	// anything with a sub-path is a distinct resource.
	if !hasRootPath(r.URL) {
		return nil, false
	}

	// No self-description to validate identity or policy against.
	if r.NIP11 == nil || r.NIP11.Pubkey == nil {
		return nil, false
	}
	id, err := ParseIdentity(*r.NIP11.Pubkey)
	if err != nil {
		return nil, false
	}

	// Monetized relays are out: the shortlist is freely usable relays.
	if r.NIP11.PaymentsURL != nil || r.NIP11.Fees != nil {
		return nil, false
	}

	if strings.Contains(r.URL, excludedURLSubstring) {
		return nil, false
	}

	return &Candidate{Relay: r, Identity: id}, true
}

// hasRootPath reports whether the URL's path component is the root.
// A bare authority ("wss://example.com") counts: some serializers write
// the trailing slash and some do not.
func hasRootPath(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Path == "" || u.Path == "/"
}
