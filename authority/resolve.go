package authority

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/kernelerr"
)

// Requirement is one operation's declared authority need.
type Requirement struct {
	Account string
	Kind    Kind
}

// VerifiedKeys is the set of keys whose signatures have already been proven
// valid against the transaction digest; resolution below only asks whether
// a weight-sufficient subset of those keys (directly, or via nested account
// auths) satisfies each requirement.
type VerifiedKeys map[[33]byte]bool

// Satisfy reports whether the keys in verified, combined via nested account
// auths up to MaxSigCheckDepth, meet req's authority threshold. A posting
// requirement may be satisfied by the account's active or owner authority;
// an active requirement may be satisfied by owner; owner requires owner
// exactly.
func Satisfy(lookup AccountLookup, req Requirement, verified VerifiedKeys) (bool, error) {
	kinds := fallbackChain(req.Kind)
	for _, k := range kinds {
		auth, ok := lookup.Authority(req.Account, k)
		if !ok {
			continue
		}
		if weightOf(lookup, auth, verified, 0) >= auth.Threshold {
			return true, nil
		}
	}
	return false, fmt.Errorf("%w: %s authority for %s not satisfied", kernelerr.ErrUnauthorized, req.Kind, req.Account)
}

func fallbackChain(k Kind) []Kind {
	switch k {
	case Posting:
		return []Kind{Posting, Active, Owner}
	case Active:
		return []Kind{Active, Owner}
	default:
		return []Kind{Owner}
	}
}

// weightOf sums the weight of every directly-verified key, plus the weight
// of every account-auth entry whose own authority is itself satisfied,
// recursing up to MaxSigCheckDepth levels.
func weightOf(lookup AccountLookup, auth Authority, verified VerifiedKeys, depth int) uint32 {
	var total uint32
	for _, wk := range auth.KeyAuths {
		if verified[wk.Key] {
			total += wk.Weight
		}
	}
	if depth >= MaxSigCheckDepth {
		return total
	}
	for _, wa := range auth.AccountAuths {
		nested, ok := lookup.Authority(wa.Account, Active)
		if !ok {
			continue
		}
		if weightOf(lookup, nested, verified, depth+1) >= nested.Threshold {
			total += wa.Weight
		}
	}
	return total
}

// ValidateNoSignatureWaste ensures every key in verified was necessary to
// satisfy at least one requirement; an unused signature fails with
// an unused-signature error. used must be populated by the caller by tracking which verified keys
// contributed weight to a passing Satisfy call; this function only applies
// the final all-used check.
func ValidateNoSignatureWaste(verified VerifiedKeys, used map[[33]byte]bool) error {
	for k := range verified {
		if !used[k] {
			return fmt.Errorf("%w: signature for key not required by any authority", kernelerr.ErrUnauthorized)
		}
	}
	return nil
}

// MixedAuthorityCheck enforces that a transaction's requirements may not
// mix posting with active/owner.
func MixedAuthorityCheck(reqs []Requirement) error {
	var hasPosting, hasHigher bool
	for _, r := range reqs {
		if r.Kind == Posting {
			hasPosting = true
		} else {
			hasHigher = true
		}
	}
	if hasPosting && hasHigher {
		return fmt.Errorf("%w: posting and active/owner requirements mixed in one transaction", kernelerr.ErrUnauthorized)
	}
	return nil
}
