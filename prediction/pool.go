package prediction

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
)

// ResolutionDelaySeconds is the fixed interval from a prediction pool's
// outcome time to its resolution time.
const ResolutionDelaySeconds = 7 * 24 * 60 * 60 // resolution_time = outcome_time + 7 days

// MintFullSet computes the number of outcome-asset units (one of each
// outcome, including INVALID) issued for depositing collateral into a
// prediction pool; 1:1 with the deposited collateral.
func MintFullSet(collateral objects.Amount) objects.Amount { return collateral }

// RedeemWinner computes the payout for amount units of the pool's winning
// outcome asset, pro-rata against the pool's remaining collateral.
func RedeemWinner(amount, totalWinningSupply, collateralPool objects.Amount) (objects.Amount, error) {
	if totalWinningSupply.IsZero() {
		return objects.ZeroAmount(), fmt.Errorf("%w: no winning outcome supply outstanding", kernelerr.ErrInvariant)
	}
	return amount.MulDiv(collateralPool.Uint64(), totalWinningSupply.Uint64())
}

// SplitInvalid computes one outcome's pro-rata share of the collateral pool
// when the distinguished INVALID outcome wins, splitting collateral across
// every outcome (including INVALID itself) proportional to each outcome
// asset's outstanding supply.
func SplitInvalid(outcomeSupply, totalSupplyAcrossOutcomes, collateralPool objects.Amount) (objects.Amount, error) {
	if totalSupplyAcrossOutcomes.IsZero() {
		return objects.ZeroAmount(), nil
	}
	return outcomeSupply.MulDiv(collateralPool.Uint64(), totalSupplyAcrossOutcomes.Uint64())
}

// ResolutionVote is one resolution-voter's staked-prediction-asset ballot
// for a candidate outcome.
type ResolutionVote struct {
	Voter   string
	Outcome string
	Stake   objects.Amount
}

// TallyResolution picks the outcome with the largest total staked weight;
// ties are broken by the lexicographically first outcome symbol so the
// result is a pure function of the vote set.
func TallyResolution(votes []ResolutionVote) (winner string, err error) {
	if len(votes) == 0 {
		return "", fmt.Errorf("%w: no resolution votes cast", kernelerr.ErrPrecondition)
	}
	totals := make(map[string]objects.Amount)
	for _, v := range votes {
		cur := totals[v.Outcome]
		sum, addErr := cur.Add(v.Stake)
		if addErr != nil {
			return "", addErr
		}
		totals[v.Outcome] = sum
	}
	for outcome, total := range totals {
		if winner == "" || total.Cmp(totals[winner]) > 0 || (total.Cmp(totals[winner]) == 0 && outcome < winner) {
			winner = outcome
		}
	}
	return winner, nil
}
