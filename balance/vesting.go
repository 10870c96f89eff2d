package balance

import (
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/undo"
)

// StakeWithdrawIntervalSeconds is STAKE_WITHDRAW_INTERVAL_SECONDS: the
// cadence at which a pending stake/unstake vesting cursor advances.
const StakeWithdrawIntervalSeconds = 60 * 60 * 24 // one day, the daily tick
// of a weekly-in-thirteen-installments vesting convention.

// AccrueVesting advances every balance's stake/unstake cursors whose
// NextStakeTime/NextUnstakeTime has arrived, moving one StakeRate/UnstakeRate
// increment between liquid and staked. Called once per maintenance pass.
func (t *Tables) AccrueVesting(sess *undo.Session, now int64) error {
	var err error
	t.Balances.Each(func(b *objects.Balance) {
		if err != nil {
			return
		}
		if !b.ToStake.IsZero() && b.NextStakeTime != 0 && now >= b.NextStakeTime {
			err = t.advanceStake(sess, b, now)
		}
		if err != nil {
			return
		}
		if !b.ToUnstake.IsZero() && b.NextUnstakeTime != 0 && now >= b.NextUnstakeTime {
			err = t.advanceUnstake(sess, b, now)
		}
	})
	return err
}

func (t *Tables) advanceStake(sess *undo.Session, b *objects.Balance, now int64) error {
	step := b.StakeRate
	if step.Cmp(b.ToStake) > 0 {
		step = b.ToStake
	}
	if err := t.Adjust(sess, b.Account, b.Symbol, Liquid, objects.Neg(step)); err != nil {
		return err
	}
	if err := t.Adjust(sess, b.Account, b.Symbol, Staked, objects.Pos(step)); err != nil {
		return err
	}
	t.Balances.Modify(sess, b, func(bal *objects.Balance) {
		bal.ToStake, _ = bal.ToStake.Sub(step)
		if bal.ToStake.IsZero() {
			bal.NextStakeTime = 0
			bal.StakeRate = objects.ZeroAmount()
		} else {
			bal.NextStakeTime = now + StakeWithdrawIntervalSeconds
		}
	})
	return nil
}

func (t *Tables) advanceUnstake(sess *undo.Session, b *objects.Balance, now int64) error {
	step := b.UnstakeRate
	if step.Cmp(b.ToUnstake) > 0 {
		step = b.ToUnstake
	}
	if err := t.Adjust(sess, b.Account, b.Symbol, Staked, objects.Neg(step)); err != nil {
		return err
	}
	remaining := step
	for _, route := range b.UnstakeRoutes {
		if remaining.IsZero() {
			break
		}
		portion, err := step.MulDiv(uint64(route.PercentBps), 10000)
		if err != nil {
			return err
		}
		if portion.Cmp(remaining) > 0 {
			portion = remaining
		}
		dest := Liquid
		if route.AutoStake {
			dest = Staked
		}
		if err := t.Adjust(sess, route.ToAccount, b.Symbol, dest, objects.Pos(portion)); err != nil {
			return err
		}
		remaining, _ = remaining.Sub(portion)
	}
	if !remaining.IsZero() {
		if err := t.Adjust(sess, b.Account, b.Symbol, Liquid, objects.Pos(remaining)); err != nil {
			return err
		}
	}
	t.Balances.Modify(sess, b, func(bal *objects.Balance) {
		bal.ToUnstake, _ = bal.ToUnstake.Sub(step)
		if bal.ToUnstake.IsZero() {
			bal.NextUnstakeTime = 0
			bal.UnstakeRate = objects.ZeroAmount()
		} else {
			bal.NextUnstakeTime = now + StakeWithdrawIntervalSeconds
		}
	})
	return nil
}

// BeginStake schedules a new stake-vesting cursor: rate is applied to
// liquid->staked once per interval until ToStake is exhausted.
func (t *Tables) BeginStake(sess *undo.Session, b *objects.Balance, amount objects.Amount, intervals uint32, now int64) {
	rate, _ := amount.MulDiv(1, uint64(intervals))
	t.Balances.Modify(sess, b, func(bal *objects.Balance) {
		bal.ToStake = amount
		bal.StakeRate = rate
		bal.NextStakeTime = now + StakeWithdrawIntervalSeconds
	})
}

// BeginUnstake schedules a new unstake-vesting cursor, symmetric to
// BeginStake.
func (t *Tables) BeginUnstake(sess *undo.Session, b *objects.Balance, amount objects.Amount, intervals uint32, now int64) {
	rate, _ := amount.MulDiv(1, uint64(intervals))
	t.Balances.Modify(sess, b, func(bal *objects.Balance) {
		bal.ToUnstake = amount
		bal.UnstakeRate = rate
		bal.NextUnstakeTime = now + StakeWithdrawIntervalSeconds
	})
}
