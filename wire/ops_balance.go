package wire

import "github.com/weyoume/wenode-sub002/ops"

func encodeTransfer(w *Writer, o ops.Transfer) {
	w.WriteString(o.From)
	w.WriteString(o.To)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
	w.WriteString(o.Memo)
}

func decodeTransfer(r *Reader) (ops.Operation, error) {
	var o ops.Transfer
	var err error
	if o.From, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.To, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.Memo, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeClaimReward(w *Writer, o ops.ClaimReward) {
	w.WriteString(o.Account)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
}

func decodeClaimReward(r *Reader) (ops.Operation, error) {
	var o ops.ClaimReward
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeStake(w *Writer, o ops.Stake) {
	w.WriteString(o.From)
	w.WriteString(o.To)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
}

func decodeStake(r *Reader) (ops.Operation, error) {
	var o ops.Stake
	var err error
	if o.From, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.To, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeUnstake(w *Writer, o ops.Unstake) {
	w.WriteString(o.Account)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
}

func decodeUnstake(r *Reader) (ops.Operation, error) {
	var o ops.Unstake
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeUnstakeRoute(w *Writer, o ops.UnstakeRoute) {
	w.WriteString(o.Account)
	w.WriteString(o.Symbol)
	w.WriteString(o.ToAccount)
	w.WriteUint16(o.PercentBps)
	w.WriteBool(o.AutoStake)
}

func decodeUnstakeRoute(r *Reader) (ops.Operation, error) {
	var o ops.UnstakeRoute
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.ToAccount, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.PercentBps, err = r.ReadUint16(); err != nil {
		return nil, err
	}
	if o.AutoStake, err = r.ReadBool(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeToSavings(w *Writer, o ops.ToSavings) {
	w.WriteString(o.From)
	w.WriteString(o.To)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
	w.WriteString(o.Memo)
}

func decodeToSavings(r *Reader) (ops.Operation, error) {
	var o ops.ToSavings
	var err error
	if o.From, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.To, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.Memo, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeFromSavings(w *Writer, o ops.FromSavings) {
	w.WriteString(o.From)
	w.WriteString(o.To)
	w.WriteUint64(o.RequestID)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
	w.WriteString(o.Memo)
}

func decodeFromSavings(r *Reader) (ops.Operation, error) {
	var o ops.FromSavings
	var err error
	if o.From, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.To, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.RequestID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.Memo, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeDelegateAsset(w *Writer, o ops.DelegateAsset) {
	w.WriteString(o.Delegator)
	w.WriteString(o.Delegatee)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
}

func decodeDelegateAsset(r *Reader) (ops.Operation, error) {
	var o ops.DelegateAsset
	var err error
	if o.Delegator, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Delegatee, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}
