package wire

import "github.com/weyoume/wenode-sub002/ops"

func encodeLimitOrderCreate(w *Writer, o ops.LimitOrderCreate) {
	w.WriteString(o.Owner)
	w.WriteUint64(o.OrderID)
	w.WriteString(o.SellSymbol)
	w.WriteString(o.ReceiveSymbol)
	w.WriteAmount(o.AmountForSale)
	w.WritePrice(o.ExchangeRate)
	w.WriteInt64(o.Expiration)
	w.WriteString(o.Interface)
	w.WriteBool(o.FillOrKill)
}

func decodeLimitOrderCreate(r *Reader) (ops.Operation, error) {
	var o ops.LimitOrderCreate
	var err error
	if o.Owner, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.OrderID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.SellSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.ReceiveSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.AmountForSale, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.ExchangeRate, err = r.ReadPrice(); err != nil {
		return nil, err
	}
	if o.Expiration, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if o.Interface, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.FillOrKill, err = r.ReadBool(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeLimitOrderCancel(w *Writer, o ops.LimitOrderCancel) {
	w.WriteString(o.Owner)
	w.WriteUint64(o.OrderID)
}

func decodeLimitOrderCancel(r *Reader) (ops.Operation, error) {
	var o ops.LimitOrderCancel
	var err error
	if o.Owner, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.OrderID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeMarginOrderOpen(w *Writer, o ops.MarginOrderOpen) {
	w.WriteString(o.Owner)
	w.WriteUint64(o.OrderID)
	w.WriteString(o.DebtSymbol)
	w.WriteString(o.CollateralSymbol)
	w.WriteAmount(o.Debt)
	w.WriteAmount(o.Collateral)
	w.WritePrice(o.StopLoss)
	w.WritePrice(o.TakeProfit)
}

func decodeMarginOrderOpen(r *Reader) (ops.Operation, error) {
	var o ops.MarginOrderOpen
	var err error
	if o.Owner, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.OrderID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.DebtSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.CollateralSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Debt, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.Collateral, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.StopLoss, err = r.ReadPrice(); err != nil {
		return nil, err
	}
	if o.TakeProfit, err = r.ReadPrice(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeMarginOrderClose(w *Writer, o ops.MarginOrderClose) {
	w.WriteString(o.Owner)
	w.WriteUint64(o.OrderID)
}

func decodeMarginOrderClose(r *Reader) (ops.Operation, error) {
	var o ops.MarginOrderClose
	var err error
	if o.Owner, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.OrderID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeCallOrderUpdate(w *Writer, o ops.CallOrderUpdate) {
	w.WriteString(o.Borrower)
	w.WriteString(o.DebtSymbol)
	w.WriteString(o.CollateralSymbol)
	w.WriteSignedAmount(o.DeltaCollateral)
	w.WriteSignedAmount(o.DeltaDebt)
	w.WriteUint32(o.TargetCollateralRatio)
}

func decodeCallOrderUpdate(r *Reader) (ops.Operation, error) {
	var o ops.CallOrderUpdate
	var err error
	if o.Borrower, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.DebtSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.CollateralSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.DeltaCollateral, err = r.ReadSignedAmount(); err != nil {
		return nil, err
	}
	if o.DeltaDebt, err = r.ReadSignedAmount(); err != nil {
		return nil, err
	}
	if o.TargetCollateralRatio, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeAuctionOrderCreate(w *Writer, o ops.AuctionOrderCreate) {
	w.WriteString(o.Owner)
	w.WriteString(o.SellSymbol)
	w.WriteString(o.ReceiveSymbol)
	w.WriteAmount(o.Amount)
	w.WritePrice(o.LimitClosePrice)
	w.WriteInt64(o.Expiration)
}

func decodeAuctionOrderCreate(r *Reader) (ops.Operation, error) {
	var o ops.AuctionOrderCreate
	var err error
	if o.Owner, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.SellSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.ReceiveSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.LimitClosePrice, err = r.ReadPrice(); err != nil {
		return nil, err
	}
	if o.Expiration, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeOptionOrderCreate(w *Writer, o ops.OptionOrderCreate) {
	w.WriteString(o.Owner)
	w.WriteUint64(o.OrderID)
	w.WriteString(o.OptionPoolSymbol)
	w.WriteInt64(o.Expiry)
	w.WritePrice(o.Strike)
	w.WriteString(o.CollateralAsset)
	w.WriteAmount(o.Collateral)
}

func decodeOptionOrderCreate(r *Reader) (ops.Operation, error) {
	var o ops.OptionOrderCreate
	var err error
	if o.Owner, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.OrderID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.OptionPoolSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Expiry, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if o.Strike, err = r.ReadPrice(); err != nil {
		return nil, err
	}
	if o.CollateralAsset, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Collateral, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeOptionExercise(w *Writer, o ops.OptionExercise) {
	w.WriteString(o.Owner)
	w.WriteUint64(o.OrderID)
	w.WriteAmount(o.Amount)
}

func decodeOptionExercise(r *Reader) (ops.Operation, error) {
	var o ops.OptionExercise
	var err error
	if o.Owner, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.OrderID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}
