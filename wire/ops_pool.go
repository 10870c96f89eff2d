package wire

import "github.com/weyoume/wenode-sub002/ops"

func encodeLiquidityPoolCreate(w *Writer, o ops.LiquidityPoolCreate) {
	w.WriteString(o.Creator)
	w.WriteString(o.SymbolA)
	w.WriteString(o.SymbolB)
	w.WriteAmount(o.AmountA)
	w.WriteAmount(o.AmountB)
	w.WriteString(o.LPSymbol)
}

func decodeLiquidityPoolCreate(r *Reader) (ops.Operation, error) {
	var o ops.LiquidityPoolCreate
	var err error
	if o.Creator, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.SymbolA, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.SymbolB, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.AmountA, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.AmountB, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.LPSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeLiquidityPoolExchange(w *Writer, o ops.LiquidityPoolExchange) {
	w.WriteString(o.Account)
	w.WriteString(o.SymbolA)
	w.WriteString(o.SymbolB)
	w.WriteAmount(o.AmountIn)
	w.WriteBool(o.Acquire)
	w.WritePrice(o.LimitPrice)
}

func decodeLiquidityPoolExchange(r *Reader) (ops.Operation, error) {
	var o ops.LiquidityPoolExchange
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.SymbolA, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.SymbolB, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.AmountIn, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.Acquire, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if o.LimitPrice, err = r.ReadPrice(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeLiquidityPoolFund(w *Writer, o ops.LiquidityPoolFund) {
	w.WriteString(o.Account)
	w.WriteString(o.SymbolA)
	w.WriteString(o.SymbolB)
	w.WriteAmount(o.AmountA)
	w.WriteAmount(o.AmountB)
}

func decodeLiquidityPoolFund(r *Reader) (ops.Operation, error) {
	var o ops.LiquidityPoolFund
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.SymbolA, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.SymbolB, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.AmountA, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.AmountB, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeLiquidityPoolWithdraw(w *Writer, o ops.LiquidityPoolWithdraw) {
	w.WriteString(o.Account)
	w.WriteString(o.LPSymbol)
	w.WriteAmount(o.Amount)
}

func decodeLiquidityPoolWithdraw(r *Reader) (ops.Operation, error) {
	var o ops.LiquidityPoolWithdraw
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.LPSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeCreditPoolCollateral(w *Writer, o ops.CreditPoolCollateral) {
	w.WriteString(o.Account)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
}

func decodeCreditPoolCollateral(r *Reader) (ops.Operation, error) {
	var o ops.CreditPoolCollateral
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

func encodeCreditPoolBorrow(w *Writer, o ops.CreditPoolBorrow) {
	w.WriteString(o.Account)
	w.WriteUint64(o.LoanID)
	w.WriteString(o.DebtSymbol)
	w.WriteAmount(o.DebtAmount)
	w.WriteString(o.CollateralSymbol)
	w.WriteAmount(o.CollateralAmount)
	w.WriteBool(o.FlashLoan)
}

func decodeCreditPoolBorrow(r *Reader) (ops.Operation, error) {
	var o ops.CreditPoolBorrow
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.LoanID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.DebtSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.DebtAmount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.CollateralSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.CollateralAmount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.FlashLoan, err = r.ReadBool(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeCreditPoolLend(w *Writer, o ops.CreditPoolLend) {
	w.WriteString(o.Account)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
}

func decodeCreditPoolLend(r *Reader) (ops.Operation, error) {
	var o ops.CreditPoolLend
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

func encodeCreditPoolWithdraw(w *Writer, o ops.CreditPoolWithdraw) {
	w.WriteString(o.Account)
	w.WriteString(o.Symbol)
	w.WriteUint64(o.LoanID)
	w.WriteAmount(o.Amount)
}

func decodeCreditPoolWithdraw(r *Reader) (ops.Operation, error) {
	var o ops.CreditPoolWithdraw
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.LoanID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeOptionPoolCreate(w *Writer, o ops.OptionPoolCreate) {
	w.WriteString(o.Creator)
	w.WriteString(o.BaseSymbol)
	w.WriteString(o.QuoteSymbol)
}

func decodeOptionPoolCreate(r *Reader) (ops.Operation, error) {
	var o ops.OptionPoolCreate
	var err error
	if o.Creator, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.BaseSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.QuoteSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodePredictionPoolCreate(w *Writer, o ops.PredictionPoolCreate) {
	w.WriteString(o.Creator)
	w.WriteString(o.PredictionSymbol)
	w.WriteString(o.CollateralSymbol)
	w.WriteStringVector(o.Outcomes)
	w.WriteInt64(o.OutcomeTime)
}

func decodePredictionPoolCreate(r *Reader) (ops.Operation, error) {
	var o ops.PredictionPoolCreate
	var err error
	if o.Creator, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.PredictionSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.CollateralSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Outcomes, err = r.ReadStringVector(); err != nil {
		return nil, err
	}
	if o.OutcomeTime, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodePredictionPoolExchange(w *Writer, o ops.PredictionPoolExchange) {
	w.WriteString(o.Account)
	w.WriteString(o.PredictionSymbol)
	w.WriteAmount(o.Amount)
	w.WriteBool(o.Redeem)
}

func decodePredictionPoolExchange(r *Reader) (ops.Operation, error) {
	var o ops.PredictionPoolExchange
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.PredictionSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.Redeem, err = r.ReadBool(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodePredictionPoolResolve(w *Writer, o ops.PredictionPoolResolve) {
	w.WriteString(o.Voter)
	w.WriteString(o.PredictionSymbol)
	w.WriteString(o.Outcome)
	w.WriteAmount(o.Stake)
}

func decodePredictionPoolResolve(r *Reader) (ops.Operation, error) {
	var o ops.PredictionPoolResolve
	var err error
	if o.Voter, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.PredictionSymbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Outcome, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Stake, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}
