package wire

import (
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
)

func encodeAssetCreate(w *Writer, o ops.AssetCreate) {
	w.WriteString(o.Issuer)
	w.WriteString(o.Symbol)
	w.WriteUint8(uint8(o.AssetKind))
	w.WriteAmount(o.MaxSupply)
	w.WriteUint8(o.Precision)
	w.WriteUint32(o.StakeIntervals)
	w.WriteUint32(o.UnstakeIntervals)
	w.WriteUint16(o.MarketFeePercent)
	w.WriteUint32(o.Permissions)
	w.WriteUint32(o.Flags)
	w.WriteString(o.BackingAsset)
}

func decodeAssetCreate(r *Reader) (ops.Operation, error) {
	var o ops.AssetCreate
	var err error
	if o.Issuer, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	kind, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	o.AssetKind = objects.AssetKind(kind)
	if o.MaxSupply, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.Precision, err = r.ReadUint8(); err != nil {
		return nil, err
	}
	if o.StakeIntervals, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if o.UnstakeIntervals, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if o.MarketFeePercent, err = r.ReadUint16(); err != nil {
		return nil, err
	}
	if o.Permissions, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if o.Flags, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if o.BackingAsset, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeAssetUpdate(w *Writer, o ops.AssetUpdate) {
	w.WriteString(o.Issuer)
	w.WriteString(o.Symbol)
	w.WriteUint32(o.NewFlags)
	w.WriteUint16(o.MarketFeePercent)
}

func decodeAssetUpdate(r *Reader) (ops.Operation, error) {
	var o ops.AssetUpdate
	var err error
	if o.Issuer, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.NewFlags, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if o.MarketFeePercent, err = r.ReadUint16(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeAssetIssue(w *Writer, o ops.AssetIssue) {
	w.WriteString(o.Issuer)
	w.WriteString(o.Symbol)
	w.WriteString(o.To)
	w.WriteAmount(o.Amount)
}

func decodeAssetIssue(r *Reader) (ops.Operation, error) {
	var o ops.AssetIssue
	var err error
	if o.Issuer, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.To, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeAssetReserve(w *Writer, o ops.AssetReserve) {
	w.WriteString(o.Account)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
}

func decodeAssetReserve(r *Reader) (ops.Operation, error) {
	var o ops.AssetReserve
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

func encodeUpdateFeedProducers(w *Writer, o ops.UpdateFeedProducers) {
	w.WriteString(o.Issuer)
	w.WriteString(o.Symbol)
	w.WriteStringVector(o.Producers)
}

func decodeUpdateFeedProducers(r *Reader) (ops.Operation, error) {
	var o ops.UpdateFeedProducers
	var err error
	if o.Issuer, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Producers, err = r.ReadStringVector(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodePublishFeed(w *Writer, o ops.PublishFeed) {
	w.WriteString(o.Publisher)
	w.WriteString(o.Symbol)
	w.WritePrice(o.Price)
}

func decodePublishFeed(r *Reader) (ops.Operation, error) {
	var o ops.PublishFeed
	var err error
	if o.Publisher, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Price, err = r.ReadPrice(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeSettle(w *Writer, o ops.Settle) {
	w.WriteString(o.Account)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
}

func decodeSettle(r *Reader) (ops.Operation, error) {
	var o ops.Settle
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

func encodeGlobalSettle(w *Writer, o ops.GlobalSettle) {
	w.WriteString(o.Issuer)
	w.WriteString(o.Symbol)
}

func decodeGlobalSettle(r *Reader) (ops.Operation, error) {
	var o ops.GlobalSettle
	var err error
	if o.Issuer, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeCollateralBid(w *Writer, o ops.CollateralBid) {
	w.WriteString(o.Bidder)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Collateral)
	w.WriteAmount(o.Debt)
}

func decodeCollateralBid(r *Reader) (ops.Operation, error) {
	var o ops.CollateralBid
	var err error
	if o.Bidder, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Collateral, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.Debt, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}
