package wire

import (
	"github.com/weyoume/wenode-sub002/authority"
	"github.com/weyoume/wenode-sub002/objects"
)

// WriteAmount writes a as its big-endian 256-bit encoding (objects.Amount
// is backed by uint256.Int per SPEC_FULL.md §4.4.1).
func (w *Writer) WriteAmount(a objects.Amount) {
	b := a.Bytes32()
	w.WriteFixed(b[:])
}

func (r *Reader) ReadAmount() (objects.Amount, error) {
	b, err := r.ReadFixed(32)
	if err != nil {
		return objects.Amount{}, err
	}
	var fixed [32]byte
	copy(fixed[:], b)
	return objects.AmountFromBytes32(fixed), nil
}

func (w *Writer) WriteSignedAmount(a objects.SignedAmount) {
	w.WriteBool(a.Negative)
	w.WriteAmount(a.Magnitude)
}

func (r *Reader) ReadSignedAmount() (objects.SignedAmount, error) {
	neg, err := r.ReadBool()
	if err != nil {
		return objects.SignedAmount{}, err
	}
	mag, err := r.ReadAmount()
	if err != nil {
		return objects.SignedAmount{}, err
	}
	return objects.SignedAmount{Negative: neg, Magnitude: mag}, nil
}

func (w *Writer) WritePrice(p objects.Price) {
	w.WriteUint64(p.BaseAmount)
	w.WriteUint64(p.QuoteAmount)
}

func (r *Reader) ReadPrice() (objects.Price, error) {
	base, err := r.ReadUint64()
	if err != nil {
		return objects.Price{}, err
	}
	quote, err := r.ReadUint64()
	if err != nil {
		return objects.Price{}, err
	}
	return objects.Price{BaseAmount: base, QuoteAmount: quote}, nil
}

func (w *Writer) WriteFixed32(b [32]byte) { w.WriteFixed(b[:]) }

func (r *Reader) ReadFixed32() ([32]byte, error) {
	b, err := r.ReadFixed(32)
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], b)
	return out, nil
}

func (w *Writer) WriteFixed33(b [33]byte) { w.WriteFixed(b[:]) }

func (r *Reader) ReadFixed33() ([33]byte, error) {
	b, err := r.ReadFixed(33)
	if err != nil {
		return [33]byte{}, err
	}
	var out [33]byte
	copy(out[:], b)
	return out, nil
}

func (w *Writer) WriteWeightedAccount(a authority.WeightedAccount) {
	w.WriteString(a.Account)
	w.WriteUint32(a.Weight)
}

func (r *Reader) ReadWeightedAccount() (authority.WeightedAccount, error) {
	account, err := r.ReadString()
	if err != nil {
		return authority.WeightedAccount{}, err
	}
	weight, err := r.ReadUint32()
	if err != nil {
		return authority.WeightedAccount{}, err
	}
	return authority.WeightedAccount{Account: account, Weight: weight}, nil
}

func (w *Writer) WriteWeightedKey(k authority.WeightedKey) {
	w.WriteFixed33(k.Key)
	w.WriteUint32(k.Weight)
}

func (r *Reader) ReadWeightedKey() (authority.WeightedKey, error) {
	key, err := r.ReadFixed33()
	if err != nil {
		return authority.WeightedKey{}, err
	}
	weight, err := r.ReadUint32()
	if err != nil {
		return authority.WeightedKey{}, err
	}
	return authority.WeightedKey{Key: key, Weight: weight}, nil
}

func (w *Writer) WriteAuthority(a authority.Authority) {
	w.WriteUvarint(uint64(len(a.AccountAuths)))
	for _, aa := range a.AccountAuths {
		w.WriteWeightedAccount(aa)
	}
	w.WriteUvarint(uint64(len(a.KeyAuths)))
	for _, ka := range a.KeyAuths {
		w.WriteWeightedKey(ka)
	}
	w.WriteUint32(a.Threshold)
}

func (r *Reader) ReadAuthority() (authority.Authority, error) {
	var a authority.Authority
	n, err := r.ReadUvarint()
	if err != nil {
		return a, err
	}
	if n > 0 {
		a.AccountAuths = make([]authority.WeightedAccount, n)
		for i := range a.AccountAuths {
			if a.AccountAuths[i], err = r.ReadWeightedAccount(); err != nil {
				return authority.Authority{}, err
			}
		}
	}
	n, err = r.ReadUvarint()
	if err != nil {
		return authority.Authority{}, err
	}
	if n > 0 {
		a.KeyAuths = make([]authority.WeightedKey, n)
		for i := range a.KeyAuths {
			if a.KeyAuths[i], err = r.ReadWeightedKey(); err != nil {
				return authority.Authority{}, err
			}
		}
	}
	if a.Threshold, err = r.ReadUint32(); err != nil {
		return authority.Authority{}, err
	}
	return a, nil
}

// WriteAuthorityPtr writes a presence byte followed by the authority,
// matching AccountUpdate's "nil leaves it unchanged" semantics.
func (w *Writer) WriteAuthorityPtr(a *authority.Authority) {
	if a == nil {
		w.WriteBool(false)
		return
	}
	w.WriteBool(true)
	w.WriteAuthority(*a)
}

func (r *Reader) ReadAuthorityPtr() (*authority.Authority, error) {
	present, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	a, err := r.ReadAuthority()
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (w *Writer) WriteBeneficiary(b objects.Beneficiary) {
	w.WriteString(b.Account)
	w.WriteUint16(b.PercentBps)
}

func (r *Reader) ReadBeneficiary() (objects.Beneficiary, error) {
	account, err := r.ReadString()
	if err != nil {
		return objects.Beneficiary{}, err
	}
	bps, err := r.ReadUint16()
	if err != nil {
		return objects.Beneficiary{}, err
	}
	return objects.Beneficiary{Account: account, PercentBps: bps}, nil
}

func (w *Writer) WriteCommentOptions(o objects.CommentOptions) {
	w.WriteAmount(o.MaxPayout)
	w.WriteBool(o.AllowCuration)
	w.WriteBool(o.AllowVotes)
	w.WriteBool(o.AllowViews)
	w.WriteBool(o.AllowShares)
	w.WriteUvarint(uint64(len(o.Beneficiaries)))
	for _, b := range o.Beneficiaries {
		w.WriteBeneficiary(b)
	}
}

func (r *Reader) ReadCommentOptions() (objects.CommentOptions, error) {
	var o objects.CommentOptions
	var err error
	if o.MaxPayout, err = r.ReadAmount(); err != nil {
		return o, err
	}
	if o.AllowCuration, err = r.ReadBool(); err != nil {
		return o, err
	}
	if o.AllowVotes, err = r.ReadBool(); err != nil {
		return o, err
	}
	if o.AllowViews, err = r.ReadBool(); err != nil {
		return o, err
	}
	if o.AllowShares, err = r.ReadBool(); err != nil {
		return o, err
	}
	n, err := r.ReadUvarint()
	if err != nil {
		return o, err
	}
	if n > 0 {
		o.Beneficiaries = make([]objects.Beneficiary, n)
		for i := range o.Beneficiaries {
			if o.Beneficiaries[i], err = r.ReadBeneficiary(); err != nil {
				return objects.CommentOptions{}, err
			}
		}
	}
	return o, nil
}

func (w *Writer) WriteChainProperties(p objects.ChainProperties) {
	w.WriteAmount(p.AccountCreationFee)
	w.WriteUint32(p.MaxBlockSize)
	w.WriteUint32(p.CreditMinInterest)
	w.WriteUint32(p.CreditVariableInterest)
	w.WriteUint32(p.InterestFeePercent)
	w.WriteUint32(p.MarginOpenRatioBps)
	w.WriteUint32(p.CreditOpenRatioBps)
	w.WriteUint32(p.CreditLiquidationRatioBps)
	w.WriteUint32(p.VoteCurationDecay)
	w.WriteUint32(p.ViewCurationDecay)
	w.WriteUint32(p.ShareCurationDecay)
	w.WriteUint32(p.CommentCurationDecay)
}

func (r *Reader) ReadChainProperties() (objects.ChainProperties, error) {
	var p objects.ChainProperties
	var err error
	if p.AccountCreationFee, err = r.ReadAmount(); err != nil {
		return p, err
	}
	for _, dst := range []*uint32{
		&p.MaxBlockSize, &p.CreditMinInterest, &p.CreditVariableInterest,
		&p.InterestFeePercent, &p.MarginOpenRatioBps, &p.CreditOpenRatioBps,
		&p.CreditLiquidationRatioBps, &p.VoteCurationDecay, &p.ViewCurationDecay,
		&p.ShareCurationDecay, &p.CommentCurationDecay,
	} {
		if *dst, err = r.ReadUint32(); err != nil {
			return objects.ChainProperties{}, err
		}
	}
	return p, nil
}
