package wire

import "github.com/weyoume/wenode-sub002/ops"

func encodeEscrowTransfer(w *Writer, o ops.EscrowTransfer) {
	w.WriteString(o.From)
	w.WriteString(o.To)
	w.WriteString(o.Agent)
	w.WriteUint64(o.ID)
	w.WriteString(o.Symbol)
	w.WriteAmount(o.Amount)
	w.WriteAmount(o.Fee)
	w.WriteInt64(o.Expiration)
}

func decodeEscrowTransfer(r *Reader) (ops.Operation, error) {
	var o ops.EscrowTransfer
	var err error
	if o.From, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.To, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Agent, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.ID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.Fee, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if o.Expiration, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeEscrowApprove(w *Writer, o ops.EscrowApprove) {
	w.WriteString(o.From)
	w.WriteUint64(o.ID)
	w.WriteString(o.Who)
	w.WriteBool(o.Approve)
}

func decodeEscrowApprove(r *Reader) (ops.Operation, error) {
	var o ops.EscrowApprove
	var err error
	if o.From, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.ID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.Who, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Approve, err = r.ReadBool(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeEscrowDispute(w *Writer, o ops.EscrowDispute) {
	w.WriteString(o.From)
	w.WriteUint64(o.ID)
	w.WriteString(o.Who)
}

func decodeEscrowDispute(r *Reader) (ops.Operation, error) {
	var o ops.EscrowDispute
	var err error
	if o.From, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.ID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.Who, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeEscrowRelease(w *Writer, o ops.EscrowRelease) {
	w.WriteString(o.From)
	w.WriteUint64(o.ID)
	w.WriteString(o.Who)
	w.WriteString(o.Receiver)
	w.WriteAmount(o.Amount)
}

func decodeEscrowRelease(r *Reader) (ops.Operation, error) {
	var o ops.EscrowRelease
	var err error
	if o.From, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.ID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.Who, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Receiver, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return o, nil
}
