package wire

import "github.com/weyoume/wenode-sub002/ops"

func encodeProducerUpdate(w *Writer, o ops.ProducerUpdate) {
	w.WriteString(o.Account)
	w.WriteFixed33(o.SigningKey)
	w.WriteChainProperties(o.PropsVote)
}

func decodeProducerUpdate(r *Reader) (ops.Operation, error) {
	var o ops.ProducerUpdate
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.SigningKey, err = r.ReadFixed33(); err != nil {
		return nil, err
	}
	if o.PropsVote, err = r.ReadChainProperties(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeProofOfWork(w *Writer, o ops.ProofOfWork) {
	w.WriteString(o.Account)
	w.WriteUint64(o.Nonce)
	w.WriteFixed32(o.Hash)
	w.WriteFixed33(o.SigningKey)
}

func decodeProofOfWork(r *Reader) (ops.Operation, error) {
	var o ops.ProofOfWork
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Nonce, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.Hash, err = r.ReadFixed32(); err != nil {
		return nil, err
	}
	if o.SigningKey, err = r.ReadFixed33(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeVerifyBlock(w *Writer, o ops.VerifyBlock) {
	w.WriteString(o.Producer)
	w.WriteUint64(o.Height)
	w.WriteFixed32(o.BlockID)
}

func decodeVerifyBlock(r *Reader) (ops.Operation, error) {
	var o ops.VerifyBlock
	var err error
	if o.Producer, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Height, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.BlockID, err = r.ReadFixed32(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeCommitBlock(w *Writer, o ops.CommitBlock) {
	w.WriteString(o.Producer)
	w.WriteUint64(o.Height)
	w.WriteFixed32(o.BlockID)
}

func decodeCommitBlock(r *Reader) (ops.Operation, error) {
	var o ops.CommitBlock
	var err error
	if o.Producer, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Height, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.BlockID, err = r.ReadFixed32(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeProducerViolation(w *Writer, o ops.ProducerViolation) {
	w.WriteString(o.Reporter)
	w.WriteString(o.Producer)
	w.WriteUint64(o.Height)
	w.WriteFixed32(o.DigestOne)
	w.WriteFixed32(o.DigestTwo)
}

func decodeProducerViolation(r *Reader) (ops.Operation, error) {
	var o ops.ProducerViolation
	var err error
	if o.Reporter, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Producer, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Height, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if o.DigestOne, err = r.ReadFixed32(); err != nil {
		return nil, err
	}
	if o.DigestTwo, err = r.ReadFixed32(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeCustom(w *Writer, o ops.Custom) {
	w.WriteString(o.Account)
	w.WriteUint16(o.ID)
	w.WriteBytes(o.Data)
}

func decodeCustom(r *Reader) (ops.Operation, error) {
	var o ops.Custom
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.ID, err = r.ReadUint16(); err != nil {
		return nil, err
	}
	if o.Data, err = r.ReadBytes(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeCustomJSON(w *Writer, o ops.CustomJSON) {
	w.WriteStringVector(o.Signers)
	w.WriteString(o.ID)
	w.WriteBytes(o.JSON)
}

func decodeCustomJSON(r *Reader) (ops.Operation, error) {
	var o ops.CustomJSON
	var err error
	if o.Signers, err = r.ReadStringVector(); err != nil {
		return nil, err
	}
	if o.ID, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.JSON, err = r.ReadBytes(); err != nil {
		return nil, err
	}
	return o, nil
}
