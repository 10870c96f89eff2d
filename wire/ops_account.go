package wire

import "github.com/weyoume/wenode-sub002/ops"

func encodeAccountCreate(w *Writer, o ops.AccountCreate) {
	w.WriteString(o.Creator)
	w.WriteString(o.NewName)
	w.WriteAuthority(o.Owner)
	w.WriteAuthority(o.Active)
	w.WriteAuthority(o.Posting)
	w.WriteUint64(o.Fee)
}

func decodeAccountCreate(r *Reader) (ops.Operation, error) {
	var o ops.AccountCreate
	var err error
	if o.Creator, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.NewName, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Owner, err = r.ReadAuthority(); err != nil {
		return nil, err
	}
	if o.Active, err = r.ReadAuthority(); err != nil {
		return nil, err
	}
	if o.Posting, err = r.ReadAuthority(); err != nil {
		return nil, err
	}
	if o.Fee, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeAccountUpdate(w *Writer, o ops.AccountUpdate) {
	w.WriteString(o.Account)
	w.WriteAuthorityPtr(o.Owner)
	w.WriteAuthorityPtr(o.Active)
	w.WriteAuthorityPtr(o.Posting)
	w.WriteString(o.RecoveryAccount)
}

func decodeAccountUpdate(r *Reader) (ops.Operation, error) {
	var o ops.AccountUpdate
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Owner, err = r.ReadAuthorityPtr(); err != nil {
		return nil, err
	}
	if o.Active, err = r.ReadAuthorityPtr(); err != nil {
		return nil, err
	}
	if o.Posting, err = r.ReadAuthorityPtr(); err != nil {
		return nil, err
	}
	if o.RecoveryAccount, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeWitnessVote(w *Writer, o ops.WitnessVote) {
	w.WriteString(o.Voter)
	w.WriteString(o.Witness)
	w.WriteBool(o.Approve)
}

func decodeWitnessVote(r *Reader) (ops.Operation, error) {
	var o ops.WitnessVote
	var err error
	if o.Voter, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Witness, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Approve, err = r.ReadBool(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeUpdateProxy(w *Writer, o ops.UpdateProxy) {
	w.WriteString(o.Account)
	w.WriteString(o.Proxy)
}

func decodeUpdateProxy(r *Reader) (ops.Operation, error) {
	var o ops.UpdateProxy
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Proxy, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeRequestAccountRecovery(w *Writer, o ops.RequestAccountRecovery) {
	w.WriteString(o.RecoveryAccount)
	w.WriteString(o.AccountToRecover)
	w.WriteAuthority(o.NewOwner)
}

func decodeRequestAccountRecovery(r *Reader) (ops.Operation, error) {
	var o ops.RequestAccountRecovery
	var err error
	if o.RecoveryAccount, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.AccountToRecover, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.NewOwner, err = r.ReadAuthority(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeRecoverAccount(w *Writer, o ops.RecoverAccount) {
	w.WriteString(o.AccountToRecover)
	w.WriteAuthority(o.NewOwner)
	w.WriteAuthority(o.RecentOwner)
}

func decodeRecoverAccount(r *Reader) (ops.Operation, error) {
	var o ops.RecoverAccount
	var err error
	if o.AccountToRecover, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.NewOwner, err = r.ReadAuthority(); err != nil {
		return nil, err
	}
	if o.RecentOwner, err = r.ReadAuthority(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeResetAccount(w *Writer, o ops.ResetAccount) {
	w.WriteString(o.ResetAccount)
	w.WriteString(o.AccountToReset)
	w.WriteAuthority(o.NewOwner)
}

func decodeResetAccount(r *Reader) (ops.Operation, error) {
	var o ops.ResetAccount
	var err error
	if o.ResetAccount, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.AccountToReset, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.NewOwner, err = r.ReadAuthority(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeDeclineVoting(w *Writer, o ops.DeclineVoting) {
	w.WriteString(o.Account)
	w.WriteBool(o.Decline)
}

func decodeDeclineVoting(r *Reader) (ops.Operation, error) {
	var o ops.DeclineVoting
	var err error
	if o.Account, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Decline, err = r.ReadBool(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeFollow(w *Writer, o ops.Follow) {
	w.WriteString(o.Follower)
	w.WriteString(o.Following)
	w.WriteBool(o.Unfollow)
}

func decodeFollow(r *Reader) (ops.Operation, error) {
	var o ops.Follow
	var err error
	if o.Follower, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Following, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Unfollow, err = r.ReadBool(); err != nil {
		return nil, err
	}
	return o, nil
}
