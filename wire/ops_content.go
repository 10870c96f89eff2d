package wire

import (
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
)

func encodeComment(w *Writer, o ops.Comment) {
	w.WriteString(o.Author)
	w.WriteString(o.Permlink)
	w.WriteString(o.ParentAuthor)
	w.WriteString(o.ParentPermlink)
	w.WriteBytes(o.Body)
	w.WriteString(o.IPFS)
	w.WriteString(o.Magnet)
	w.WriteBytes(o.JSONMeta)
	w.WriteBool(o.Ciphertext)
	w.WriteFixed33(o.PublicKey)
	w.WriteString(o.Language)
	w.WriteString(o.Community)
	w.WriteStringVector(o.Tags)
	w.WriteUint8(uint8(o.Reach))
	w.WriteCommentOptions(o.Options)
}

func decodeComment(r *Reader) (ops.Operation, error) {
	var o ops.Comment
	var err error
	if o.Author, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Permlink, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.ParentAuthor, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.ParentPermlink, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Body, err = r.ReadBytes(); err != nil {
		return nil, err
	}
	if o.IPFS, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Magnet, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.JSONMeta, err = r.ReadBytes(); err != nil {
		return nil, err
	}
	if o.Ciphertext, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if o.PublicKey, err = r.ReadFixed33(); err != nil {
		return nil, err
	}
	if o.Language, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Community, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Tags, err = r.ReadStringVector(); err != nil {
		return nil, err
	}
	reach, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	o.Reach = objects.ReachTag(reach)
	if o.Options, err = r.ReadCommentOptions(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeCommentVote(w *Writer, o ops.CommentVote) {
	w.WriteString(o.Voter)
	w.WriteString(o.Author)
	w.WriteString(o.Permlink)
	w.WriteInt16(o.WeightBps)
}

func decodeCommentVote(r *Reader) (ops.Operation, error) {
	var o ops.CommentVote
	var err error
	if o.Voter, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Author, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Permlink, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.WeightBps, err = r.ReadInt16(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeCommentView(w *Writer, o ops.CommentView) {
	w.WriteString(o.Viewer)
	w.WriteString(o.Author)
	w.WriteString(o.Permlink)
}

func decodeCommentView(r *Reader) (ops.Operation, error) {
	var o ops.CommentView
	var err error
	if o.Viewer, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Author, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Permlink, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}

func encodeCommentShare(w *Writer, o ops.CommentShare) {
	w.WriteString(o.Sharer)
	w.WriteString(o.Author)
	w.WriteString(o.Permlink)
}

func decodeCommentShare(r *Reader) (ops.Operation, error) {
	var o ops.CommentShare
	var err error
	if o.Sharer, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Author, err = r.ReadString(); err != nil {
		return nil, err
	}
	if o.Permlink, err = r.ReadString(); err != nil {
		return nil, err
	}
	return o, nil
}
