package ops

import "github.com/weyoume/wenode-sub002/objects"

// Comment creates or edits a post/reply.
type Comment struct {
	Author         string                 `wire:"0"`
	Permlink       string                 `wire:"1"`
	ParentAuthor   string                 `wire:"2"`
	ParentPermlink string                 `wire:"3"`
	Body           []byte                 `wire:"4"`
	IPFS           string                 `wire:"5"`
	Magnet         string                 `wire:"6"`
	JSONMeta       []byte                 `wire:"7"`
	Ciphertext     bool                   `wire:"8"`
	PublicKey      [33]byte               `wire:"9"`
	Language       string                 `wire:"10"`
	Community      string                 `wire:"11"`
	Tags           []string               `wire:"12"`
	Reach          objects.ReachTag       `wire:"13"`
	Options        objects.CommentOptions `wire:"14"`
}

func (o Comment) Kind() Kind           { return KindComment }
func (o Comment) ActorAccount() string { return o.Author }

// CommentVote is a curation action; WeightBps is a signed percentage of
// the voter's regenerated voting power (-10000..10000, negative = a
// downvote removing prior weight).
type CommentVote struct {
	Voter    string `wire:"0"`
	Author   string `wire:"1"`
	Permlink string `wire:"2"`
	WeightBps int16  `wire:"3"`
}

func (o CommentVote) Kind() Kind           { return KindCommentVote }
func (o CommentVote) ActorAccount() string { return o.Voter }

// CommentView records a viewer's curation-eligible read of a post.
type CommentView struct {
	Viewer   string `wire:"0"`
	Author   string `wire:"1"`
	Permlink string `wire:"2"`
}

func (o CommentView) Kind() Kind           { return KindCommentView }
func (o CommentView) ActorAccount() string { return o.Viewer }

// CommentShare records a sharer's curation-eligible reshare of a post.
type CommentShare struct {
	Sharer   string `wire:"0"`
	Author   string `wire:"1"`
	Permlink string `wire:"2"`
}

func (o CommentShare) Kind() Kind           { return KindCommentShare }
func (o CommentShare) ActorAccount() string { return o.Sharer }
