package kernel

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
	"github.com/weyoume/wenode-sub002/producer"
	"github.com/weyoume/wenode-sub002/undo"
)

// maxCustomPayloadBytes bounds an opaque Custom/CustomJSON payload (spec
// §4.3's Custom group: "validates nothing about Data beyond a size bound").
const maxCustomPayloadBytes = 8192

func (c *Chain) evalProducerUpdate(sess *undo.Session, o ops.ProducerUpdate) error {
	if err := c.requireAccount(o.Account); err != nil {
		return err
	}
	if rec, ok := c.ProducerByAccount.Find(o.Account); ok {
		c.Producers.Modify(sess, rec, func(p *objects.Producer) {
			p.SigningKey = o.SigningKey
			p.PropsVote = o.PropsVote
		})
		return nil
	}
	c.Producers.Create(sess, func(p *objects.Producer) {
		p.Account = o.Account
		p.SigningKey = o.SigningKey
		p.PropsVote = o.PropsVote
	})
	return nil
}

// evalProofOfWork accepts a mining solution and registers the submitter as
// a producer candidate with mining power 1 if not already one, or adds to an
// existing producer's mining power. The submitter's account must already
// exist; no account is created and no reward is paid.
func (c *Chain) evalProofOfWork(sess *undo.Session, o ops.ProofOfWork) error {
	if err := c.requireAccount(o.Account); err != nil {
		return err
	}
	var target [32]byte
	for i := range target {
		target[i] = 0xff // no network-difficulty adjustment modeled; spec names no target schedule
	}
	if !producer.DifficultyMet(o.Hash, target) {
		return fmt.Errorf("%w: proof-of-work solution does not meet network target", kernelerr.ErrConsensus)
	}
	rec, ok := c.ProducerByAccount.Find(o.Account)
	if !ok {
		c.Producers.Create(sess, func(p *objects.Producer) {
			p.Account = o.Account
			p.SigningKey = o.SigningKey
			p.MiningPower = objects.NewAmount(1)
		})
		return nil
	}
	c.Producers.Modify(sess, rec, func(p *objects.Producer) {
		p.MiningPower, _ = p.MiningPower.Add(objects.NewAmount(1))
	})
	return nil
}

func (c *Chain) requireProducer(account string) (*objects.Producer, error) {
	rec, ok := c.ProducerByAccount.Find(account)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a registered producer", kernelerr.ErrNotFound, account)
	}
	return rec, nil
}

func (c *Chain) evalVerifyBlock(sess *undo.Session, o ops.VerifyBlock) error {
	_, err := c.requireProducer(o.Producer)
	return err
}

// evalCommitBlock records producer's commitment to height in the
// verification tracker and stamps the producer's LastCommit. Any registered
// producer may commit. The tracker's threshold-crossing result is discarded:
// the chain keeps no irreversible height.
func (c *Chain) evalCommitBlock(sess *undo.Session, o ops.CommitBlock) error {
	rec, err := c.requireProducer(o.Producer)
	if err != nil {
		return err
	}
	c.Verifications.Commit(o.Height, o.Producer)
	c.Producers.Modify(sess, rec, func(p *objects.Producer) { p.LastCommit = c.Now })
	return nil
}

// evalProducerViolation validates equivocation evidence and slashes the
// offending producer's full vote stake.
func (c *Chain) evalProducerViolation(sess *undo.Session, o ops.ProducerViolation) error {
	offender, err := c.requireProducer(o.Producer)
	if err != nil {
		return err
	}
	if err := producer.Validate(producer.ViolationEvidence{
		Producer:  o.Producer,
		Height:    o.Height,
		DigestOne: o.DigestOne,
		DigestTwo: o.DigestTwo,
	}); err != nil {
		return err
	}
	slashed, err := producer.Slash(offender.VoteStake)
	if err != nil {
		return err
	}
	c.Producers.Modify(sess, offender, func(p *objects.Producer) {
		p.VoteStake = slashed
		p.TotalMissed++
	})
	return nil
}

// evalCustom and evalCustomJSON accept an opaque plugin-routed payload; the
// kernel never interprets Data/JSON beyond the size bound — external
// interpreter plugins are out of scope.
func (c *Chain) evalCustom(sess *undo.Session, o ops.Custom) error {
	if err := c.requireAccount(o.Account); err != nil {
		return err
	}
	if len(o.Data) > maxCustomPayloadBytes {
		return fmt.Errorf("%w: custom payload exceeds %d bytes", kernelerr.ErrPrecondition, maxCustomPayloadBytes)
	}
	return nil
}

func (c *Chain) evalCustomJSON(sess *undo.Session, o ops.CustomJSON) error {
	for _, signer := range o.Signers {
		if err := c.requireAccount(signer); err != nil {
			return err
		}
	}
	if len(o.JSON) > maxCustomPayloadBytes {
		return fmt.Errorf("%w: custom_json payload exceeds %d bytes", kernelerr.ErrPrecondition, maxCustomPayloadBytes)
	}
	return nil
}
