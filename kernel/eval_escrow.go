package kernel

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/balance"
	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
	"github.com/weyoume/wenode-sub002/undo"
)

func (c *Chain) evalEscrowTransfer(sess *undo.Session, o ops.EscrowTransfer) error {
	for _, who := range []string{o.To, o.Agent} {
		if err := c.requireAccount(who); err != nil {
			return err
		}
	}
	if _, exists := c.EscrowByFromID.Find(OwnerID{o.From, o.ID}); exists {
		return fmt.Errorf("%w: escrow %s/%d already exists", kernelerr.ErrInvariant, o.From, o.ID)
	}
	total, err := o.Amount.Add(o.Fee)
	if err != nil {
		return err
	}
	if err := c.Bal.Adjust(sess, o.From, o.Symbol, balance.Liquid, objects.Neg(total)); err != nil {
		return err
	}
	c.Escrows.Create(sess, func(e *objects.Escrow) {
		e.From = o.From
		e.To = o.To
		e.Agent = o.Agent
		e.ID = o.ID
		e.Symbol = o.Symbol
		e.Amount = o.Amount
		e.Fee = o.Fee
		e.Expiration = o.Expiration
		e.Approved = make(map[string]bool)
	})
	return nil
}

func (c *Chain) findEscrow(from string, id uint64) (*objects.Escrow, error) {
	e, ok := c.EscrowByFromID.Find(OwnerID{from, id})
	if !ok {
		return nil, fmt.Errorf("%w: escrow %s/%d", kernelerr.ErrNotFound, from, id)
	}
	return e, nil
}

func (c *Chain) evalEscrowApprove(sess *undo.Session, o ops.EscrowApprove) error {
	e, err := c.findEscrow(o.From, o.ID)
	if err != nil {
		return err
	}
	if o.Who != e.To && o.Who != e.Agent {
		return fmt.Errorf("%w: %s is not a party to escrow %s/%d", kernelerr.ErrUnauthorized, o.Who, o.From, o.ID)
	}
	c.Escrows.Modify(sess, e, func(esc *objects.Escrow) {
		if esc.Approved == nil {
			esc.Approved = make(map[string]bool)
		}
		esc.Approved[o.Who] = o.Approve
	})
	return nil
}

func (c *Chain) evalEscrowDispute(sess *undo.Session, o ops.EscrowDispute) error {
	e, err := c.findEscrow(o.From, o.ID)
	if err != nil {
		return err
	}
	if o.Who != e.From && o.Who != e.To {
		return fmt.Errorf("%w: %s is not a party to escrow %s/%d", kernelerr.ErrUnauthorized, o.Who, o.From, o.ID)
	}
	if c.Now > e.Expiration {
		return fmt.Errorf("%w: escrow past expiration, can no longer be disputed", kernelerr.ErrExpired)
	}
	c.Escrows.Modify(sess, e, func(esc *objects.Escrow) { esc.Disputed = true })
	return nil
}

func (c *Chain) evalEscrowRelease(sess *undo.Session, o ops.EscrowRelease) error {
	e, err := c.findEscrow(o.From, o.ID)
	if err != nil {
		return err
	}
	if o.Receiver != e.From && o.Receiver != e.To {
		return fmt.Errorf("%w: release receiver must be a party to the escrow", kernelerr.ErrInvariant)
	}
	if e.Disputed {
		if o.Who != e.Agent {
			return fmt.Errorf("%w: only the agent may release a disputed escrow", kernelerr.ErrUnauthorized)
		}
	} else if o.Who != e.From && o.Who != e.To {
		return fmt.Errorf("%w: %s is not a party to escrow %s/%d", kernelerr.ErrUnauthorized, o.Who, o.From, o.ID)
	} else if !e.Approved[e.To] {
		return fmt.Errorf("%w: escrow release requires the recipient's approval", kernelerr.ErrPrecondition)
	}
	if o.Amount.Cmp(e.Amount) > 0 {
		return fmt.Errorf("%w: release amount exceeds escrowed balance", kernelerr.ErrPrecondition)
	}
	if err := c.Bal.Adjust(sess, o.Receiver, e.Symbol, balance.Liquid, objects.Pos(o.Amount)); err != nil {
		return err
	}
	remaining, err := e.Amount.Sub(o.Amount)
	if err != nil {
		return err
	}
	if remaining.IsZero() {
		if err := c.Bal.Adjust(sess, e.Agent, e.Symbol, balance.Liquid, objects.Pos(e.Fee)); err != nil {
			return err
		}
		c.Escrows.Remove(sess, e)
		return nil
	}
	c.Escrows.Modify(sess, e, func(esc *objects.Escrow) { esc.Amount = remaining })
	return nil
}
