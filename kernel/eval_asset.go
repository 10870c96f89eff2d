package kernel

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/amm"
	"github.com/weyoume/wenode-sub002/balance"
	"github.com/weyoume/wenode-sub002/feed"
	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
	"github.com/weyoume/wenode-sub002/undo"
)

// seedLiquidityAmount is the fixed core/quote seed deposited into a new
// asset's core liquidity pool at creation.
var seedLiquidityAmount = objects.NewAmount(10)

// defaultMaintenanceCollateralBps is the MCR applied to a newly-created
// bitasset until its issuer raises it via AssetUpdate. 175% — the
// conventional BitShares-family floor — is fixed here as the default.
const defaultMaintenanceCollateralBps = 17500

func (c *Chain) evalAssetCreate(sess *undo.Session, o ops.AssetCreate) error {
	if err := c.requireAccount(o.Issuer); err != nil {
		return err
	}
	if _, exists := c.AssetsBySymbol.Find(o.Symbol); exists {
		return fmt.Errorf("%w: asset %s already exists", kernelerr.ErrInvariant, o.Symbol)
	}

	asset := c.Assets.Create(sess, func(a *objects.Asset) {
		a.Symbol = o.Symbol
		a.Kind = o.AssetKind
		a.Issuer = o.Issuer
		a.MaxSupply = o.MaxSupply
		a.Precision = o.Precision
		a.StakeIntervals = o.StakeIntervals
		a.UnstakeIntervals = o.UnstakeIntervals
		a.MarketFeePercent = o.MarketFeePercent
		a.Permissions = o.Permissions
		a.Flags = o.Flags
		if o.AssetKind == objects.AssetBitasset {
			a.Bitasset = &objects.BitassetData{
				BackingAsset:          o.BackingAsset,
				FeedProducers:         make(map[string]bool),
				MaintenanceCollateral: defaultMaintenanceCollateralBps,
				ForceSettleDelaySec:   24 * 60 * 60,
			}
		}
	})

	return c.seedAssetPools(sess, asset)
}

// seedAssetPools seeds a freshly-created asset's core and credit pools.
// The core asset itself (CoreSymbol) is exempted, since it cannot seed
// liquidity against itself.
func (c *Chain) seedAssetPools(sess *undo.Session, asset *objects.Asset) error {
	if asset.Symbol == CoreSymbol {
		return nil
	}
	if _, exists := c.PoolByPair.Find(Pair{CoreSymbol, asset.Symbol}); !exists {
		if err := c.Bal.Adjust(sess, asset.Issuer, CoreSymbol, balance.Liquid, objects.Neg(seedLiquidityAmount)); err != nil {
			return err
		}
		if err := c.Bal.Adjust(sess, asset.Issuer, asset.Symbol, balance.Liquid, objects.Neg(seedLiquidityAmount)); err != nil {
			return err
		}
		lpSymbol := "LP." + CoreSymbol + "." + asset.Symbol
		pool := c.LiquidityPools.Create(sess, func(p *objects.LiquidityPool) {
			p.SymbolA = CoreSymbol
			p.SymbolB = asset.Symbol
			p.BalanceA = seedLiquidityAmount
			p.BalanceB = seedLiquidityAmount
			p.LPSymbol = lpSymbol
		})
		lpShares, err := amm.LPSupplyForDeposit(pool, seedLiquidityAmount)
		if err != nil {
			return err
		}
		c.LiquidityPools.Modify(sess, pool, func(p *objects.LiquidityPool) { p.LPSupply = lpShares })
		if err := c.Bal.Adjust(sess, asset.Issuer, lpSymbol, balance.Liquid, objects.Pos(lpShares)); err != nil {
			return err
		}
	}
	if _, exists := c.CreditByBase.Find(asset.Symbol); !exists {
		c.CreditPools.Create(sess, func(p *objects.CreditPool) {
			p.BaseSymbol = asset.Symbol
			p.SatelliteSymbol = "CREDIT." + asset.Symbol
		})
	}
	return nil
}

func (c *Chain) evalAssetUpdate(sess *undo.Session, o ops.AssetUpdate) error {
	asset, ok := c.AssetsBySymbol.Find(o.Symbol)
	if !ok {
		return fmt.Errorf("%w: asset %s", kernelerr.ErrNotFound, o.Symbol)
	}
	if asset.Issuer != o.Issuer {
		return fmt.Errorf("%w: only the issuer may update %s", kernelerr.ErrUnauthorized, o.Symbol)
	}
	c.Assets.Modify(sess, asset, func(a *objects.Asset) {
		a.Flags = o.NewFlags
		a.MarketFeePercent = o.MarketFeePercent
	})
	return nil
}

func (c *Chain) evalAssetIssue(sess *undo.Session, o ops.AssetIssue) error {
	asset, ok := c.AssetsBySymbol.Find(o.Symbol)
	if !ok {
		return fmt.Errorf("%w: asset %s", kernelerr.ErrNotFound, o.Symbol)
	}
	if asset.Issuer != o.Issuer {
		return fmt.Errorf("%w: only the issuer may issue %s", kernelerr.ErrUnauthorized, o.Symbol)
	}
	if err := c.requireAccount(o.To); err != nil {
		return err
	}
	newTotal, err := asset.Dynamic.Total.Add(o.Amount)
	if err != nil {
		return err
	}
	if !asset.MaxSupply.IsZero() && newTotal.Cmp(asset.MaxSupply) > 0 {
		return fmt.Errorf("%w: issuing %s would exceed max supply", kernelerr.ErrPrecondition, o.Symbol)
	}
	return c.Bal.Adjust(sess, o.To, o.Symbol, balance.Liquid, objects.Pos(o.Amount))
}

func (c *Chain) evalAssetReserve(sess *undo.Session, o ops.AssetReserve) error {
	return c.Bal.Adjust(sess, o.Account, o.Symbol, balance.Liquid, objects.Neg(o.Amount))
}

func (c *Chain) requireBitasset(symbol string) (*objects.Asset, error) {
	asset, ok := c.AssetsBySymbol.Find(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: asset %s", kernelerr.ErrNotFound, symbol)
	}
	if asset.Bitasset == nil {
		return nil, fmt.Errorf("%w: %s is not a bitasset", kernelerr.ErrInvariant, symbol)
	}
	return asset, nil
}

func (c *Chain) evalUpdateFeedProducers(sess *undo.Session, o ops.UpdateFeedProducers) error {
	asset, err := c.requireBitasset(o.Symbol)
	if err != nil {
		return err
	}
	if asset.Issuer != o.Issuer {
		return fmt.Errorf("%w: only the issuer may set feed producers for %s", kernelerr.ErrUnauthorized, o.Symbol)
	}
	producers := make(map[string]bool, len(o.Producers))
	for _, p := range o.Producers {
		producers[p] = true
	}
	c.Assets.Modify(sess, asset, func(a *objects.Asset) { a.Bitasset.FeedProducers = producers })
	return nil
}

func (c *Chain) evalPublishFeed(sess *undo.Session, o ops.PublishFeed) error {
	asset, err := c.requireBitasset(o.Symbol)
	if err != nil {
		return err
	}
	if !asset.Bitasset.FeedProducers[o.Publisher] {
		return fmt.Errorf("%w: %s is not an authorized feed producer", kernelerr.ErrUnauthorized, o.Publisher)
	}
	c.Assets.Modify(sess, asset, func(a *objects.Asset) {
		_ = feed.Publish(a.Bitasset, o.Publisher, o.Price, c.Now)
		a.Bitasset.CurrentFeed = objects.PriceFeed{
			Published: c.Now,
			Price:     feed.Median(a.Bitasset.Feed, c.Now, feed.DefaultFeedMaxAgeSeconds),
		}
	})
	return nil
}

// evalSettle queues a forced settlement of the caller's bitasset holdings
// at the bitasset's force_settle_delay.
func (c *Chain) evalSettle(sess *undo.Session, o ops.Settle) error {
	asset, err := c.requireBitasset(o.Symbol)
	if err != nil {
		return err
	}
	if asset.Permissions&objects.PermDisableForceSettle != 0 {
		return fmt.Errorf("%w: forced settlement disabled for %s", kernelerr.ErrPrecondition, o.Symbol)
	}
	if err := c.Bal.Adjust(sess, o.Account, o.Symbol, balance.Liquid, objects.Neg(o.Amount)); err != nil {
		return err
	}
	req := feed.QueueForcedSettlement(o.Account, o.Amount, c.Now, asset.Bitasset.ForceSettleDelaySec)
	c.ForcedSettlements.Create(sess, func(r *objects.ForcedSettlementRequest) {
		r.Owner = req.Owner
		r.Symbol = o.Symbol
		r.Amount = req.Amount
		r.QueuedAt = req.QueuedAt
		r.ExecutesAt = req.ExecutesAt
	})
	return nil
}

// evalGlobalSettle force-settles every outstanding call order of a
// bitasset at the current feed price.
func (c *Chain) evalGlobalSettle(sess *undo.Session, o ops.GlobalSettle) error {
	asset, err := c.requireBitasset(o.Symbol)
	if err != nil {
		return err
	}
	if asset.Issuer != o.Issuer {
		return fmt.Errorf("%w: only the issuer may globally settle %s", kernelerr.ErrUnauthorized, o.Symbol)
	}
	if asset.Permissions&objects.PermGlobalSettle == 0 {
		return fmt.Errorf("%w: global settlement disabled for %s", kernelerr.ErrPrecondition, o.Symbol)
	}
	calls := c.CallByDebtSymbol.Range(func(k string) bool { return k == o.Symbol })
	totalCollateral := objects.ZeroAmount()
	for _, call := range calls {
		totalCollateral, _ = totalCollateral.Add(call.Collateral)
		c.CallOrders.Remove(sess, call)
	}
	settlement := feed.Settle(asset.Bitasset.CurrentFeed.Price, totalCollateral)
	c.Assets.Modify(sess, asset, func(a *objects.Asset) {
		a.Bitasset.GloballySettled = true
		a.Bitasset.SettlementPrice = settlement.SettlementPrice
		a.Bitasset.SettlementFund = settlement.SettlementFund
	})
	return nil
}

// evalCollateralBid offers collateral toward reviving a globally-settled
// bitasset; maintenance checks RevivalMet against the accumulated bids.
func (c *Chain) evalCollateralBid(sess *undo.Session, o ops.CollateralBid) error {
	asset, err := c.requireBitasset(o.Symbol)
	if err != nil {
		return err
	}
	if !asset.Bitasset.GloballySettled {
		return fmt.Errorf("%w: %s is not globally settled", kernelerr.ErrPrecondition, o.Symbol)
	}
	if err := c.Bal.Adjust(sess, o.Bidder, asset.Bitasset.BackingAsset, balance.Liquid, objects.Neg(o.Collateral)); err != nil {
		return err
	}
	c.CollateralBids.Create(sess, func(r *objects.CollateralBidRecord) {
		r.Bidder = o.Bidder
		r.Symbol = o.Symbol
		r.Collateral = o.Collateral
		r.Debt = o.Debt
	})
	return nil
}
