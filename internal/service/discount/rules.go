package discount

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/retail-rules/internal/config"
	"github.com/heartmarshall/retail-rules/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// rules holds the discount schedule as decimals.
type rules struct {
	// base percent indexed by LoyaltyTier.Rank; index 0 is unknown tiers
	tiers           [5]decimal.Decimal
	largeOrderTotal decimal.Decimal
	largeOrderBonus decimal.Decimal
	lifetimeTotal   decimal.Decimal
	lifetimeBonus   decimal.Decimal
	maxPercent      decimal.Decimal
}

func newRules(cfg config.DiscountConfig) rules {
	return rules{
		tiers: [5]decimal.Decimal{
			decimal.Zero,
			decimal.NewFromFloat(cfg.BronzePercent),
			decimal.NewFromFloat(cfg.SilverPercent),
			decimal.NewFromFloat(cfg.GoldPercent),
			decimal.NewFromFloat(cfg.PlatinumPercent),
		},
		largeOrderTotal: decimal.NewFromFloat(cfg.LargeOrderTotal),
		largeOrderBonus: decimal.NewFromFloat(cfg.LargeOrderBonus),
		lifetimeTotal:   decimal.NewFromFloat(cfg.LifetimeTotal),
		lifetimeBonus:   decimal.NewFromFloat(cfg.LifetimeBonus),
		maxPercent:      decimal.NewFromFloat(cfg.MaxPercent),
	}
}

// evaluate fills in the percent breakdown and the discounted amount for an
// order total. Thresholds are strict: a total equal to the threshold earns
// no bonus. Unknown tiers earn no base percent.
func (r rules) evaluate(tier domain.LoyaltyTier, total, lifetime decimal.Decimal) domain.DiscountResult {
	res := domain.DiscountResult{
		Tier:           tier,
		OriginalAmount: total,
		LifetimeValue:  lifetime,
		TierPercent:    r.tiers[tier.Rank()],
	}
	if total.GreaterThan(r.largeOrderTotal) {
		res.LargeOrderBonus = r.largeOrderBonus
	}
	if lifetime.GreaterThan(r.lifetimeTotal) {
		res.LifetimeBonus = r.lifetimeBonus
	}

	percent := res.TierPercent.Add(res.LargeOrderBonus).Add(res.LifetimeBonus)
	if percent.GreaterThan(r.maxPercent) {
		percent = r.maxPercent
		res.Capped = true
	}
	res.AppliedPercent = percent
	res.FinalAmount = discounted(total, percent)
	return res
}

// discounted returns total * (1 - percent/100) rounded to cents.
func discounted(total, percent decimal.Decimal) decimal.Decimal {
	return domain.RoundMoney(total.Mul(hundred.Sub(percent)).Div(hundred))
}
