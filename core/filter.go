package core

import "fmt"

// PriceMode selects which auction price fields are scored.
type PriceMode string

const (
	PriceModeStarting PriceMode = "Starting"
	PriceModeBuyout   PriceMode = "Buyout"
	PriceModeBoth     PriceMode = "Both"
)

func (m PriceMode) includesBuyout() bool   { return m == PriceModeBuyout || m == PriceModeBoth }
func (m PriceMode) includesStarting() bool { return m == PriceModeStarting || m == PriceModeBoth }

// SellerFilter restricts auctions by the owner's availability.
// The zero value applies no restriction.
type SellerFilter string

const (
	SellerUnfiltered SellerFilter = ""
	SellerInGame     SellerFilter = "InGame"
	SellerOnline     SellerFilter = "Online"
	SellerBoth       SellerFilter = "Both"
)

// Allows reports whether an owner in the given state passes the filter.
// Online and Both accept the same states: offline sellers are always rejected.
func (f SellerFilter) Allows(state SellerState) bool {
	switch f {
	case SellerUnfiltered:
		return true
	case SellerInGame:
		return state == SellerStateInGame
	case SellerOnline, SellerBoth:
		return state == SellerStateOnline || state == SellerStateInGame
	default:
		return false
	}
}

// FilterConfig is the set of inclusion criteria for one run.
type FilterConfig struct {
	PriceMode PriceMode

	// MaxMastery is the highest accepted mastery requirement; nil means no bound
	MaxMastery *int

	Seller SellerFilter
}

// Validate returns an error if the config holds a value outside its enumeration.
func (c FilterConfig) Validate() error {
	switch c.PriceMode {
	case PriceModeStarting, PriceModeBuyout, PriceModeBoth:
	default:
		return fmt.Errorf("unknown price mode %q", c.PriceMode)
	}
	switch c.Seller {
	case SellerUnfiltered, SellerInGame, SellerOnline, SellerBoth:
	default:
		return fmt.Errorf("unknown seller filter %q", c.Seller)
	}
	if c.MaxMastery != nil && *c.MaxMastery < 0 {
		return fmt.Errorf("invalid negative max mastery %d", *c.MaxMastery)
	}
	return nil
}

// CheckAuction applies the mastery and seller filters.
// Returns ok=false and the exclusion reason when the auction is rejected.
func CheckAuction(a Auction, cfg FilterConfig) (reason string, ok bool) {
	if cfg.MaxMastery != nil && a.Item.MasteryLevel > *cfg.MaxMastery {
		return ReasonMasteryAboveLimit, false
	}
	if !cfg.Seller.Allows(a.Owner.Status) {
		return ReasonSellerUnavailable, false
	}
	return "", true
}

// ScoreAuction returns the scored records an auction produces under cfg.
// A price is only scored when present and strictly positive. Buyout is
// evaluated before starting price.
func ScoreAuction(a Auction, cfg FilterConfig) []ScoredAuction {
	if _, ok := CheckAuction(a, cfg); !ok {
		return nil
	}
	return scoreEligible(a, cfg.PriceMode)
}

// scoreEligible scores an auction that already passed CheckAuction.
func scoreEligible(a Auction, mode PriceMode) []ScoredAuction {
	endo := AuctionEndo(a)
	out := make([]ScoredAuction, 0, 2)

	if mode.includesBuyout() && hasPositivePrice(a.BuyoutPrice) {
		out = append(out, newScoredAuction(a, endo, PriceTypeBuyout, *a.BuyoutPrice))
	}
	if mode.includesStarting() && hasPositivePrice(a.StartingPrice) {
		out = append(out, newScoredAuction(a, endo, PriceTypeStarting, *a.StartingPrice))
	}
	return out
}

func hasPositivePrice(price *int) bool {
	return price != nil && *price > 0
}

func newScoredAuction(a Auction, endo int, priceType PriceType, price int) ScoredAuction {
	return ScoredAuction{
		PriceType: priceType,
		Score:     float64(endo) / float64(price),
		Endo:      endo,
		ReRolls:   a.Item.ReRolls,
		Price:     price,
		AuctionID: a.ID,
	}
}
