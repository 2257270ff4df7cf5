package core

import (
	"bytes"
	"encoding/json"
	"math"
)

// SellerState is the availability of an auction owner as reported by the market.
type SellerState string

const (
	SellerStateOffline SellerState = "offline"
	SellerStateOnline  SellerState = "online"
	SellerStateInGame  SellerState = "ingame"
)

// PriceType labels which auction price a score was computed from.
type PriceType string

const (
	PriceTypeBuyout   PriceType = "Buyout Price"
	PriceTypeStarting PriceType = "Starting Price"
)

// AuctionItem describes the riven being auctioned.
type AuctionItem struct {
	MasteryLevel  int    `json:"mastery_level"`
	ModRank       int    `json:"mod_rank"`
	ReRolls       int    `json:"re_rolls"`
	Name          string `json:"name,omitempty"`
	WeaponURLName string `json:"weapon_url_name,omitempty"`
}

// AuctionOwner describes the seller of an auction.
type AuctionOwner struct {
	Status     SellerState `json:"status"`
	IngameName string      `json:"ingame_name,omitempty"`
}

// Auction represents a single market listing.
// Prices are in platinum; a nil price means the auction does not offer that price.
type Auction struct {
	ID            string       `json:"id"`
	Item          AuctionItem  `json:"item"`
	BuyoutPrice   *int         `json:"buyout_price"`
	StartingPrice *int         `json:"starting_price"`
	Owner         AuctionOwner `json:"owner"`
}

// UnmarshalJSON decodes an auction without failing on a malformed price.
// Integral numbers such as 10.0 are accepted; a fractional, non-numeric or
// out of range price decodes as nil.
func (a *Auction) UnmarshalJSON(data []byte) error {
	type Alias Auction
	aux := struct {
		*Alias
		BuyoutPrice   json.RawMessage `json:"buyout_price"`
		StartingPrice json.RawMessage `json:"starting_price"`
	}{Alias: (*Alias)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.BuyoutPrice = decodePrice(aux.BuyoutPrice)
	a.StartingPrice = decodePrice(aux.StartingPrice)
	return nil
}

func decodePrice(raw json.RawMessage) *int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return nil
	}
	price := int(v)
	return &price
}

// ScoredAuction is one priced view of an auction together with its Endo per platinum score.
// An auction offering both prices can produce two ScoredAuctions.
type ScoredAuction struct {
	PriceType PriceType `json:"price_type"`
	Score     float64   `json:"score"`
	Endo      int       `json:"endo"`
	ReRolls   int       `json:"re_rolls"`
	Price     int       `json:"price"`
	AuctionID string    `json:"auction_id"`
}

// ExcludedAuction represents an auction that produced no scored record.
type ExcludedAuction struct {
	AuctionID string `json:"auction_id"`
	Reason    string `json:"reason"`
}

// Exclusion reasons reported in ExcludedAuction.Reason.
const (
	ReasonMasteryAboveLimit = "mastery_above_limit"
	ReasonSellerUnavailable = "seller_unavailable"
	ReasonNoEligiblePrice   = "no_eligible_price"
)

// PipelineResult contains the complete results of scoring a snapshot.
type PipelineResult struct {
	// Ranked holds the best records, highest score first
	Ranked []ScoredAuction

	// Scored is the number of records produced before truncation
	Scored int

	// Excluded lists auctions that were filtered out or had no usable price
	Excluded []ExcludedAuction
}
