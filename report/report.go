package report

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cloudx-io/endoscan/core"
	"github.com/cloudx-io/endoscan/marketapi"
)

const displayPrecision int32 = 2 // scores and totals are shown to 0.01

// Line is the display form of one ranked record.
type Line struct {
	Rank      int             `json:"rank"`
	PriceType core.PriceType  `json:"price_type"`
	Score     decimal.Decimal `json:"endo_per_plat"`
	Total     decimal.Decimal `json:"endo_total"`
	ReRolls   int             `json:"re_rolls"`
	Price     int             `json:"price"`
	AuctionID string          `json:"auction_id"`
	Link      string          `json:"link"`
}

// NewLine derives the display fields of a scored record.
// Total is score × price, so it equals the record's Endo value up to rounding.
func NewLine(rank int, r core.ScoredAuction) Line {
	return Line{
		Rank:      rank,
		PriceType: r.PriceType,
		Score:     displayDecimal(r.Score),
		Total:     displayDecimal(r.Score * float64(r.Price)),
		ReRolls:   r.ReRolls,
		Price:     r.Price,
		AuctionID: r.AuctionID,
		Link:      marketapi.AuctionURL(r.AuctionID),
	}
}

// displayDecimal rounds the exact binary value of v to displayPrecision places,
// matching %.2f rather than rounding the shortest decimal form of v.
func displayDecimal(v float64) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatFloat(v, 'f', int(displayPrecision), 64))
}

// NewLines converts ranked records into display lines, ranks starting at 1.
func NewLines(ranked []core.ScoredAuction) []Line {
	lines := make([]Line, 0, len(ranked))
	for i, r := range ranked {
		lines = append(lines, NewLine(i+1, r))
	}
	return lines
}

// Filters is the display form of a core.FilterConfig.
type Filters struct {
	PriceMode  core.PriceMode    `json:"price_mode"`
	MaxMastery *int              `json:"max_mastery,omitempty"`
	Seller     core.SellerFilter `json:"seller,omitempty"`
}

// Report is the full output of one run.
type Report struct {
	RunID           string                 `json:"run_id"`
	GeneratedAt     time.Time              `json:"generated_at"`
	Filters         Filters                `json:"filters"`
	AuctionsFetched int                    `json:"auctions_fetched"`
	RecordsScored   int                    `json:"records_scored"`
	Excluded        []core.ExcludedAuction `json:"excluded,omitempty"`
	ResultsHash     string                 `json:"results_hash"`
	Results         []Line                 `json:"results"`
}

// New builds the report of a pipeline run over a snapshot of fetched auctions.
func New(runID string, generatedAt time.Time, cfg core.FilterConfig, fetched int, result *core.PipelineResult) *Report {
	return &Report{
		RunID:           runID,
		GeneratedAt:     generatedAt,
		Filters:         Filters{PriceMode: cfg.PriceMode, MaxMastery: cfg.MaxMastery, Seller: cfg.Seller},
		AuctionsFetched: fetched,
		RecordsScored:   result.Scored,
		Excluded:        result.Excluded,
		ResultsHash:     core.ComputeResultsHash(result.Ranked),
		Results:         NewLines(result.Ranked),
	}
}
