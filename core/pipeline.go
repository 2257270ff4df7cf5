package core

import "fmt"

// RunPipeline executes the core scoring logic: filter → score → rank.
// It holds no state between calls; the same snapshot and config always yield the
// same result.
//
// Processing flow:
//  1. Validate the filter config
//  2. Reject auctions failing the mastery or seller filters
//  3. Score every eligible, strictly positive price selected by the price mode
//  4. Rank all records by score and keep the top TopResults
func RunPipeline(auctions []Auction, cfg FilterConfig) (*PipelineResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filter config: %w", err)
	}

	scored := make([]ScoredAuction, 0, len(auctions))
	excluded := make([]ExcludedAuction, 0)

	for _, a := range auctions {
		if reason, ok := CheckAuction(a, cfg); !ok {
			excluded = append(excluded, ExcludedAuction{AuctionID: a.ID, Reason: reason})
			continue
		}

		records := scoreEligible(a, cfg.PriceMode)
		if len(records) == 0 {
			excluded = append(excluded, ExcludedAuction{AuctionID: a.ID, Reason: ReasonNoEligiblePrice})
			continue
		}
		scored = append(scored, records...)
	}

	return &PipelineResult{
		Ranked:   RankScoredAuctions(scored, TopResults),
		Scored:   len(scored),
		Excluded: excluded,
	}, nil
}
