package core

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// ComputeResultsHash computes a digest of a ranked result list.
// Two runs over the same snapshot with the same config produce the same hash.
//
// Formula: SHA256(join(records, "\n")) where each record is
// auction_id + "|" + price_type + "|" + sprintf("%.6f", score) + "|" + price
//
// Scores are formatted to exactly 6 decimal places so the hash does not depend on
// how the float is printed.
func ComputeResultsHash(records []ScoredAuction) string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("%s|%s|%.6f|%d", r.AuctionID, r.PriceType, r.Score, r.Price))
	}
	hash := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return fmt.Sprintf("%x", hash)
}
