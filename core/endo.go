package core

import "math"

// CalculateEndo estimates the Endo a riven dissolves into.
//
// Formula: floor(100*(mastery-8) + |22.5 * 2^modRank| + 200*reRolls - 7)
//
// All arithmetic is done in float64 and the result is floored toward negative
// infinity, so low mastery rivens can yield a negative value.
func CalculateEndo(mastery, modRank, reRolls int) int {
	endo := 100*float64(mastery-8) +
		math.Abs(22.5*math.Pow(2, float64(modRank))) +
		200*float64(reRolls) -
		7
	return int(math.Floor(endo))
}

// AuctionEndo returns the Endo value of the auctioned item.
func AuctionEndo(a Auction) int {
	return CalculateEndo(a.Item.MasteryLevel, a.Item.ModRank, a.Item.ReRolls)
}
