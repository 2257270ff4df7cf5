package core

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestCalculateEndo(t *testing.T) {
	tests := []struct {
		name     string
		mastery  int
		modRank  int
		reRolls  int
		expected int
	}{
		{"baseline mastery 8", 8, 0, 0, 15},
		{"ranked and rerolled", 10, 3, 2, 773},
		{"single rank", 8, 1, 0, 38},
		{"max rank mastery 16", 16, 8, 0, 6553},
		{"below baseline floors toward negative infinity", 7, 0, 0, -85},
		{"all fields missing", 0, 0, 0, -785},
		{"rerolls only", 8, 0, 10, 2015},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check.Equal(t, tt.expected, CalculateEndo(tt.mastery, tt.modRank, tt.reRolls))
		})
	}
}

func TestCalculateEndo_MatchesFormula(t *testing.T) {
	for m := 0; m <= 16; m++ {
		for r := 0; r <= 10; r++ {
			for k := 0; k <= 50; k += 7 {
				expected := int(math.Floor(100*float64(m-8) + 22.5*math.Pow(2, float64(r)) + 200*float64(k) - 7))
				check.Equal(t, expected, CalculateEndo(m, r, k))
			}
		}
	}
}

func TestAuctionEndo(t *testing.T) {
	a := Auction{ID: "a1", Item: AuctionItem{MasteryLevel: 10, ModRank: 3, ReRolls: 2}}
	check.Equal(t, 773, AuctionEndo(a))
}
