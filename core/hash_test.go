package core

import (
	"crypto/sha256"
	"fmt"
	"testing"
)

func TestComputeResultsHash(t *testing.T) {
	records := []ScoredAuction{
		{PriceType: PriceTypeBuyout, Score: 10, Price: 10, AuctionID: "a1"},
		{PriceType: PriceTypeStarting, Score: 0.5, Price: 100, AuctionID: "b2"},
	}

	hash := ComputeResultsHash(records)

	// Verify hash is 64 characters (SHA256 hex encoding)
	if len(hash) != 64 {
		t.Errorf("ComputeResultsHash() hash length = %d, want 64", len(hash))
	}

	// Same inputs should produce same hash (deterministic)
	if hash2 := ComputeResultsHash(records); hash != hash2 {
		t.Errorf("ComputeResultsHash() not deterministic")
	}

	// Verify exact hash calculation
	expectedData := "a1|Buyout Price|10.000000|10\nb2|Starting Price|0.500000|100"
	expectedHash := fmt.Sprintf("%x", sha256.Sum256([]byte(expectedData)))
	if hash != expectedHash {
		t.Errorf("ComputeResultsHash() = %v, want %v", hash, expectedHash)
	}
}

func TestComputeResultsHash_OrderMatters(t *testing.T) {
	a := ScoredAuction{PriceType: PriceTypeBuyout, Score: 2, Price: 5, AuctionID: "a"}
	b := ScoredAuction{PriceType: PriceTypeBuyout, Score: 1, Price: 5, AuctionID: "b"}

	if ComputeResultsHash([]ScoredAuction{a, b}) == ComputeResultsHash([]ScoredAuction{b, a}) {
		t.Errorf("Reordered results should produce different hashes")
	}
}

func TestComputeResultsHash_ScoreFormatting(t *testing.T) {
	// Scores equal to 6 decimal places hash the same
	hash1 := ComputeResultsHash([]ScoredAuction{{AuctionID: "x", Score: 1.2345671}})
	hash2 := ComputeResultsHash([]ScoredAuction{{AuctionID: "x", Score: 1.2345674}})

	if hash1 != hash2 {
		t.Errorf("Scores with same 6 decimal places should produce same hash")
	}
}

func TestComputeResultsHash_Empty(t *testing.T) {
	expected := fmt.Sprintf("%x", sha256.Sum256([]byte("")))
	if got := ComputeResultsHash(nil); got != expected {
		t.Errorf("ComputeResultsHash(nil) = %v, want %v", got, expected)
	}
}
