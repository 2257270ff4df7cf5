package marketapi

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/cloudx-io/endoscan/core"
)

// Default warframe.market endpoints and request tags.
const (
	DefaultAuctionsURL = "https://api.warframe.market/v1/auctions"
	DefaultLanguage    = "en"
	DefaultPlatform    = "pc"

	auctionPageBaseURL = "https://warframe.market/auction/"
)

// AuctionsResponse represents the body returned by the auctions endpoint.
// Auctions keep the order in which the market returned them.
type AuctionsResponse struct {
	Payload AuctionsPayload `json:"payload"`
}

// AuctionsPayload wraps the auction list inside AuctionsResponse.
type AuctionsPayload struct {
	Auctions []core.Auction `json:"auctions"`
}

// DecodeAuctions parses an auctions response body.
// Missing numeric fields decode as 0 and missing prices as nil; only malformed
// JSON is an error.
func DecodeAuctions(body []byte) ([]core.Auction, error) {
	var resp AuctionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode auctions response: %w", err)
	}
	if resp.Payload.Auctions == nil {
		return []core.Auction{}, nil
	}
	return resp.Payload.Auctions, nil
}

// AuctionURL returns the detail page of an auction on warframe.market.
func AuctionURL(auctionID string) string {
	return auctionPageBaseURL + url.PathEscape(auctionID)
}
