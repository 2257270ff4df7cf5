package marketapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/cloudx-io/endoscan/core"
)

// DefaultTimeout bounds a single auctions request.
const DefaultTimeout = 30 * time.Second

// Client fetches auction snapshots from warframe.market.
type Client struct {
	endpoint string
	language string
	platform string
	http     *resty.Client
	logger   zerolog.Logger
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithLanguage sets the language header sent with each request.
func WithLanguage(language string) ClientOption {
	return func(c *Client) {
		c.language = language
	}
}

// WithPlatform sets the platform header sent with each request.
func WithPlatform(platform string) ClientOption {
	return func(c *Client) {
		c.platform = platform
	}
}

// WithTimeout sets the request timeout. Zero disables it.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the given auctions endpoint.
// An empty endpoint uses DefaultAuctionsURL.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	if endpoint == "" {
		endpoint = DefaultAuctionsURL
	}

	client := resty.New()
	client.SetTimeout(DefaultTimeout)

	c := &Client{
		endpoint: endpoint,
		language: DefaultLanguage,
		platform: DefaultPlatform,
		http:     client,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL the client fetches from.
func (c *Client) Endpoint() string { return c.endpoint }

// FetchAuctions performs one GET of the auctions endpoint and decodes the snapshot.
// A non-200 response is returned as *FetchError without parsing the body.
func (c *Client) FetchAuctions(ctx context.Context) ([]core.Auction, error) {
	start := time.Now()
	c.logger.Debug().Str("url", c.endpoint).Str("platform", c.platform).Msg("fetching auctions")

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(map[string]string{
			"accept":       "application/json",
			"content-type": "application/json",
			"language":     c.language,
			"platform":     c.platform,
		}).
		Get(c.endpoint)
	if err != nil {
		c.logger.Error().Err(err).Str("url", c.endpoint).Msg("auctions request failed")
		return nil, &FetchError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode()).Str("url", c.endpoint).Msg("unexpected auctions status")
		return nil, &FetchError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	auctions, err := DecodeAuctions(resp.Body())
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Int("auctions", len(auctions)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched auctions")
	return auctions, nil
}
