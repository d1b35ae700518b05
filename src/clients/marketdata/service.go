// Package marketdata is the live-price oracle: a GLOBAL_QUOTE style HTTP
// client with a TTL cache in front, so repeated recommendations do not
// burn through the provider's rate limit.
package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"investing/src/config"
	"investing/src/utils"
	"investing/src/utils/requests"
)

var (
	ErrTickerNotFound      = errors.New("ticker not found")
	ErrProviderUnavailable = errors.New("market data provider unavailable")
)

type MarketDataClientI interface {
	GetPrice(ctx context.Context, ticker string) (float64, error)
}

type Client struct {
	API     *requests.ExternalAPIService
	BaseURL string
	apiKey  string
	cache   *utils.TTLCache[string, float64]
}

// NewClient creates a new instance of Client
func NewClient(cfg *config.Config) *Client {
	md := cfg.ExternalClients.MarketData
	timeout := time.Duration(md.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ttl := time.Duration(md.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Client{
		API:     requests.NewExternalAPIService(timeout),
		BaseURL: md.BaseURL,
		apiKey:  md.APIKey,
		cache:   utils.NewTTLCache[string, float64](ttl),
	}
}

// GetPrice fetches the current price for a ticker, serving from cache
// while the cached quote is fresh.
func (c *Client) GetPrice(ctx context.Context, ticker string) (float64, error) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	if symbol == "" {
		return 0, ErrTickerNotFound
	}

	if price, ok := c.cache.Get(symbol); ok {
		return price, nil
	}

	params := url.Values{}
	params.Add("function", "GLOBAL_QUOTE")
	params.Add("symbol", symbol)
	params.Add("apikey", c.apiKey)

	resp, err := c.API.Get(ctx, c.BaseURL, params)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	var quoteResponse globalQuoteResponse
	if err = json.Unmarshal(responseBody, &quoteResponse); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if quoteResponse.Note != "" {
		// Rate limited; the retry policy belongs to the caller's caller.
		return 0, fmt.Errorf("%w: %s", ErrProviderUnavailable, quoteResponse.Note)
	}
	if quoteResponse.ErrorMessage != "" {
		return 0, fmt.Errorf("%w: %s", ErrTickerNotFound, symbol)
	}
	if quoteResponse.GlobalQuote.Price == "" {
		return 0, fmt.Errorf("%w: empty quote for %s", ErrProviderUnavailable, symbol)
	}

	price, err := strconv.ParseFloat(quoteResponse.GlobalQuote.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable price %q", ErrProviderUnavailable, quoteResponse.GlobalQuote.Price)
	}

	c.cache.Set(symbol, price)
	return price, nil
}
