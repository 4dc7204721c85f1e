package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/parametriclabs/policyd/internal/adapter"
	"github.com/parametriclabs/policyd/internal/domain"
)

// feedResponse is the wire shape of a price feed's latest reading
type feedResponse struct {
	FeedID      string `json:"feed_id"`
	Price       int64  `json:"price"`
	Conf        uint64 `json:"conf"`
	Expo        int32  `json:"expo"`
	PublishTime int64  `json:"publish_time"`
}

// PriceSource defines an interface for reading the latest price from an
// oracle feed to enable mocking
//
//go:generate mockgen -source=client.go -destination=../mocks/price_source.go -package=mocks -mock_names=PriceSource=MockPriceSource
type PriceSource interface {
	ReadPrice(ctx context.Context, feedID domain.Identity) (domain.PriceReading, error)
}

// client is the concrete implementation of PriceSource
type client struct {
	baseURL     string
	staleWindow time.Duration
	httpClient  adapter.HTTPClient
	clock       adapter.Clock
}

// NewClient creates a new oracle feed client. Readings older than
// staleWindow at read time are rejected as invalid.
func NewClient(baseURL string, staleWindow time.Duration, httpClient adapter.HTTPClient, clock adapter.Clock) PriceSource {
	return &client{
		baseURL:     baseURL,
		staleWindow: staleWindow,
		httpClient:  httpClient,
		clock:       clock,
	}
}

// ReadPrice retrieves the latest reading for a feed and validates it.
// Every failure mode surfaces as ErrInvalidOracleData: callers decide
// per operation whether to proceed, never whether to retry.
func (c *client) ReadPrice(ctx context.Context, feedID domain.Identity) (domain.PriceReading, error) {
	url := fmt.Sprintf("%s/v1/feeds/%s/latest", c.baseURL, feedID)

	var resp feedResponse
	if err := c.httpClient.Get(ctx, url, &resp); err != nil {
		return domain.PriceReading{}, fmt.Errorf("%w: failed to read feed %s: %v", domain.ErrInvalidOracleData, feedID, err)
	}

	if resp.FeedID != "" && resp.FeedID != string(feedID) {
		return domain.PriceReading{}, fmt.Errorf("%w: feed mismatch: requested %s, got %s", domain.ErrInvalidOracleData, feedID, resp.FeedID)
	}

	if resp.Price == 0 && resp.Conf != 0 {
		return domain.PriceReading{}, fmt.Errorf("%w: zero price with nonzero confidence", domain.ErrInvalidOracleData)
	}

	publishedAt := time.Unix(resp.PublishTime, 0).UTC()
	if c.clock.Now().Sub(publishedAt) > c.staleWindow {
		return domain.PriceReading{}, fmt.Errorf("%w: reading published at %s is older than %s", domain.ErrInvalidOracleData, publishedAt, c.staleWindow)
	}

	return domain.PriceReading{
		Price:       resp.Price,
		Confidence:  resp.Conf,
		PublishedAt: publishedAt,
	}, nil
}
