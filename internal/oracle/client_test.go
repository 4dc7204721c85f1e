package oracle

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parametriclabs/policyd/internal/domain"
	"github.com/parametriclabs/policyd/internal/mocks"
)

const testBaseURL = "https://oracle.example.com"

func newTestClient(t *testing.T) (*mocks.MockHTTPClient, *mocks.MockClock, PriceSource) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	httpClient := mocks.NewMockHTTPClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	source := NewClient(testBaseURL, time.Minute, httpClient, clock)

	return httpClient, clock, source
}

func stubFeedResponse(httpClient *mocks.MockHTTPClient, url string, resp feedResponse) {
	httpClient.EXPECT().
		Get(gomock.Any(), url, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result any) error {
			*(result.(*feedResponse)) = resp
			return nil
		})
}

func TestReadPrice(t *testing.T) {
	httpClient, clock, source := newTestClient(t)

	feedID := domain.Identity(strings.Repeat("ab", 32))
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)

	stubFeedResponse(httpClient, testBaseURL+"/v1/feeds/"+string(feedID)+"/latest", feedResponse{
		FeedID:      string(feedID),
		Price:       150,
		Conf:        3,
		PublishTime: now.Add(-10 * time.Second).Unix(),
	})

	reading, err := source.ReadPrice(context.Background(), feedID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), reading.Price)
	assert.Equal(t, uint64(3), reading.Confidence)
	assert.True(t, reading.PublishedAt.Equal(now.Add(-10*time.Second)))
}

func TestReadPriceTransportError(t *testing.T) {
	httpClient, _, source := newTestClient(t)

	feedID := domain.Identity(strings.Repeat("ab", 32))
	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	_, err := source.ReadPrice(context.Background(), feedID)
	assert.ErrorIs(t, err, domain.ErrInvalidOracleData)
}

func TestReadPriceStale(t *testing.T) {
	httpClient, clock, source := newTestClient(t)

	feedID := domain.Identity(strings.Repeat("ab", 32))
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)

	stubFeedResponse(httpClient, testBaseURL+"/v1/feeds/"+string(feedID)+"/latest", feedResponse{
		FeedID:      string(feedID),
		Price:       150,
		PublishTime: now.Add(-2 * time.Minute).Unix(),
	})

	_, err := source.ReadPrice(context.Background(), feedID)
	assert.ErrorIs(t, err, domain.ErrInvalidOracleData)
}

func TestReadPriceFeedMismatch(t *testing.T) {
	httpClient, _, source := newTestClient(t)

	feedID := domain.Identity(strings.Repeat("ab", 32))
	stubFeedResponse(httpClient, testBaseURL+"/v1/feeds/"+string(feedID)+"/latest", feedResponse{
		FeedID: strings.Repeat("cd", 32),
		Price:  150,
	})

	_, err := source.ReadPrice(context.Background(), feedID)
	assert.ErrorIs(t, err, domain.ErrInvalidOracleData)
}

func TestReadPriceZeroPriceNonzeroConf(t *testing.T) {
	httpClient, _, source := newTestClient(t)

	feedID := domain.Identity(strings.Repeat("ab", 32))
	stubFeedResponse(httpClient, testBaseURL+"/v1/feeds/"+string(feedID)+"/latest", feedResponse{
		FeedID: string(feedID),
		Price:  0,
		Conf:   5,
	})

	_, err := source.ReadPrice(context.Background(), feedID)
	assert.ErrorIs(t, err, domain.ErrInvalidOracleData)
}

func TestReadPriceNegativePriceIsValid(t *testing.T) {
	httpClient, clock, source := newTestClient(t)

	feedID := domain.Identity(strings.Repeat("ab", 32))
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)

	stubFeedResponse(httpClient, testBaseURL+"/v1/feeds/"+string(feedID)+"/latest", feedResponse{
		FeedID:      string(feedID),
		Price:       -80,
		PublishTime: now.Unix(),
	})

	reading, err := source.ReadPrice(context.Background(), feedID)
	require.NoError(t, err)
	assert.Equal(t, int64(-80), reading.Price)
}
