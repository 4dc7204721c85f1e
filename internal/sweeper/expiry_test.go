package sweeper_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parametriclabs/policyd/internal/domain"
	"github.com/parametriclabs/policyd/internal/logger"
	"github.com/parametriclabs/policyd/internal/mocks"
	"github.com/parametriclabs/policyd/internal/sweeper"
)

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	sweeper   sweeper.Sweeper
}

// setupTestSweeper creates all the mocks and sweeper for testing
func setupTestSweeper(t *testing.T) *testSweeperMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	config := &sweeper.ExpirySweeperConfig{
		BatchSize:      10,
		WorkerPoolSize: 2,
	}

	tm.sweeper = sweeper.NewExpirySweeper(
		config,
		tm.store,
		tm.publisher,
		tm.clock,
	)

	return tm
}

// tearDownTestSweeper cleans up the test mocks
func tearDownTestSweeper(mocks *testSweeperMocks) {
	mocks.ctrl.Finish()
}

// setupClock wires the standard clock expectations for a sweeper run
func setupClock(tm *testSweeperMocks, now time.Time) {
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Second).AnyTimes()
	// Make After return a channel that fires after a brief delay so the
	// loop does not spin while waiting for Stop
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(50 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()
}

func expiredPolicy(now time.Time) *domain.Policy {
	return &domain.Policy{
		Authority:        domain.Identity(strings.Repeat("aa", 32)),
		PolicyHolder:     domain.Identity(strings.Repeat("bb", 32)),
		OracleFeedID:     domain.Identity(strings.Repeat("fe", 32)),
		TriggerThreshold: 100,
		CoverageAmount:   1000,
		PremiumAmount:    50,
		ExpiryTime:       now.Add(-time.Hour),
		CreatedTime:      now.Add(-48 * time.Hour),
		Status:           domain.StatusExpired,
	}
}

func TestExpirySweeper_Name(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	assert.Equal(t, "policy-expiry-sweeper", mocks.sweeper.Name())
}

func TestExpirySweeper_SweepsAndPublishes(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	ctx := context.Background()
	now := time.Now()
	setupClock(tm, now)

	swept := expiredPolicy(now)

	// First sweep returns one expired policy, subsequent sweeps are empty
	gomock.InOrder(
		tm.store.EXPECT().
			SweepExpired(gomock.Any(), gomock.Any(), 10).
			Return([]*domain.Policy{swept}, nil).
			Times(1),
		tm.store.EXPECT().
			SweepExpired(gomock.Any(), gomock.Any(), 10).
			Return(nil, nil).
			MinTimes(1),
	)

	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.LifecycleEvent) error {
			assert.Equal(t, domain.EventPolicyExpired, event.Type)
			assert.Equal(t, swept.Authority, event.Authority)
			assert.Equal(t, swept.PolicyHolder, event.PolicyHolder)
			assert.Len(t, event.EventID, 26)
			assert.Len(t, event.Record, domain.RecordSize)
			return nil
		}).
		Times(1)

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = tm.sweeper.Stop(ctx)
	}()

	err := tm.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestExpirySweeper_PublishFailureDoesNotStopSweeping(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	ctx := context.Background()
	now := time.Now()
	setupClock(tm, now)

	swept := expiredPolicy(now)

	gomock.InOrder(
		tm.store.EXPECT().
			SweepExpired(gomock.Any(), gomock.Any(), 10).
			Return([]*domain.Policy{swept}, nil).
			Times(1),
		tm.store.EXPECT().
			SweepExpired(gomock.Any(), gomock.Any(), 10).
			Return(nil, nil).
			MinTimes(1),
	)

	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		Return(assert.AnError).
		Times(1)

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = tm.sweeper.Stop(ctx)
	}()

	// The expired status is already committed; a failed publish is logged
	// and the sweeper keeps running
	err := tm.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestExpirySweeper_EmptySweepWaits(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	ctx := context.Background()
	now := time.Now()
	setupClock(tm, now)

	tm.store.EXPECT().
		SweepExpired(gomock.Any(), gomock.Any(), 10).
		Return(nil, nil).
		MinTimes(1)

	go func() {
		time.Sleep(150 * time.Millisecond)
		_ = tm.sweeper.Stop(ctx)
	}()

	err := tm.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestExpirySweeper_StopWhenNotRunning(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	err := tm.sweeper.Stop(context.Background())
	require.NoError(t, err)
}
