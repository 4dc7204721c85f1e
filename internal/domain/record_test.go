package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() *Policy {
	return &Policy{
		Authority:        Identity(strings.Repeat("aa", 32)),
		PolicyHolder:     Identity(strings.Repeat("bb", 32)),
		OracleFeedID:     Identity(strings.Repeat("cc", 32)),
		TriggerThreshold: -50,
		CoverageAmount:   1000,
		PremiumAmount:    50,
		ExpiryTime:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CreatedTime:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Status:           StatusActive,
	}
}

func TestEncodeRecordFixedFootprint(t *testing.T) {
	p := testPolicy()

	data, err := EncodeRecord(p)
	require.NoError(t, err)
	assert.Len(t, data, RecordSize)

	// Optional fields change flags, never the footprint.
	purchased := p.CreatedTime.Add(time.Hour)
	price := int64(-80)
	p.Status = StatusTriggeredPayout
	p.PurchasedTime = &purchased
	triggered := purchased.Add(time.Hour)
	p.TriggeredTime = &triggered
	p.TriggerPrice = &price

	data, err = EncodeRecord(p)
	require.NoError(t, err)
	assert.Len(t, data, RecordSize)
}

func TestRecordRoundTrip(t *testing.T) {
	p := testPolicy()
	purchased := p.CreatedTime.Add(time.Hour)
	triggered := purchased.Add(2 * time.Hour)
	price := int64(-80)
	p.Status = StatusTriggeredPayout
	p.PurchasedTime = &purchased
	p.TriggeredTime = &triggered
	p.TriggerPrice = &price

	data, err := EncodeRecord(p)
	require.NoError(t, err)

	decoded, err := DecodeRecord(data)
	require.NoError(t, err)

	assert.Equal(t, p.Authority, decoded.Authority)
	assert.Equal(t, p.PolicyHolder, decoded.PolicyHolder)
	assert.Equal(t, p.OracleFeedID, decoded.OracleFeedID)
	assert.Equal(t, p.TriggerThreshold, decoded.TriggerThreshold)
	assert.Equal(t, p.CoverageAmount, decoded.CoverageAmount)
	assert.Equal(t, p.PremiumAmount, decoded.PremiumAmount)
	assert.True(t, p.ExpiryTime.Equal(decoded.ExpiryTime))
	assert.True(t, p.CreatedTime.Equal(decoded.CreatedTime))
	require.NotNil(t, decoded.PurchasedTime)
	assert.True(t, purchased.Equal(*decoded.PurchasedTime))
	require.NotNil(t, decoded.TriggeredTime)
	assert.True(t, triggered.Equal(*decoded.TriggeredTime))
	assert.Nil(t, decoded.PayoutTime)
	assert.Nil(t, decoded.CancelledTime)
	require.NotNil(t, decoded.TriggerPrice)
	assert.Equal(t, price, *decoded.TriggerPrice)
	assert.Equal(t, StatusTriggeredPayout, decoded.Status)
}

func TestDecodeRecordRejectsMalformedInput(t *testing.T) {
	p := testPolicy()
	data, err := EncodeRecord(p)
	require.NoError(t, err)

	_, err = DecodeRecord(data[:RecordSize-1])
	assert.Error(t, err)

	// Unknown layout version
	bad := append([]byte(nil), data...)
	bad[RecordSize-1] = 99
	_, err = DecodeRecord(bad)
	assert.Error(t, err)

	// Unknown status byte
	bad = append([]byte(nil), data...)
	bad[RecordSize-2] = 42
	_, err = DecodeRecord(bad)
	assert.Error(t, err)

	// Corrupt present flag
	bad = append([]byte(nil), data...)
	bad[3*32+5*8] = 7
	_, err = DecodeRecord(bad)
	assert.Error(t, err)
}

func TestEncodeRecordRejectsMalformedPolicy(t *testing.T) {
	p := testPolicy()
	p.Authority = "not-an-identity"
	_, err := EncodeRecord(p)
	assert.Error(t, err)

	p = testPolicy()
	p.Status = PolicyStatus("mystery")
	_, err = EncodeRecord(p)
	assert.Error(t, err)
}
