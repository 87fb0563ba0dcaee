package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInquiryReceived(t *testing.T) {
	ev := NewInquiryReceived("req-1", "Web Development", "$5k - $10k", true)

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "req-1", ev.RequestID)
	assert.False(t, ev.ReceivedAt.IsZero())

	other := NewInquiryReceived("req-1", "Web Development", "$5k - $10k", true)
	assert.NotEqual(t, ev.ID, other.ID)
}

func TestDecodeInquiry(t *testing.T) {
	ev := NewInquiryReceived("req-2", "Other", "$25k+", false)
	data, err := json.Marshal(ev)
	require.NoError(t, err)

	got, err := DecodeInquiry(data)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, got.ID)
	assert.Equal(t, "Other", got.Service)
	assert.True(t, ev.ReceivedAt.Equal(got.ReceivedAt))

	_, err = DecodeInquiry([]byte(`{"service":"Other"}`))
	assert.Error(t, err)

	_, err = DecodeInquiry([]byte(`not json`))
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.PublishInquiry(context.Background(), InquiryReceived{}))
}
