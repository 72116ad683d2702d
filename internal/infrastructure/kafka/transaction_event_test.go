package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTransactionEventMessage(t *testing.T) {
	occurred := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	event := TransactionEvent{
		TransactionID: "tx-123",
		OrderID:       "ord-456",
		Status:        "paid",
		Amount:        49.90,
		OccurredAt:    occurred,
	}

	msg, err := event.Message()
	require.NoError(t, err)
	require.Equal(t, []byte("tx-123"), msg.Key)

	var decoded TransactionEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, event, decoded)
}
