package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"perfume-storefront/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *stubWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *stubWriter) Close() error {
	w.closed = true
	return nil
}

func testDraft() domain.OrderDraft {
	return domain.OrderDraft{
		Reference: "ref-1",
		SessionID: "s1",
		Customer: domain.Customer{
			FullName: "Arta",
			Phone:    "044000000",
			Address:  "Rr. 1",
			City:     "Prishtinë",
		},
		Lines: []domain.CartLine{{
			Product: domain.Product{
				ID:         "1",
				Name:       "Rose Éternelle",
				PriceCents: 18900,
				SizePrices: map[domain.Size]int64{domain.Size15ml: 6500},
			},
			Quantity: 2,
			Size:     domain.Size15ml,
		}},
		TotalCents: 13000,
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublishOrder(t *testing.T) {
	w := &stubWriter{}
	p := newOrderPublisher(w, "orders", nil)

	require.NoError(t, p.PublishOrder(context.Background(), testDraft()))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "ref-1", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, EventOrderSubmitted, string(msg.Headers[0].Value))

	var env Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, EventOrderSubmitted, env.EventType)
	assert.Equal(t, 1, env.EventVersion)
	assert.Equal(t, "ref-1", env.CorrelationID)
	assert.NotEmpty(t, env.EventID)

	payload, err := UnwrapPayload[OrderSubmitted](env.Payload)
	require.NoError(t, err)
	assert.Equal(t, "ref-1", payload.Reference)
	assert.Equal(t, int64(13000), payload.TotalCents)
	assert.Equal(t, "EUR", payload.Currency)
	require.Len(t, payload.Lines, 1)
	assert.Equal(t, int64(6500), payload.Lines[0].UnitPriceCents)
	assert.Equal(t, "15ml", payload.Lines[0].Size)
}

func TestPublishOrder_WriteError(t *testing.T) {
	boom := errors.New("broker down")
	p := newOrderPublisher(&stubWriter{err: boom}, "orders", nil)
	err := p.PublishOrder(context.Background(), testDraft())
	assert.ErrorIs(t, err, boom)
}

func TestClose(t *testing.T) {
	w := &stubWriter{}
	require.NoError(t, newOrderPublisher(w, "orders", nil).Close())
	assert.True(t, w.closed)
}
