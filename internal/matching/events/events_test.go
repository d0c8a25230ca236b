package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmaker/internal/matching/models"
	"matchmaker/internal/platform/kafka/producer"
	id "matchmaker/pkg/domain"
)

type recordingProducer struct {
	msgs []*producer.Message
	err  error
}

func (r *recordingProducer) Produce(_ context.Context, msg *producer.Message) error {
	r.msgs = append(r.msgs, msg)
	return r.err
}

func TestPublishIdealTypeChanged(t *testing.T) {
	rec := &recordingProducer{}
	pid := id.NewProfileID()
	at := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	err := NewPublisher(rec).PublishIdealTypeChanged(context.Background(), IdealTypeChanged{
		ProfileID:    pid,
		DealBreakers: []models.ConditionKind{models.KindIncome},
		RequestID:    "req-1",
		OccurredAt:   at,
	})
	require.NoError(t, err)
	require.Len(t, rec.msgs, 1)

	msg := rec.msgs[0]
	assert.Equal(t, TopicIdealTypeChanged, msg.Topic)
	assert.Equal(t, pid.String(), string(msg.Key))
	assert.Equal(t, "req-1", msg.Headers["request_id"])

	var decoded IdealTypeChanged
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, pid, decoded.ProfileID)
	assert.Equal(t, []models.ConditionKind{models.KindIncome}, decoded.DealBreakers)
}

func TestPublishWrapsProducerError(t *testing.T) {
	rec := &recordingProducer{err: errors.New("broker down")}
	err := NewPublisher(rec).PublishIdealTypeChanged(context.Background(), IdealTypeChanged{ProfileID: id.NewProfileID()})
	assert.ErrorContains(t, err, "broker down")
}

func TestNoopProducerSatisfiesPort(t *testing.T) {
	p := NewPublisher(producer.NewNoopProducer())
	assert.NoError(t, p.PublishIdealTypeChanged(context.Background(), IdealTypeChanged{ProfileID: id.NewProfileID()}))
}
