//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"matchmaker/internal/matching/events"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/platform/kafka/producer"
	id "matchmaker/pkg/domain"
	"matchmaker/pkg/testutil/containers"
)

type PublisherIntegrationSuite struct {
	suite.Suite
	kafka    *containers.KafkaContainer
	producer *producer.Producer
}

func TestPublisherIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PublisherIntegrationSuite))
}

func (s *PublisherIntegrationSuite) SetupSuite() {
	s.kafka = containers.GetManager().GetKafka(s.T())
	s.Require().NoError(s.kafka.CreateTopics(context.Background(), events.TopicIdealTypeChanged))

	prod, err := producer.New(producer.Config{
		Brokers:         s.kafka.Brokers,
		Acks:            "all",
		Retries:         3,
		DeliveryTimeout: 10 * time.Second,
	}, nil)
	s.Require().NoError(err)
	s.producer = prod
}

func (s *PublisherIntegrationSuite) TearDownSuite() {
	if s.producer != nil {
		_ = s.producer.Close()
	}
}

func (s *PublisherIntegrationSuite) TestIdealTypeChangedIsConsumable() {
	ctx := context.Background()
	profileID := id.NewProfileID()
	event := events.IdealTypeChanged{
		ProfileID:    profileID,
		DealBreakers: []models.ConditionKind{models.KindIncome, models.KindRegion},
		RequestID:    "req-42",
		OccurredAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(events.NewPublisher(s.producer).PublishIdealTypeChanged(ctx, event))

	consumer, err := s.kafka.NewConsumer(ctx, "ideal-type-changed-test", events.TopicIdealTypeChanged)
	s.Require().NoError(err)
	defer consumer.Close()

	record := s.kafka.WaitForMessage(ctx, consumer, 10*time.Second, func(r *kgo.Record) bool {
		return string(r.Key) == profileID.String()
	})
	s.Require().NotNil(record, "event should be consumable")

	headers := make(map[string]string)
	for _, h := range record.Headers {
		headers[h.Key] = string(h.Value)
	}
	s.Equal("ideal_type_changed", headers["event_type"])
	s.Equal("req-42", headers["request_id"])

	var got events.IdealTypeChanged
	s.Require().NoError(json.Unmarshal(record.Value, &got))
	s.Equal(event, got)
}

func (s *PublisherIntegrationSuite) TestProducerHealth() {
	s.NoError(s.producer.Health(context.Background()))
}
