package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidation_Paths(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	a := uuid.Must(uuid.NewV4())
	b := uuid.Must(uuid.NewV4())

	inv := NewInvalidation(ReasonTransactionsDeleted, owner, a, b)

	assert.Equal(t, []string{"/dashboard", "/account/" + a.String(), "/account/" + b.String()}, inv.Paths)
	assert.Equal(t, owner, inv.OwnerID)
	assert.False(t, inv.OccurredAt.IsZero())
}

func TestNewInvalidation_DashboardOnly(t *testing.T) {
	inv := NewInvalidation(ReasonDefaultAccountChanged, uuid.Must(uuid.NewV4()))
	assert.Equal(t, []string{DashboardPath}, inv.Paths)
}

func TestLogNotifier(t *testing.T) {
	logger, hook := test.NewNullLogger()

	err := NewLogNotifier(logger).Invalidate(context.Background(), NewInvalidation(ReasonBudgetUpdated, uuid.Must(uuid.NewV4())))

	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "Notify.Invalidate", hook.LastEntry().Message)
	assert.Equal(t, ReasonBudgetUpdated, hook.LastEntry().Data["reason"])
}

type fakePublisher struct {
	channel string
	payload []byte
	err     error
}

func (p *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	p.channel = channel
	p.payload, _ = message.([]byte)
	cmd := redis.NewIntCmd(ctx)
	if p.err != nil {
		cmd.SetErr(p.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func TestRedisNotifier_PublishesJSON(t *testing.T) {
	pub := &fakePublisher{}
	inv := NewInvalidation(ReasonTransactionCreated, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	require.NoError(t, NewRedisNotifier(pub, "ledger:invalidations").Invalidate(context.Background(), inv))

	assert.Equal(t, "ledger:invalidations", pub.channel)
	var decoded Invalidation
	require.NoError(t, json.Unmarshal(pub.payload, &decoded))
	assert.Equal(t, inv.Paths, decoded.Paths)
	assert.Equal(t, inv.OwnerID, decoded.OwnerID)
}

func TestRedisNotifier_Error(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection refused")}

	err := NewRedisNotifier(pub, "c").Invalidate(context.Background(), Invalidation{})
	assert.ErrorContains(t, err, "connection refused")
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return w.err
}

func TestKafkaNotifier_KeysByOwner(t *testing.T) {
	writer := &fakeWriter{}
	owner := uuid.Must(uuid.NewV4())

	require.NoError(t, NewKafkaNotifier(writer).Invalidate(context.Background(), NewInvalidation(ReasonTransactionUpdated, owner)))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, owner.String(), string(writer.messages[0].Key))
	assert.Contains(t, string(writer.messages[0].Value), `"reason":"transaction.updated"`)
}

type countingNotifier struct {
	calls int
	err   error
}

func (c *countingNotifier) Invalidate(context.Context, Invalidation) error {
	c.calls++
	return c.err
}

func TestMulti_DeliversToAllAndJoinsErrors(t *testing.T) {
	first := &countingNotifier{err: errors.New("redis down")}
	second := &countingNotifier{}
	third := &countingNotifier{err: errors.New("kafka down")}

	err := Multi{first, second, third}.Invalidate(context.Background(), Invalidation{})

	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 1, third.calls)
	assert.ErrorContains(t, err, "redis down")
	assert.ErrorContains(t, err, "kafka down")
}
