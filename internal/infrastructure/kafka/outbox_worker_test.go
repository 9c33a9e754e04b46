package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/billing-backend/internal/cfg"
	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memOutbox struct {
	pending   []*usecase.OutboxEvent
	processed []int64
	returned  []int64
}

func (m *memOutbox) Create(_ context.Context, ev *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	m.pending = append(m.pending, ev)
	return ev, nil
}

func (m *memOutbox) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	if limit > len(m.pending) {
		limit = len(m.pending)
	}
	batch := m.pending[:limit]
	m.pending = m.pending[limit:]
	return batch, nil
}

func (m *memOutbox) MarkAsProcessed(_ context.Context, id int64) error {
	m.processed = append(m.processed, id)
	return nil
}

func (m *memOutbox) ReturnToPending(_ context.Context, id int64) error {
	m.returned = append(m.returned, id)
	return nil
}

func (m *memOutbox) ReclaimStale(context.Context, int) (int64, error) { return 0, nil }

type recordingProducer struct {
	keys []string
	fail map[string]error
}

func (p *recordingProducer) WriteRawMessage(_ context.Context, req *usecase.WriteRawMessageReq) error {
	if err, ok := p.fail[req.Key]; ok {
		return err
	}
	p.keys = append(p.keys, req.Key)
	return nil
}

func newEvent(id int64) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{ID: id, EventID: uuid.NewString(), AggregateID: uuid.New(), Payload: []byte(`{}`)}
}

func TestOutboxWorkerDrain(t *testing.T) {
	repo := &memOutbox{}
	for i := int64(1); i <= 5; i++ {
		repo.pending = append(repo.pending, newEvent(i))
	}
	producer := &recordingProducer{}
	w := NewOutboxWorker(repo, logger.Nop(), producer, &cfg.OutboxCfg{BatchSize: 2}, "")

	w.drain(context.Background())

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, repo.processed)
	assert.Len(t, producer.keys, 5)
	assert.Empty(t, repo.pending)
}

func TestOutboxWorkerReturnsFailedToPending(t *testing.T) {
	repo := &memOutbox{}
	ok, bad := newEvent(1), newEvent(2)
	repo.pending = []*usecase.OutboxEvent{ok, bad}
	producer := &recordingProducer{fail: map[string]error{bad.AggregateID.String(): errors.New("broker not available")}}
	w := NewOutboxWorker(repo, logger.Nop(), producer, &cfg.OutboxCfg{BatchSize: 2}, "")

	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)

	assert.False(t, hasMore)
	assert.Equal(t, []int64{1}, repo.processed)
	assert.Equal(t, []int64{2}, repo.returned)
	assert.Equal(t, []string{ok.AggregateID.String()}, producer.keys)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(errors.New("dial tcp: Connection Refused")))
	assert.False(t, isRetryableError(errors.New("message too large")))
	assert.False(t, isRetryableError(nil))
}
