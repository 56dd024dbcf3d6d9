package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeDelivery struct {
	body    []byte
	acked   bool
	nacked  bool
	requeue bool
}

func (d *fakeDelivery) Body() []byte { return d.body }

func (d *fakeDelivery) Ack() error {
	d.acked = true
	return nil
}

func (d *fakeDelivery) Nack(requeue bool) error {
	d.nacked = true
	d.requeue = requeue
	return nil
}

type fakeSession struct {
	deliveries []*fakeDelivery
	pos        int
	fetches    int
	closed     bool
	stats      ports.QueueStats
}

func (s *fakeSession) Get() (ports.Delivery, bool, error) {
	s.fetches++
	if s.pos >= len(s.deliveries) {
		return nil, false, nil
	}
	d := s.deliveries[s.pos]
	s.pos++
	return d, true, nil
}

func (s *fakeSession) Stats() (ports.QueueStats, error) { return s.stats, nil }

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

type fakeBroker struct {
	session *fakeSession
	err     error
	opens   int
}

func (b *fakeBroker) Open(ctx context.Context) (ports.QueueSession, error) {
	b.opens++
	if b.err != nil {
		return nil, b.err
	}
	return b.session, nil
}

func TestConsumer_Drain_AcksAllValidMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d1 := &fakeDelivery{body: []byte(`{"type":"withdraw","to_address":"9xA","amount_xmr":1.5}`)}
	d2 := &fakeDelivery{body: []byte(`{"type":"withdraw","to_address":"9xB","amount_xmr":0.25}`)}
	session := &fakeSession{deliveries: []*fakeDelivery{d1, d2}}
	broker := &fakeBroker{session: session}

	processor := mocks.NewMockWithdrawalProcessor(ctrl)
	processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return([]string{"tx1"}, nil).Times(2)

	c := NewConsumer(broker, processor, time.Minute, zerolog.Nop())
	err := c.Drain(context.Background())

	require.NoError(t, err)
	assert.True(t, d1.acked)
	assert.True(t, d2.acked)
	assert.True(t, session.closed)
	// 2 fetches with messages, 1 returning empty.
	assert.Equal(t, 3, session.fetches)
}

func TestConsumer_Drain_MalformedMessageHaltsCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d1 := &fakeDelivery{body: []byte(`{"type":"withdraw","to_address":"9xA","amount_xmr":1.5}`)}
	d2 := &fakeDelivery{body: []byte(`{not json`)}
	d3 := &fakeDelivery{body: []byte(`{"type":"withdraw","to_address":"9xC","amount_xmr":2}`)}
	session := &fakeSession{deliveries: []*fakeDelivery{d1, d2, d3}}
	broker := &fakeBroker{session: session}

	processor := mocks.NewMockWithdrawalProcessor(ctrl)
	processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return([]string{"tx1"}, nil).Times(1)

	c := NewConsumer(broker, processor, time.Minute, zerolog.Nop())
	err := c.Drain(context.Background())

	require.Error(t, err)
	assert.True(t, d1.acked)
	assert.True(t, d2.nacked)
	assert.True(t, d2.requeue)
	assert.False(t, d2.acked)
	// The cycle halts before the third message is fetched.
	assert.False(t, d3.acked)
	assert.False(t, d3.nacked)
	assert.Equal(t, 2, session.fetches)
	assert.True(t, session.closed)
}

func TestConsumer_Drain_EmptyQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &fakeSession{}
	broker := &fakeBroker{session: session}
	processor := mocks.NewMockWithdrawalProcessor(ctrl)

	c := NewConsumer(broker, processor, time.Minute, zerolog.Nop())
	err := c.Drain(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, session.fetches)
	assert.True(t, session.closed)
}

func TestConsumer_Drain_UnrecognizedTypeAckedWithoutRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d1 := &fakeDelivery{body: []byte(`{"type":"deposit","to_address":"9xA"}`)}
	session := &fakeSession{deliveries: []*fakeDelivery{d1}}
	broker := &fakeBroker{session: session}
	processor := mocks.NewMockWithdrawalProcessor(ctrl)

	c := NewConsumer(broker, processor, time.Minute, zerolog.Nop())
	err := c.Drain(context.Background())

	require.NoError(t, err)
	assert.True(t, d1.acked)
	assert.False(t, d1.nacked)
}

func TestConsumer_Drain_ProcessorFailureNacksWithRequeue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d1 := &fakeDelivery{body: []byte(`{"type":"withdraw","to_address":"9xA","amount_xmr":1.5}`)}
	session := &fakeSession{deliveries: []*fakeDelivery{d1}}
	broker := &fakeBroker{session: session}

	processor := mocks.NewMockWithdrawalProcessor(ctrl)
	processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(nil, errors.New("wallet down"))

	c := NewConsumer(broker, processor, time.Minute, zerolog.Nop())
	err := c.Drain(context.Background())

	require.Error(t, err)
	assert.True(t, d1.nacked)
	assert.True(t, d1.requeue)
	assert.False(t, d1.acked)
	assert.True(t, session.closed)
}

func TestConsumer_Drain_OpenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broker := &fakeBroker{err: errors.New("connection refused")}
	processor := mocks.NewMockWithdrawalProcessor(ctrl)

	c := NewConsumer(broker, processor, time.Minute, zerolog.Nop())
	err := c.Drain(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open queue session")
}

func TestNewConsumer_ClampsPollInterval(t *testing.T) {
	c := NewConsumer(&fakeBroker{}, nil, time.Second, zerolog.Nop())
	assert.Equal(t, minPollInterval, c.interval)

	c = NewConsumer(&fakeBroker{}, nil, time.Minute, zerolog.Nop())
	assert.Equal(t, time.Minute, c.interval)
}

func TestConsumer_Stats(t *testing.T) {
	session := &fakeSession{stats: ports.QueueStats{Queue: "withdrawals", MessageCount: 7, ConsumerCount: 1}}
	broker := &fakeBroker{session: session}

	c := NewConsumer(broker, nil, time.Minute, zerolog.Nop())
	stats, err := c.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "withdrawals", stats.Queue)
	assert.Equal(t, 7, stats.MessageCount)
	assert.True(t, session.closed)
}
