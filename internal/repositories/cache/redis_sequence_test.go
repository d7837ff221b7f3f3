package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	args := m.Called(ctx, key)
	cmd := redis.NewIntCmd(ctx, "incr", key)
	if err := args.Error(1); err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(args.Get(0).(int64))
	}
	return cmd
}

func TestRedisSequence_UsesKeyPerShop(t *testing.T) {
	ctx := context.Background()
	c := new(mockCounter)
	c.On("Incr", ctx, "jewel:payment_seq:shop-1").Return(int64(7), nil).Once()
	c.On("Incr", ctx, "jewel:payment_seq:shop-2").Return(int64(1), nil).Once()

	seq := NewRedisSequenceWithClient(c, "")

	v, err := seq.NextPaymentSequence(ctx, "shop-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	v, err = seq.NextPaymentSequence(ctx, "shop-2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	c.AssertExpectations(t)
}

func TestRedisSequence_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	c := new(mockCounter)
	c.On("Incr", ctx, "custom:shop-1").Return(int64(0), errors.New("connection refused"))

	seq := NewRedisSequenceWithClient(c, "custom:")
	_, err := seq.NextPaymentSequence(ctx, "shop-1")

	assert.ErrorContains(t, err, "connection refused")
	assert.ErrorContains(t, err, "shop-1")
}
