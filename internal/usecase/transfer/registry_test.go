package transfer

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/simaogato/transferflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lifecycle(t *testing.T) {
	accounts := new(MockAccountDirectory)
	accounts.On("List", mock.Anything).Return(demoAccounts(), nil).Maybe()

	var events atomic.Int32
	registry := NewRegistry(accounts, newGatedSubmitter(), nil, Config{}, func(Event) { events.Add(1) })
	t.Cleanup(registry.CloseAll)

	first := registry.Start()
	second := registry.Start()
	assert.Equal(t, 2, registry.Len())
	assert.NotEqual(t, first.ID, second.ID)

	got, err := registry.Get(first.ID)
	require.NoError(t, err)
	assert.Same(t, first, got)

	fillOwnAccountTransfer(t, first, "1", "2", "10")
	_, err = first.RequestConfirmation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), events.Load(), "registry listeners are attached to new sessions")
	assert.Equal(t, domain.StateEditing, second.State())

	require.NoError(t, registry.Close(first.ID))
	_, err = registry.Get(first.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, registry.Close(first.ID), domain.ErrSessionNotFound)

	_, err = registry.Get(uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	registry.CloseAll()
	assert.Equal(t, 0, registry.Len())
}
