package network

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	districtID := uuid.New()

	t.Run("creates store with district and address", func(t *testing.T) {
		store, err := NewStore("Main Street", &districtID, "1 Main St")
		require.NoError(t, err)
		require.NotNil(t, store)

		assert.Equal(t, "Main Street", store.Name)
		require.NotNil(t, store.DistrictID)
		assert.Equal(t, districtID, *store.DistrictID)
		assert.Equal(t, "1 Main St", store.Address)
		assert.NotEmpty(t, store.ID)
	})

	t.Run("creates store without district", func(t *testing.T) {
		store, err := NewStore("Standalone", nil, "")
		require.NoError(t, err)
		assert.Nil(t, store.DistrictID)
		assert.Empty(t, store.Address)
	})

	t.Run("publishes StoreCreated event", func(t *testing.T) {
		store, err := NewStore("Main Street", &districtID, "")
		require.NoError(t, err)

		events := store.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeStoreCreated, events[0].EventType())

		event, ok := events[0].(*StoreCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, store.ID, event.StoreID)
		assert.Equal(t, "Main Street", event.Name)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewStore("", nil, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewStore(strings.Repeat("a", 101), nil, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 100 characters")
	})
}

func TestStoreRename(t *testing.T) {
	store, _ := NewStore("Old Name", nil, "")
	store.ClearDomainEvents()

	t.Run("renames store", func(t *testing.T) {
		err := store.Rename("New Name")
		require.NoError(t, err)
		assert.Equal(t, "New Name", store.Name)

		events := store.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeStoreUpdated, events[0].EventType())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		err := store.Rename("")
		require.Error(t, err)
		assert.Equal(t, "New Name", store.Name)
	})
}

func TestStoreDistrictAssignment(t *testing.T) {
	t.Run("assigns district", func(t *testing.T) {
		store, _ := NewStore("Main Street", nil, "")
		store.ClearDomainEvents()

		districtID := uuid.New()
		store.AssignDistrict(districtID)

		require.NotNil(t, store.DistrictID)
		assert.Equal(t, districtID, *store.DistrictID)

		events := store.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeStoreUpdated, events[0].EventType())
	})

	t.Run("unassigns district", func(t *testing.T) {
		districtID := uuid.New()
		store, _ := NewStore("Main Street", &districtID, "")
		store.ClearDomainEvents()

		store.UnassignDistrict()
		assert.Nil(t, store.DistrictID)

		events := store.DomainEvents()
		require.Len(t, events, 1)
	})
}

func TestStoreUpdateAddress(t *testing.T) {
	store, _ := NewStore("Main Street", nil, "1 Main St")
	store.ClearDomainEvents()

	store.UpdateAddress("2 Side St")
	assert.Equal(t, "2 Side St", store.Address)

	events := store.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeStoreUpdated, events[0].EventType())
}
