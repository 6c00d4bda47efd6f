package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadesk/internal/domain/ticket"
)

func TestSettingRepository_Upsert(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewSettingRepository(gdb)
	ctx := context.Background()

	_, found, err := repo.Get(ctx, "emailNotifications")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, "emailNotifications", "true"))

	value, found, err := repo.Get(ctx, "emailNotifications")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", value)

	// Second write replaces the value, no duplicate row
	require.NoError(t, repo.Set(ctx, "emailNotifications", "false"))

	value, found, err = repo.Get(ctx, "emailNotifications")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "false", value)

	settings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, settings, 1)
}

func TestTicketHistoryRepository_AppendAndList(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTicketHistoryRepository(gdb)
	ctx := context.Background()

	first, err := ticket.NewHistory("T001", "created", "Ticket created", 7)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, first))

	second, err := ticket.NewHistory("T001", "status_changed", "In progress", 2)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, second))

	other, err := ticket.NewHistory("T002", "created", "Ticket created", 7)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, other))

	entries, err := repo.ListByTicketID(ctx, "T001")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "created", entries[0].Action())
	assert.Equal(t, "status_changed", entries[1].Action())
}
