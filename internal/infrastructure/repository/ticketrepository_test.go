package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"datadesk/internal/domain/ticket"
	"datadesk/internal/infrastructure/persistence/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.CompanyModel{},
		&models.BranchModel{},
		&models.UserModel{},
		&models.AssetModel{},
		&models.TicketModel{},
		&models.TicketHistoryModel{},
		&models.DataCenterLogModel{},
		&models.SystemSettingModel{},
		&models.SystemLogModel{},
		&models.IDSequenceModel{},
	))

	return gdb
}

func seedBranch(t *testing.T, gdb *gorm.DB, id string, prefix *string) {
	t.Helper()
	require.NoError(t, gdb.Create(&models.BranchModel{
		ID:           id,
		Name:         "Branch " + id,
		CompanyID:    "C001",
		TicketPrefix: prefix,
	}).Error)
}

func newDomainTicket(t *testing.T, branchID string) *ticket.Ticket {
	t.Helper()
	dt, err := ticket.NewTicket("Broken printer", "Paper jam on floor 3", "medium", 7, "C001", branchID)
	require.NoError(t, err)
	return dt
}

func TestTicketRepository_SaveAllocatesSharedNamespace(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceRepository(gdb))
	ctx := context.Background()

	seedBranch(t, gdb, "B001", nil)

	first := newDomainTicket(t, "B001")
	require.NoError(t, repo.Save(ctx, first))
	assert.Equal(t, "T001", first.ID())

	second := newDomainTicket(t, "B001")
	require.NoError(t, repo.Save(ctx, second))
	assert.Equal(t, "T002", second.ID())
}

func TestTicketRepository_SaveAllocatesBranchPrefix(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceRepository(gdb))
	ctx := context.Background()

	prefix := "BKK"
	seedBranch(t, gdb, "B001", &prefix)
	seedBranch(t, gdb, "B002", nil)

	prefixed := newDomainTicket(t, "B001")
	require.NoError(t, repo.Save(ctx, prefixed))
	assert.Equal(t, "BKK-001", prefixed.ID())

	// The prefixed branch does not advance the shared T counter
	shared := newDomainTicket(t, "B002")
	require.NoError(t, repo.Save(ctx, shared))
	assert.Equal(t, "T001", shared.ID())
}

func TestTicketRepository_SaveSeedsFromLegacyRows(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceRepository(gdb))
	ctx := context.Background()

	seedBranch(t, gdb, "B001", nil)

	// Rows imported before the counter existed
	require.NoError(t, gdb.Create(&models.TicketModel{
		ID: "T041", Title: "legacy", Description: "legacy", Priority: "low",
		Status: "closed", CreatedBy: 1, CompanyID: "C001", BranchID: "B001",
		Attachments: "[]", Images: "[]",
	}).Error)

	dt := newDomainTicket(t, "B001")
	require.NoError(t, repo.Save(ctx, dt))
	assert.Equal(t, "T042", dt.ID())
}

func TestTicketRepository_SaveStoresValidJSONColumns(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceRepository(gdb))
	ctx := context.Background()

	seedBranch(t, gdb, "B001", nil)

	dt := newDomainTicket(t, "B001")
	require.NoError(t, repo.Save(ctx, dt))

	// MySQL JSON columns reject non-JSON text, so a ticket created without
	// attachments must land as "[]" rather than an empty string.
	var row models.TicketModel
	require.NoError(t, gdb.Where("id = ?", dt.ID()).First(&row).Error)
	assert.Equal(t, "[]", row.Attachments)
	assert.Equal(t, "[]", row.Images)
	assert.True(t, json.Valid([]byte(row.Attachments)))
	assert.True(t, json.Valid([]byte(row.Images)))
}

func TestTicketRepository_UpdateClearsNullableColumns(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceRepository(gdb))
	ctx := context.Background()

	seedBranch(t, gdb, "B001", nil)

	dt := newDomainTicket(t, "B001")
	require.NoError(t, repo.Save(ctx, dt))

	resolution := "Replaced the fuser unit"
	dt.SetResolution(&resolution)
	dt.SetImages([]string{"before.jpg"})
	require.NoError(t, repo.Update(ctx, dt))

	loaded, err := repo.FindByID(ctx, dt.ID())
	require.NoError(t, err)
	require.NotNil(t, loaded.Resolution())
	assert.Equal(t, resolution, *loaded.Resolution())
	assert.Equal(t, []string{"before.jpg"}, loaded.Images())

	// Clearing the pointer must reach the row as NULL, not be skipped as a
	// zero value.
	dt.SetResolution(nil)
	dt.SetImages([]string{})
	require.NoError(t, repo.Update(ctx, dt))

	loaded, err = repo.FindByID(ctx, dt.ID())
	require.NoError(t, err)
	assert.Nil(t, loaded.Resolution())
	assert.Empty(t, loaded.Images())
}

func TestTicketRepository_SaveUnknownBranch(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceRepository(gdb))

	dt := newDomainTicket(t, "B404")
	err := repo.Save(context.Background(), dt)
	require.Error(t, err)
}

func TestTicketRepository_FindForTracking(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTicketRepository(gdb, NewSequenceRepository(gdb))
	ctx := context.Background()

	prefix := "HQ"
	seedBranch(t, gdb, "B001", &prefix)

	require.NoError(t, gdb.Create(&models.AssetModel{
		ID: "A001", AssetCode: "AC-100", SerialNumber: "SN-12345",
		Type: "laptop", CompanyID: "C001", BranchID: "B001", Images: "[]",
	}).Error)

	linked := newDomainTicket(t, "B001")
	assetID := "A001"
	linked.SetAssetID(&assetID)
	require.NoError(t, repo.Save(ctx, linked))

	custom := newDomainTicket(t, "B001")
	serial := "SN-99999"
	custom.SetCustomDevice(nil, &serial, nil, nil, nil)
	require.NoError(t, repo.Save(ctx, custom))

	t.Run("AssetSerial", func(t *testing.T) {
		found, err := repo.FindForTracking(ctx, "SN-12345")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, linked.ID(), found[0].ID())
	})

	t.Run("CustomDeviceSerial", func(t *testing.T) {
		found, err := repo.FindForTracking(ctx, "SN-99999")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, custom.ID(), found[0].ID())
	})

	t.Run("ExactTicketID", func(t *testing.T) {
		found, err := repo.FindForTracking(ctx, linked.ID())
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, linked.ID(), found[0].ID())
	})

	t.Run("DashStrippedTicketID", func(t *testing.T) {
		found, err := repo.FindForTracking(ctx, "HQ001")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "HQ-001", found[0].ID())
	})

	t.Run("NoMatch", func(t *testing.T) {
		found, err := repo.FindForTracking(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestSequenceRepository_IndependentNamespaces(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewSequenceRepository(gdb)
	ctx := context.Background()

	n, err := repo.Next(ctx, "company", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = repo.Next(ctx, "company", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.Next(ctx, "asset", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSequenceRepository_SeedsOnFirstUse(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewSequenceRepository(gdb)

	n, err := repo.Next(context.Background(), "ticket:T", func(ctx context.Context) (int, error) {
		return 17, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 18, n)
}
