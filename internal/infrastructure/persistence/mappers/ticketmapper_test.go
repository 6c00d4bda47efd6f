package mappers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadesk/internal/domain/asset"
	"datadesk/internal/domain/ticket"
)

func TestTicketMapper_ToModelJSONColumns(t *testing.T) {
	mapper := NewTicketMapper()

	t.Run("WithoutAttachments", func(t *testing.T) {
		entity, err := ticket.NewTicket("Printer jam", "Paper stuck in tray 2", "medium", 7, "C001", "B001")
		require.NoError(t, err)

		model := mapper.ToModel(entity)

		// MySQL rejects anything but valid JSON in a JSON column, so
		// a ticket with no attachments must still map to "[]".
		assert.True(t, json.Valid([]byte(model.Attachments)))
		assert.True(t, json.Valid([]byte(model.Images)))
		assert.Equal(t, "[]", model.Attachments)
		assert.Equal(t, "[]", model.Images)
	})

	t.Run("WithAttachments", func(t *testing.T) {
		entity, err := ticket.NewTicket("Printer jam", "Paper stuck in tray 2", "medium", 7, "C001", "B001")
		require.NoError(t, err)
		entity.SetAttachments([]string{"report.pdf"})
		entity.SetImages([]string{"jam.jpg", "tray.jpg"})

		model := mapper.ToModel(entity)

		assert.Equal(t, `["report.pdf"]`, model.Attachments)
		assert.Equal(t, `["jam.jpg","tray.jpg"]`, model.Images)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		entity, err := ticket.ReconstructTicket(ticket.Record{
			ID:          "T001",
			Title:       "Printer jam",
			Description: "Paper stuck in tray 2",
			Priority:    "medium",
			Status:      ticket.StatusOpen,
			CreatedBy:   7,
			CompanyID:   "C001",
			BranchID:    "B001",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		})
		require.NoError(t, err)

		restored, err := mapper.ToDomain(mapper.ToModel(entity))
		require.NoError(t, err)
		assert.Empty(t, restored.Attachments())
		assert.Empty(t, restored.Images())
	})
}

func TestAssetMapper_ToModelJSONColumns(t *testing.T) {
	mapper := NewAssetMapper()

	newAsset := func(t *testing.T) *asset.Asset {
		t.Helper()
		entity, err := asset.NewAsset("A001", "SN-1234", "laptop", "Lenovo", "T14",
			time.Now(), "Floor 3", "C001", "B001", "alice")
		require.NoError(t, err)
		return entity
	}

	t.Run("WithoutImages", func(t *testing.T) {
		model := mapper.ToModel(newAsset(t))

		assert.True(t, json.Valid([]byte(model.Images)))
		assert.Equal(t, "[]", model.Images)
	})

	t.Run("WithImages", func(t *testing.T) {
		entity := newAsset(t)
		require.NoError(t, entity.AddImage("front.jpg"))

		model := mapper.ToModel(entity)
		assert.Equal(t, `["front.jpg"]`, model.Images)

		restored, err := mapper.ToDomain(model)
		require.NoError(t, err)
		assert.Equal(t, []string{"front.jpg"}, restored.Images())
	})
}
