package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadesk/internal/domain/datacenter"
	apperrors "datadesk/internal/shared/errors"
)

func TestGetLogUseCase_Execute(t *testing.T) {
	now := time.Now()
	stored, err := datacenter.ReconstructLog(
		"DC001", "Bob", nil, "555-0100", now, nil,
		"Router maintenance", nil, "Alice", "C001", "B001", 7, nil,
		now, now,
	)
	require.NoError(t, err)

	logRepo := &mockLogRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*datacenter.Log, error) {
			require.Equal(t, "DC001", id)
			return stored, nil
		},
	}

	uc := NewGetLogUseCase(logRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), GetLogCommand{LogID: "DC001"})
	require.NoError(t, err)

	assert.Equal(t, "DC001", result.Log.ID)
	assert.Equal(t, "Bob", result.Log.VisitorName)
	assert.Nil(t, result.Log.ExitTime)
}

func TestGetLogUseCase_Execute_MissingID(t *testing.T) {
	uc := NewGetLogUseCase(&mockLogRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), GetLogCommand{})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestGetLogUseCase_Execute_NotFound(t *testing.T) {
	uc := NewGetLogUseCase(&mockLogRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), GetLogCommand{LogID: "DC099"})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}
