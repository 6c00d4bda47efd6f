package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTicket(t *testing.T) *Ticket {
	tk, err := NewTicket("Printer jammed", "Paper stuck in tray 2", "high", 7, "C001", "B001")
	require.NoError(t, err)
	require.NoError(t, tk.SetID("T001"))
	return tk
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		createdBy   uint
		companyID   string
		branchID    string
		wantErr     string
	}{
		{"missing title", "", "desc", 1, "C001", "B001", "title is required"},
		{"missing description", "title", "", 1, "C001", "B001", "description is required"},
		{"missing creator", "title", "desc", 0, "C001", "B001", "creator ID is required"},
		{"missing company", "title", "desc", 1, "", "B001", "company ID is required"},
		{"missing branch", "title", "desc", 1, "C001", "", "branch ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.title, tt.description, "low", tt.createdBy, tt.companyID, tt.branchID)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewTicket_Defaults(t *testing.T) {
	tk, err := NewTicket("title", "desc", "", 1, "C001", "B001")
	require.NoError(t, err)

	assert.Equal(t, StatusOpen, tk.Status())
	assert.Equal(t, "medium", tk.Priority())
	assert.Empty(t, tk.ID())
	assert.Nil(t, tk.ClosedAt())
}

func TestSetID_OnlyOnce(t *testing.T) {
	tk, err := NewTicket("title", "desc", "low", 1, "C001", "B001")
	require.NoError(t, err)

	require.NoError(t, tk.SetID("HQ-001"))
	assert.Error(t, tk.SetID("HQ-002"))
	assert.Equal(t, "HQ-001", tk.ID())
}

func TestChangeStatus_RecordsApprover(t *testing.T) {
	tk := newTestTicket(t)

	changed, err := tk.ChangeStatus(StatusInProgress, 42)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, StatusInProgress, tk.Status())
	require.NotNil(t, tk.ApprovedBy())
	assert.Equal(t, uint(42), *tk.ApprovedBy())
	assert.Nil(t, tk.ClosedAt())
	assert.Nil(t, tk.ClosedBy())
}

func TestChangeStatus_CloseStampsTogether(t *testing.T) {
	tk := newTestTicket(t)

	changed, err := tk.ChangeStatus(StatusClosed, 42)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, tk.ClosedAt())
	require.NotNil(t, tk.ClosedBy())
	assert.Equal(t, uint(42), *tk.ClosedBy())
}

func TestChangeStatus_NoOpWhenUnchanged(t *testing.T) {
	tk := newTestTicket(t)

	changed, err := tk.ChangeStatus(StatusOpen, 42)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, tk.ApprovedBy())
}

func TestChangeStatus_Permissive(t *testing.T) {
	tk := newTestTicket(t)

	// closed is not terminal, any status may follow
	_, err := tk.ChangeStatus(StatusClosed, 42)
	require.NoError(t, err)

	changed, err := tk.ChangeStatus(StatusWaitingParts, 42)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, StatusWaitingParts, tk.Status())
}

func TestChangeStatus_RejectsUnknown(t *testing.T) {
	tk := newTestTicket(t)

	_, err := tk.ChangeStatus(Status("resolved"), 42)
	assert.Error(t, err)
	assert.Equal(t, StatusOpen, tk.Status())
}

func TestAssignTo(t *testing.T) {
	tk := newTestTicket(t)

	changed, err := tk.AssignTo(10)
	require.NoError(t, err)
	assert.True(t, changed)

	// same assignee again is not a reassignment
	changed, err = tk.AssignTo(10)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = tk.AssignTo(11)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, uint(11), *tk.AssignedTo())
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Opened", StatusOpen.Label())
	assert.Equal(t, "In progress", StatusInProgress.Label())
	assert.Equal(t, "Waiting for parts", StatusWaitingParts.Label())
	assert.Equal(t, "Closed", StatusClosed.Label())
}

func TestNewHistory_Validation(t *testing.T) {
	_, err := NewHistory("", "Closed", "Status changed to Closed", 1)
	assert.Error(t, err)

	_, err = NewHistory("T001", "", "desc", 1)
	assert.Error(t, err)

	h, err := NewHistory("T001", "Closed", "Status changed to Closed", 1)
	require.NoError(t, err)
	assert.Equal(t, "T001", h.TicketID())
	assert.Equal(t, uint(1), h.UserID())
}
