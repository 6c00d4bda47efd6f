package ticket

// Status is the lifecycle state of a ticket. Transitions are permissive:
// any status may be set from any other, the value object only guards
// against unknown states.
type Status string

const (
	StatusOpen         Status = "open"
	StatusInProgress   Status = "in_progress"
	StatusWaitingParts Status = "waiting_parts"
	StatusClosed       Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusWaitingParts, StatusClosed:
		return true
	}
	return false
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// Label returns the human-readable form recorded in ticket history.
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "Opened"
	case StatusInProgress:
		return "In progress"
	case StatusWaitingParts:
		return "Waiting for parts"
	case StatusClosed:
		return "Closed"
	}
	return string(s)
}
