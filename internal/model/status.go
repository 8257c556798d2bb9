package model

// RequestStatus tracks a submission through its lifecycle for the
// notification panel and logs.
type RequestStatus string

const (
	StatusIdle       RequestStatus = "idle"
	StatusSubmitting RequestStatus = "submitting"
	StatusCompleted  RequestStatus = "completed"
	StatusError      RequestStatus = "error"
)

// String returns a human-friendly label for the status.
func (s RequestStatus) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusSubmitting:
		return "Ingesting..."
	case StatusCompleted:
		return "Completed"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}
