package request

import "fmt"

// Status is the lifecycle state of a repair request.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusDone:       true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsDone() bool {
	return s == StatusDone
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", s)
	}
	return status, nil
}
