package usecases

import (
	"time"

	"fixdesk/internal/domain/request"
)

// RequestView is the read-model shape shared by the query use cases.
type RequestView struct {
	ID          uint
	Number      int
	Equipment   string
	FaultType   string
	Description string
	Client      string
	Status      string
	AssignedTo  string
	CreatedAt   time.Time
}

func newRequestView(req *request.Request) RequestView {
	return RequestView{
		ID:          req.ID(),
		Number:      req.Number(),
		Equipment:   req.Equipment(),
		FaultType:   req.FaultType(),
		Description: req.Description(),
		Client:      req.Client(),
		Status:      req.Status().String(),
		AssignedTo:  req.AssignedTo(),
		CreatedAt:   req.CreatedAt(),
	}
}
