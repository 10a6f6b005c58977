package request

import (
	"time"

	"fixdesk/internal/application/request/usecases"
)

type CreateRequestRequest struct {
	Equipment   string `json:"equipment" binding:"required,max=200"`
	FaultType   string `json:"fault_type" binding:"max=200"`
	Description string `json:"description" binding:"max=5000"`
	Client      string `json:"client" binding:"required,max=200"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in_progress done"`
	AssignedTo  string `json:"assigned_to" binding:"max=200"`
}

func (r *CreateRequestRequest) ToCommand() usecases.CreateRequestCommand {
	return usecases.CreateRequestCommand{
		Equipment:   r.Equipment,
		FaultType:   r.FaultType,
		Description: r.Description,
		Client:      r.Client,
		Status:      r.Status,
		AssignedTo:  r.AssignedTo,
	}
}

type UpdateRequestRequest struct {
	Equipment   string `json:"equipment" binding:"max=200"`
	FaultType   string `json:"fault_type" binding:"max=200"`
	Description string `json:"description" binding:"max=5000"`
	Client      string `json:"client" binding:"max=200"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in_progress done"`
	AssignedTo  string `json:"assigned_to" binding:"max=200"`
}

func (r *UpdateRequestRequest) ToCommand(requestID uint) usecases.UpdateRequestCommand {
	return usecases.UpdateRequestCommand{
		RequestID:   requestID,
		Equipment:   r.Equipment,
		FaultType:   r.FaultType,
		Description: r.Description,
		Client:      r.Client,
		Status:      r.Status,
		AssignedTo:  r.AssignedTo,
	}
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required,max=10000"`
}

type RequestResponse struct {
	ID          uint      `json:"id"`
	Number      int       `json:"number"`
	Equipment   string    `json:"equipment"`
	FaultType   string    `json:"fault_type"`
	Description string    `json:"description"`
	Client      string    `json:"client"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assigned_to"`
	CreatedAt   time.Time `json:"created_at"`
}

func toRequestResponse(view usecases.RequestView) RequestResponse {
	return RequestResponse{
		ID:          view.ID,
		Number:      view.Number,
		Equipment:   view.Equipment,
		FaultType:   view.FaultType,
		Description: view.Description,
		Client:      view.Client,
		Status:      view.Status,
		AssignedTo:  view.AssignedTo,
		CreatedAt:   view.CreatedAt,
	}
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	RequestID uint      `json:"request_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	HTML      string    `json:"html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
