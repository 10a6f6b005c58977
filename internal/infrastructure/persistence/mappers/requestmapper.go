package mappers

import (
	"time"

	"fixdesk/internal/domain/request"
	"fixdesk/internal/infrastructure/persistence/models"
)

// RequestMapper handles the conversion between request domain entities and
// persistence models.
type RequestMapper interface {
	ToModel(r *request.Request) *models.RequestModel
	ToDomain(model *models.RequestModel) (*request.Request, error)
	CommentToModel(c *request.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*request.Comment, error)
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(r *request.Request) *models.RequestModel {
	return &models.RequestModel{
		ID:          r.ID(),
		Number:      r.Number(),
		Equipment:   r.Equipment(),
		FaultType:   r.FaultType(),
		Description: r.Description(),
		Client:      r.Client(),
		Status:      r.Status().String(),
		AssignedTo:  r.AssignedTo(),
		CreatedAt:   r.CreatedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) ToDomain(model *models.RequestModel) (*request.Request, error) {
	status, err := request.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return request.ReconstructRequest(
		model.ID,
		model.Number,
		model.Equipment,
		model.FaultType,
		model.Description,
		model.Client,
		status,
		model.AssignedTo,
		millisToTime(model.CreatedAt),
	)
}

func (m *RequestMapperImpl) CommentToModel(c *request.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		RequestID: c.RequestID(),
		Author:    c.Author(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) CommentToDomain(model *models.CommentModel) (*request.Comment, error) {
	return request.ReconstructComment(
		model.ID,
		model.RequestID,
		model.Author,
		model.Text,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}
