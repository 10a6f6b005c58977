package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/request/usecases"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/services/markdown"
	"fixdesk/internal/shared/utils"
)

type RequestHandler struct {
	createRequestUC *usecases.CreateRequestUseCase
	getRequestUC    *usecases.GetRequestUseCase
	updateRequestUC *usecases.UpdateRequestUseCase
	searchRequestUC *usecases.SearchRequestsUseCase
	countByStatusUC *usecases.CountByStatusUseCase
	addCommentUC    *usecases.AddCommentUseCase
	listCommentsUC  *usecases.ListCommentsUseCase
	markdownService markdown.Service
	logger          logger.Interface
}

func NewRequestHandler(
	createRequestUC *usecases.CreateRequestUseCase,
	getRequestUC *usecases.GetRequestUseCase,
	updateRequestUC *usecases.UpdateRequestUseCase,
	searchRequestUC *usecases.SearchRequestsUseCase,
	countByStatusUC *usecases.CountByStatusUseCase,
	addCommentUC *usecases.AddCommentUseCase,
	listCommentsUC *usecases.ListCommentsUseCase,
	markdownService markdown.Service,
) *RequestHandler {
	return &RequestHandler{
		createRequestUC: createRequestUC,
		getRequestUC:    getRequestUC,
		updateRequestUC: updateRequestUC,
		searchRequestUC: searchRequestUC,
		countByStatusUC: countByStatusUC,
		addCommentUC:    addCommentUC,
		listCommentsUC:  listCommentsUC,
		markdownService: markdownService,
		logger:          logger.NewLogger(),
	}
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create request", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createRequestUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// GetRequest handles GET /requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRequestUC.Execute(c.Request.Context(), usecases.GetRequestQuery{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toRequestResponse(result.Request))
}

// UpdateRequest handles PATCH /requests/:id
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateRequestUC.Execute(c.Request.Context(), req.ToCommand(requestID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toRequestResponse(result.Request))
}

// SearchRequests handles GET /requests?q=
func (h *RequestHandler) SearchRequests(c *gin.Context) {
	result, err := h.searchRequestUC.Execute(c.Request.Context(), usecases.SearchRequestsQuery{
		Query: c.Query("q"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]RequestResponse, 0, len(result.Requests))
	for _, view := range result.Requests {
		responses = append(responses, toRequestResponse(view))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// CountByStatus handles GET /requests/stats?status=
func (h *RequestHandler) CountByStatus(c *gin.Context) {
	result, err := h.countByStatusUC.Execute(c.Request.Context(), usecases.CountByStatusQuery{
		Status: c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddComment handles POST /requests/:id/comments
func (h *RequestHandler) AddComment(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		RequestID: requestID,
		Text:      req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListComments handles GET /requests/:id/comments
func (h *RequestHandler) ListComments(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]CommentResponse, 0, len(result.Comments))
	for _, comment := range result.Comments {
		rendered, err := h.markdownService.ToHTMLSanitized(comment.Text)
		if err != nil {
			h.logger.Warnw("failed to render comment markdown", "comment_id", comment.ID, "error", err)
			rendered = ""
		}

		responses = append(responses, CommentResponse{
			ID:        comment.ID,
			RequestID: comment.RequestID,
			Author:    comment.Author,
			Text:      comment.Text,
			HTML:      rendered,
			CreatedAt: comment.CreatedAt,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

func parseRequestID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid request ID")
	}
	return uint(id), nil
}
