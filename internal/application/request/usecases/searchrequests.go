package usecases

import (
	"context"

	"fixdesk/internal/domain/request"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/session"
)

type SearchRequestsQuery struct {
	Query string
}

type SearchRequestsResult struct {
	Requests []RequestView
}

type SearchRequestsUseCase struct {
	requestRepo request.RequestRepository
	gate        *authorization.Gate
	logger      logger.Interface
}

func NewSearchRequestsUseCase(
	requestRepo request.RequestRepository,
	gate *authorization.Gate,
	logger logger.Interface,
) *SearchRequestsUseCase {
	return &SearchRequestsUseCase{
		requestRepo: requestRepo,
		gate:        gate,
		logger:      logger,
	}
}

func (uc *SearchRequestsUseCase) Execute(ctx context.Context, query SearchRequestsQuery) (*SearchRequestsResult, error) {
	principal, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.Authorize(principal.Role, authorization.OpViewRequest); err != nil {
		return nil, err
	}

	requests, err := uc.requestRepo.Search(ctx, query.Query)
	if err != nil {
		uc.logger.Errorw("failed to search requests", "query", query.Query, "error", err)
		return nil, err
	}

	views := make([]RequestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, newRequestView(req))
	}

	return &SearchRequestsResult{Requests: views}, nil
}
