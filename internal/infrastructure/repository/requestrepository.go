package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fixdesk/internal/domain/request"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/db"
	apperrors "fixdesk/internal/shared/errors"
)

// maxCreateRetries bounds retries when a concurrent creator commits the same
// number first and the unique index rejects ours.
const maxCreateRetries = 3

var (
	_ request.RequestRepository = (*RequestRepository)(nil)
	_ request.NumberSequencer   = (*RequestRepository)(nil)
)

type RequestRepository struct {
	db     *gorm.DB
	tm     *db.TransactionManager
	mapper mappers.RequestMapper
}

func NewRequestRepository(gdb *gorm.DB) *RequestRepository {
	return &RequestRepository{
		db:     gdb,
		tm:     db.NewTransactionManager(gdb),
		mapper: mappers.NewRequestMapper(),
	}
}

// NextNumber reads max(number)+1 within the transaction carried by ctx.
// Correct only when the caller commits the read and the dependent insert as
// one unit of work; Create does exactly that.
func (r *RequestRepository) NextNumber(ctx context.Context) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var maxNumber sql.NullInt64
	if err := tx.
		Model(&models.RequestModel{}).
		Select("MAX(number)").
		Scan(&maxNumber).Error; err != nil {
		return 0, translateStoreError(err, "failed to read max request number")
	}

	if !maxNumber.Valid || maxNumber.Int64 < request.FirstNumber {
		return request.FirstNumber, nil
	}
	return int(maxNumber.Int64) + 1, nil
}

// Create allocates the next number and inserts the request in one
// transaction. When the unique index on number reports a racing writer, the
// whole allocate-and-insert unit is retried with a fresh number.
func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	var lastErr error

	for attempt := 0; attempt < maxCreateRetries; attempt++ {
		var created models.RequestModel

		err := r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			number, err := r.NextNumber(txCtx)
			if err != nil {
				return err
			}

			model := r.mapper.ToModel(req)
			model.Number = number

			tx := db.GetTxFromContext(txCtx, r.db)
			if err := tx.Create(model).Error; err != nil {
				return err
			}

			created = *model
			return nil
		})

		if err == nil {
			if err := req.SetID(created.ID); err != nil {
				return err
			}
			return req.SetNumber(created.Number)
		}

		if apperrors.IsDuplicateError(err) {
			lastErr = err
			continue
		}
		return translateStoreError(err, "failed to create request")
	}

	return apperrors.NewUnavailableError("request number allocation kept conflicting", lastErr.Error())
}

func (r *RequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var model models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("request not found")
		}
		return nil, translateStoreError(err, "failed to find request")
	}

	return r.mapper.ToDomain(&model)
}

// Update overwrites the mutable columns only; number and created_at are never
// written. Last write wins per field, as single-row atomicity is all the
// update path requires.
func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RequestModel{}).
		Where("id = ?", model.ID).
		Select("equipment", "fault_type", "description", "client", "status", "assigned_to").
		Updates(model)

	if result.Error != nil {
		return translateStoreError(result.Error, "failed to update request")
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

// Search matches the query as a case-insensitive substring against equipment,
// client, and the decimal text of the number. An empty query returns an empty
// result: search is opt-in, not a listing.
func (r *RequestRepository) Search(ctx context.Context, query string) ([]*request.Request, error) {
	if strings.TrimSpace(query) == "" {
		return []*request.Request{}, nil
	}

	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	pattern := "%" + strings.ToLower(query) + "%"
	tx := db.GetTxFromContext(ctx, r.db)

	var requestModels []models.RequestModel
	if err := tx.
		Where("number LIKE ? OR LOWER(equipment) LIKE ? OR LOWER(client) LIKE ?", pattern, pattern, pattern).
		Order("number ASC").
		Find(&requestModels).Error; err != nil {
		return nil, translateStoreError(err, "failed to search requests")
	}

	requests := make([]*request.Request, len(requestModels))
	for i, model := range requestModels {
		req, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		requests[i] = req
	}

	return requests, nil
}

func (r *RequestRepository) CountByStatus(ctx context.Context, status request.Status) (int64, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.RequestModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, translateStoreError(err, "failed to count requests")
	}

	return count, nil
}

// translateStoreError maps driver faults to the shared taxonomy. Deadline
// exhaustion is transient and surfaces as unavailable so callers may retry.
func translateStoreError(err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewUnavailableError(msg, err.Error())
	}
	return fmt.Errorf("%s: %w", msg, err)
}
