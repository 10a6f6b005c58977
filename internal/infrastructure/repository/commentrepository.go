package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fixdesk/internal/domain/request"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/db"
	apperrors "fixdesk/internal/shared/errors"
)

var _ request.CommentRepository = (*CommentRepository)(nil)

type CommentRepository struct {
	db     *gorm.DB
	tm     *db.TransactionManager
	mapper mappers.RequestMapper
}

func NewCommentRepository(gdb *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     gdb,
		tm:     db.NewTransactionManager(gdb),
		mapper: mappers.NewRequestMapper(),
	}
}

// Append inserts the comment after verifying the referenced request exists,
// inside one transaction so the request cannot vanish between the check and
// the insert.
func (r *CommentRepository) Append(ctx context.Context, comment *request.Comment) error {
	var created models.CommentModel

	err := r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		var exists models.RequestModel
		if err := tx.Select("id").First(&exists, comment.RequestID()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("request not found")
			}
			return translateStoreError(err, "failed to check request existence")
		}

		model := r.mapper.CommentToModel(comment)
		if err := tx.Create(model).Error; err != nil {
			return translateStoreError(err, "failed to append comment")
		}

		created = *model
		return nil
	})
	if err != nil {
		return err
	}

	return comment.SetID(created.ID)
}

// ListByRequest returns the request's comments in creation order.
func (r *CommentRepository) ListByRequest(ctx context.Context, requestID uint) ([]*request.Comment, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tx := db.GetTxFromContext(ctx, r.db)

	var commentModels []models.CommentModel
	if err := tx.
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, translateStoreError(err, "failed to list comments")
	}

	comments := make([]*request.Comment, len(commentModels))
	for i, model := range commentModels {
		c, err := r.mapper.CommentToDomain(&model)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}
