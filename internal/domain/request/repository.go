package request

import "context"

// RequestRepository owns request records. Create allocates the next number via
// the sequencer and inserts in one atomic unit of work; it sets the id and
// number on the passed entity.
type RequestRepository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id uint) (*Request, error)
	Update(ctx context.Context, req *Request) error
	Search(ctx context.Context, query string) ([]*Request, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}

// CommentRepository is the append-only comment ledger.
type CommentRepository interface {
	Append(ctx context.Context, comment *Comment) error
	ListByRequest(ctx context.Context, requestID uint) ([]*Comment, error)
}

// NumberSequencer produces the next request number. NextNumber must be called
// inside the same unit of work as the insert it serves: the read of the
// current maximum and the insert must commit without an interleaving writer.
type NumberSequencer interface {
	NextNumber(ctx context.Context) (int, error)
}
