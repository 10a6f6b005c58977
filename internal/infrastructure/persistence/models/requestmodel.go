package models

// RequestModel is the persistence model for repair requests. The unique index
// on Number backs up the transactional number allocation: a racing writer that
// minted the same number is rejected at commit and retried.
type RequestModel struct {
	ID          uint   `gorm:"primaryKey"`
	Number      int    `gorm:"uniqueIndex;not null"`
	Equipment   string `gorm:"size:200;not null"`
	FaultType   string `gorm:"size:200"`
	Description string `gorm:"type:text"`
	Client      string `gorm:"size:200;not null"`
	Status      string `gorm:"size:20;not null;index"`
	AssignedTo  string `gorm:"size:100"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RequestModel) TableName() string {
	return "requests"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	RequestID uint   `gorm:"not null;index"`
	Author    string `gorm:"size:100;not null"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "request_comments"
}
