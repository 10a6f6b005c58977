package request

import (
	"fmt"
	"time"
)

// Comment is an append-only note on a request. Comments are never mutated or
// deleted; insertion requires the referenced request to exist.
type Comment struct {
	id        uint
	requestID uint
	author    string
	text      string
	createdAt time.Time
}

func NewComment(requestID uint, author string, text string) (*Comment, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if len(author) == 0 {
		return nil, fmt.Errorf("author is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("text cannot be empty")
	}

	return &Comment{
		requestID: requestID,
		author:    author,
		text:      text,
		createdAt: time.Now(),
	}, nil
}

func ReconstructComment(
	id uint,
	requestID uint,
	author string,
	text string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}

	return &Comment{
		id:        id,
		requestID: requestID,
		author:    author,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) RequestID() uint {
	return c.requestID
}

func (c *Comment) Author() string {
	return c.author
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
