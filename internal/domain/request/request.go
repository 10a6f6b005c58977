package request

import (
	"fmt"
	"time"
)

// FirstNumber is the business-visible number assigned to the first request
// ever created. Numbers increase strictly from there and are never reused.
const FirstNumber = 1001

// Request is a tracked equipment-repair case. The internal id and the
// business-visible number are assigned by the store; creation date and number
// are immutable once set.
type Request struct {
	id          uint
	number      int
	equipment   string
	faultType   string
	description string
	client      string
	status      Status
	assignedTo  string
	createdAt   time.Time
}

func NewRequest(
	equipment string,
	faultType string,
	description string,
	client string,
	status Status,
	assignedTo string,
) (*Request, error) {
	if len(equipment) == 0 {
		return nil, fmt.Errorf("equipment is required")
	}
	if len(client) == 0 {
		return nil, fmt.Errorf("client is required")
	}
	if status == "" {
		status = StatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Request{
		equipment:   equipment,
		faultType:   faultType,
		description: description,
		client:      client,
		status:      status,
		assignedTo:  assignedTo,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructRequest(
	id uint,
	number int,
	equipment string,
	faultType string,
	description string,
	client string,
	status Status,
	assignedTo string,
	createdAt time.Time,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if number < FirstNumber {
		return nil, fmt.Errorf("request number %d below minimum", number)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Request{
		id:          id,
		number:      number,
		equipment:   equipment,
		faultType:   faultType,
		description: description,
		client:      client,
		status:      status,
		assignedTo:  assignedTo,
		createdAt:   createdAt,
	}, nil
}

func (r *Request) ID() uint {
	return r.id
}

func (r *Request) Number() int {
	return r.number
}

func (r *Request) Equipment() string {
	return r.equipment
}

func (r *Request) FaultType() string {
	return r.faultType
}

func (r *Request) Description() string {
	return r.description
}

func (r *Request) Client() string {
	return r.client
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) AssignedTo() string {
	return r.assignedTo
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Request) SetNumber(number int) error {
	if r.number != 0 {
		return fmt.Errorf("request number is already set")
	}
	if number < FirstNumber {
		return fmt.Errorf("request number %d below minimum", number)
	}
	r.number = number
	return nil
}

// UpdateFields carries a partial update: a field present and non-empty
// overwrites the stored value, an empty field leaves it untouched. Clearing a
// field to empty is therefore not expressible through update.
type UpdateFields struct {
	Equipment   string
	FaultType   string
	Description string
	Client      string
	Status      string
	AssignedTo  string
}

// ApplyUpdate merges the non-empty fields into the request. The number and
// creation date are never modified.
func (r *Request) ApplyUpdate(fields UpdateFields) error {
	if fields.Status != "" {
		status, err := NewStatus(fields.Status)
		if err != nil {
			return err
		}
		r.status = status
	}
	if fields.Equipment != "" {
		r.equipment = fields.Equipment
	}
	if fields.FaultType != "" {
		r.faultType = fields.FaultType
	}
	if fields.Description != "" {
		r.description = fields.Description
	}
	if fields.Client != "" {
		r.client = fields.Client
	}
	if fields.AssignedTo != "" {
		r.assignedTo = fields.AssignedTo
	}
	return nil
}

// IsEmpty reports whether the update would change nothing.
func (f UpdateFields) IsEmpty() bool {
	return f == UpdateFields{}
}
