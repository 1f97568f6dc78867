// Package service holds the creation and query operations behind the CRM API.
//
// Operations distinguish two kinds of failure. Soft rejections, such as a
// duplicate email or an unknown customer id, come back as a Message on the
// result with a nil error. Hard failures are returned as errors.
package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/Keoroanthony/go-crm/internal/notifier"
	"github.com/Keoroanthony/go-crm/internal/validation"
)

const (
	MsgCustomerCreated = "Customer created successfully"
	MsgEmailExists     = "Email already exists"

	MsgOrderCreated      = "Order created successfully"
	MsgInvalidCustomer   = "Invalid customer ID"
	MsgInvalidProductIDs = "One or more product IDs are invalid"
	MsgNoProducts        = "At least one product must be selected"
)

type CreationService struct {
	db        *gorm.DB
	validator *validation.Engine
	notifier  notifier.Notifier
	now       func() time.Time
}

// NewCreationService wires the service. A nil notifier disables order
// confirmations.
func NewCreationService(db *gorm.DB, v *validation.Engine, n notifier.Notifier) *CreationService {
	if v == nil {
		v = validation.New()
	}
	if n == nil {
		n = notifier.Noop{}
	}
	return &CreationService{
		db:        db,
		validator: v,
		notifier:  n,
		now:       time.Now,
	}
}

type QueryService struct {
	db *gorm.DB
}

func NewQueryService(db *gorm.DB) *QueryService {
	return &QueryService{db: db}
}
