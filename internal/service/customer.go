package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Keoroanthony/go-crm/internal/models"
	"github.com/Keoroanthony/go-crm/internal/validation"
)

type CustomerInput struct {
	Name  string
	Email string
	Phone *string
}

// CustomerResult carries either the created customer or the reason it was
// rejected.
type CustomerResult struct {
	Customer *models.Customer
	Message  string
}

type BulkResult struct {
	Customers []models.Customer
	Errors    []string
}

func (s *CreationService) CreateCustomer(ctx context.Context, in CustomerInput) (CustomerResult, error) {
	gdb := s.db.WithContext(ctx)

	exists, err := emailExists(gdb, in.Email)
	if err != nil {
		return CustomerResult{}, err
	}
	if exists {
		return CustomerResult{Message: MsgEmailExists}, nil
	}

	if msg, err := s.checkCustomer(in); err != nil || msg != "" {
		return CustomerResult{Message: msg}, err
	}

	customer := newCustomer(in)
	if err := gdb.Create(&customer).Error; err != nil {
		// lost a race with a concurrent insert of the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return CustomerResult{Message: MsgEmailExists}, nil
		}
		return CustomerResult{}, fmt.Errorf("failed to create customer: %w", err)
	}

	return CustomerResult{Customer: &customer, Message: MsgCustomerCreated}, nil
}

// BulkCreateCustomers creates each row independently inside one transaction.
// Rejected rows are reported as "Row N: ..." (1-based) and do not undo the
// rows accepted before or after them; the transaction commits whatever was
// accepted. Only a store fault rolls the whole batch back.
func (s *CreationService) BulkCreateCustomers(ctx context.Context, inputs []CustomerInput) (BulkResult, error) {
	res := BulkResult{
		Customers: []models.Customer{},
		Errors:    []string{},
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, in := range inputs {
			row := i + 1

			exists, err := emailExists(tx, in.Email)
			if err != nil {
				return err
			}
			if exists {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Email %s already exists", row, in.Email))
				continue
			}

			msg, err := s.checkCustomer(in)
			if err != nil {
				return err
			}
			if msg != "" {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %s", row, msg))
				continue
			}

			// a failed statement must not abort the surrounding transaction
			savepoint := fmt.Sprintf("bulk_customer_%d", row)
			if err := tx.SavePoint(savepoint).Error; err != nil {
				return err
			}

			customer := newCustomer(in)
			if err := tx.Create(&customer).Error; err != nil {
				if !errors.Is(err, gorm.ErrDuplicatedKey) {
					return err
				}
				if err := tx.RollbackTo(savepoint).Error; err != nil {
					return err
				}
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Email %s already exists", row, in.Email))
				continue
			}

			res.Customers = append(res.Customers, customer)
		}
		return nil
	})
	if err != nil {
		return BulkResult{}, fmt.Errorf("failed to bulk create customers: %w", err)
	}

	return res, nil
}

// checkCustomer returns the rejection message for invalid input, or an error
// if validation itself broke.
func (s *CreationService) checkCustomer(in CustomerInput) (string, error) {
	err := s.validator.ValidateCustomer(in.Name, in.Email, in.Phone)
	if err == nil {
		return "", nil
	}

	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return fe.Error(), nil
	}
	return "", err
}

func emailExists(gdb *gorm.DB, email string) (bool, error) {
	var count int64
	if err := gdb.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func newCustomer(in CustomerInput) models.Customer {
	c := models.Customer{Name: in.Name, Email: in.Email}
	if in.Phone != nil && *in.Phone != "" {
		phone := *in.Phone
		c.Phone = &phone
	}
	return c
}
