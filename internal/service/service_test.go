package service_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	config "github.com/Keoroanthony/go-crm/configs"
	"github.com/Keoroanthony/go-crm/internal/db"
	"github.com/Keoroanthony/go-crm/internal/models"
	"github.com/Keoroanthony/go-crm/internal/notifier"
	"github.com/Keoroanthony/go-crm/internal/service"
	"github.com/Keoroanthony/go-crm/internal/validation"
)

// setupTestDB opens a private in-memory SQLite database for one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	testDB, err := db.Open(config.DatabaseConfig{
		Driver:   "sqlite",
		Name:     fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(testDB))

	t.Cleanup(func() { _ = db.Close(testDB) })
	return testDB
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notifier.OrderConfirmation
	err  error
}

func (r *recordingNotifier) NotifyOrderCreated(_ context.Context, oc notifier.OrderConfirmation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, oc)
	return r.err
}

func newServices(t *testing.T) (*service.CreationService, *service.QueryService, *gorm.DB, *recordingNotifier) {
	t.Helper()

	testDB := setupTestDB(t)
	rec := &recordingNotifier{}
	return service.NewCreationService(testDB, validation.New(), rec), service.NewQueryService(testDB), testDB, rec
}

func seedCustomer(t *testing.T, testDB *gorm.DB, name, email string) models.Customer {
	t.Helper()

	c := models.Customer{Name: name, Email: email}
	require.NoError(t, testDB.Create(&c).Error)
	return c
}

func seedProduct(t *testing.T, testDB *gorm.DB, name, price string) models.Product {
	t.Helper()

	p := models.Product{Name: name, Price: decimal.RequireFromString(price)}
	require.NoError(t, testDB.Create(&p).Error)
	return p
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// raceDuplicateEmail writes a customer with email just before the service's
// own insert of that email, the way a concurrent request would. It fires once.
func raceDuplicateEmail(t *testing.T, testDB *gorm.DB, email string) {
	t.Helper()

	fired := false
	err := testDB.Callback().Create().Before("gorm:create").Register("test:race_duplicate_email", func(tx *gorm.DB) {
		c, ok := tx.Statement.Dest.(*models.Customer)
		if !ok || fired || c.Email != email {
			return
		}
		fired = true

		err := tx.Session(&gorm.Session{NewDB: true}).
			Exec("INSERT INTO customers (name, email) VALUES (?, ?)", "Racer", email).Error
		if err != nil {
			_ = tx.AddError(err)
		}
	})
	require.NoError(t, err)
}
