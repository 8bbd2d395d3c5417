package ledger

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/templetrust/sevaledger/models"
)

// Store is the read/write port for the ledger collections. The donations
// table is exclusively written through UpsertDonation, keyed by the
// gateway payment id, so redelivered confirmations converge on one row.
type Store interface {
	UpsertDonation(ctx context.Context, d *models.Donation) error
	ListDonations(ctx context.Context, limit, offset int) ([]models.Donation, int64, error)
	AddExpense(ctx context.Context, e *models.Expense) error
	ListExpenses(ctx context.Context, limit, offset int) ([]models.Expense, int64, error)
	AddNotification(ctx context.Context, n *models.Notification) error
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationsRead(ctx context.Context) error
	Ping(ctx context.Context) error
}

// GormStore is the authoritative store backed by Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// UpsertDonation inserts or merges a donation keyed by payment_id. The
// ON CONFLICT clause makes the merge atomic at the row level, so two
// overlapping redeliveries of the same webhook cannot lose an update.
func (s *GormStore) UpsertDonation(ctx context.Context, d *models.Donation) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "payment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"order_id", "name", "amount", "mode", "status", "date", "updated_at"}),
	}).Create(d).Error
}

func (s *GormStore) ListDonations(ctx context.Context, limit, offset int) ([]models.Donation, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Donation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q := s.db.WithContext(ctx).Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var donations []models.Donation
	if err := q.Find(&donations).Error; err != nil {
		return nil, 0, err
	}
	return donations, total, nil
}

func (s *GormStore) AddExpense(ctx context.Context, e *models.Expense) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *GormStore) ListExpenses(ctx context.Context, limit, offset int) ([]models.Expense, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Expense{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q := s.db.WithContext(ctx).Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var expenses []models.Expense
	if err := q.Find(&expenses).Error; err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

func (s *GormStore) AddNotification(ctx context.Context, n *models.Notification) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *GormStore) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.WithContext(ctx).Order("date DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *GormStore) MarkNotificationsRead(ctx context.Context) error {
	return s.db.WithContext(ctx).Model(&models.Notification{}).Where("read = ?", false).Update("read", true).Error
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
