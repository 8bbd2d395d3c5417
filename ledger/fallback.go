package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/templetrust/sevaledger/models"
)

// FileStore keeps the ledger collections in a JSON snapshot on local
// disk. It is the degraded, single-device mode used when the durable
// store is unreachable at startup: non-authoritative with respect to real
// payments, but it keeps the dashboard and the manual cash/expense paths
// working and survives a process restart.
type FileStore struct {
	mu   sync.Mutex
	path string
	data fileData
}

type fileData struct {
	Donations     []models.Donation     `json:"donations"`
	Expenses      []models.Expense      `json:"expenses"`
	Notifications []models.Notification `json:"notifications"`
	NextID        uint                  `json:"next_id"`
}

// NewFileStore opens (or creates) the snapshot under dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	fs := &FileStore{path: filepath.Join(dir, "ledger.json")}
	raw, err := os.ReadFile(fs.path)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &fs.data); err != nil {
			return nil, fmt.Errorf("corrupt ledger snapshot %s: %w", fs.path, err)
		}
	case os.IsNotExist(err):
		// first run, empty ledger
	default:
		return nil, err
	}
	if fs.data.NextID == 0 {
		fs.data.NextID = 1
	}
	return fs, nil
}

// persist writes the whole snapshot atomically. Callers hold fs.mu.
func (fs *FileStore) persist() error {
	raw, err := json.MarshalIndent(&fs.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, fs.path)
}

func (fs *FileStore) UpsertDonation(_ context.Context, d *models.Donation) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	now := time.Now().UTC()
	for i := range fs.data.Donations {
		if fs.data.Donations[i].PaymentID == d.PaymentID {
			d.ID = fs.data.Donations[i].ID
			d.CreatedAt = fs.data.Donations[i].CreatedAt
			d.UpdatedAt = now
			fs.data.Donations[i] = *d
			return fs.persist()
		}
	}
	d.ID = fs.data.NextID
	fs.data.NextID++
	d.CreatedAt = now
	d.UpdatedAt = now
	fs.data.Donations = append(fs.data.Donations, *d)
	return fs.persist()
}

func (fs *FileStore) ListDonations(_ context.Context, limit, offset int) ([]models.Donation, int64, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	donations := make([]models.Donation, len(fs.data.Donations))
	copy(donations, fs.data.Donations)
	sort.SliceStable(donations, func(i, j int) bool {
		return donations[i].Date.After(donations[j].Date)
	})
	total := int64(len(donations))
	return page(donations, limit, offset), total, nil
}

func (fs *FileStore) AddExpense(_ context.Context, e *models.Expense) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	now := time.Now().UTC()
	e.ID = fs.data.NextID
	fs.data.NextID++
	e.CreatedAt = now
	e.UpdatedAt = now
	fs.data.Expenses = append(fs.data.Expenses, *e)
	return fs.persist()
}

func (fs *FileStore) ListExpenses(_ context.Context, limit, offset int) ([]models.Expense, int64, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	expenses := make([]models.Expense, len(fs.data.Expenses))
	copy(expenses, fs.data.Expenses)
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	total := int64(len(expenses))
	return page(expenses, limit, offset), total, nil
}

func (fs *FileStore) AddNotification(_ context.Context, n *models.Notification) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	now := time.Now().UTC()
	n.ID = fs.data.NextID
	fs.data.NextID++
	n.CreatedAt = now
	n.UpdatedAt = now
	fs.data.Notifications = append(fs.data.Notifications, *n)
	return fs.persist()
}

func (fs *FileStore) ListNotifications(_ context.Context) ([]models.Notification, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	notifications := make([]models.Notification, len(fs.data.Notifications))
	copy(notifications, fs.data.Notifications)
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Date.After(notifications[j].Date)
	})
	return notifications, nil
}

func (fs *FileStore) MarkNotificationsRead(_ context.Context) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for i := range fs.data.Notifications {
		fs.data.Notifications[i].Read = true
	}
	return fs.persist()
}

// Ping always succeeds: the snapshot lives on local disk.
func (fs *FileStore) Ping(_ context.Context) error {
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		return items
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
