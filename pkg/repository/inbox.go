package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/avivsarig/gtd/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InboxRepository is the data access layer for inbox items.
type InboxRepository struct {
	db *gorm.DB
}

// NewInboxRepository creates an inbox repository backed by db.
func NewInboxRepository(db *gorm.DB) *InboxRepository {
	return &InboxRepository{db: db}
}

// List returns live inbox items oldest first, driving a FIFO processing
// workflow. Processed items are hidden unless includeProcessed is set.
func (r *InboxRepository) List(includeProcessed bool) ([]models.InboxItem, error) {
	query := r.db.Model(&models.InboxItem{}).Where("deleted_at IS NULL")
	if !includeProcessed {
		query = query.Where("processed_at IS NULL")
	}

	var items []models.InboxItem
	if err := query.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inbox items: %w", err)
	}
	return items, nil
}

// GetByID returns the live inbox item with the given id, or nil if it does
// not exist or has been soft-deleted.
func (r *InboxRepository) GetByID(id uuid.UUID) (*models.InboxItem, error) {
	var item models.InboxItem
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inbox item %s: %w", id, err)
	}
	return &item, nil
}

// Create inserts a new capture.
func (r *InboxRepository) Create(item *models.InboxItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create inbox item: %w", err)
	}
	return r.reload(item)
}

// UpdateContent replaces the item's content. Processed state is untouched.
func (r *InboxRepository) UpdateContent(item *models.InboxItem, content string) error {
	if err := r.db.Model(item).Update("content", content).Error; err != nil {
		return fmt.Errorf("failed to update inbox item %s: %w", item.ID, err)
	}
	item.Content = content
	return nil
}

// MarkProcessed stamps processed_at. Calling it again on an already
// processed item simply restamps the time.
func (r *InboxRepository) MarkProcessed(item *models.InboxItem) error {
	now := time.Now().UTC()
	if err := r.db.Model(item).Update("processed_at", now).Error; err != nil {
		return fmt.Errorf("failed to mark inbox item %s processed: %w", item.ID, err)
	}
	item.ProcessedAt = &now
	return nil
}

// SoftDelete tombstones the inbox item, independent of processed state.
func (r *InboxRepository) SoftDelete(item *models.InboxItem) error {
	now := time.Now().UTC()
	if err := r.db.Model(item).Update("deleted_at", now).Error; err != nil {
		return fmt.Errorf("failed to delete inbox item %s: %w", item.ID, err)
	}
	item.DeletedAt = &now
	return nil
}

// CountUnprocessed counts the live items still awaiting processing.
func (r *InboxRepository) CountUnprocessed() (int64, error) {
	var count int64
	err := r.db.Model(&models.InboxItem{}).
		Where("processed_at IS NULL AND deleted_at IS NULL").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unprocessed inbox items: %w", err)
	}
	return count, nil
}

func (r *InboxRepository) reload(item *models.InboxItem) error {
	if err := r.db.First(item, "id = ?", item.ID).Error; err != nil {
		return fmt.Errorf("failed to reload inbox item %s: %w", item.ID, err)
	}
	return nil
}
