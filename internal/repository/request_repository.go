package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
	requestDomain "github.com/shareit-go/service-shareit/internal/domain/request"
	"gorm.io/gorm"
)

// RequestModel is the GORM model for the requests table.
type RequestModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	RequestorID int64     `gorm:"not null;index"`
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"type:timestamptz;not null"`
}

func (RequestModel) TableName() string { return "requests" }

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db *gorm.DB
}

func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

func (r *GormRequestRepository) FindByID(ctx context.Context, id int64) (*requestDomain.ItemRequest, error) {
	var model RequestModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewRequestNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find request by ID: %w", err)
	}
	return toRequestDomain(&model), nil
}

func (r *GormRequestRepository) FindByRequestorID(ctx context.Context, requestorID int64) ([]*requestDomain.ItemRequest, error) {
	var models []RequestModel
	if err := conn(ctx, r.db).
		Where("requestor_id = ?", requestorID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find requests by requestor: %w", err)
	}
	return toRequestDomains(models), nil
}

func (r *GormRequestRepository) FindOthers(ctx context.Context, userID int64, page domain.Page) ([]*requestDomain.ItemRequest, error) {
	var models []RequestModel
	if err := conn(ctx, r.db).
		Where("requestor_id <> ?", userID).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find other requests: %w", err)
	}
	return toRequestDomains(models), nil
}

func (r *GormRequestRepository) Save(ctx context.Context, req *requestDomain.ItemRequest) error {
	model := &RequestModel{
		RequestorID: req.RequestorID(),
		Description: req.Description(),
		CreatedAt:   req.CreatedAt(),
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	req.AssignID(model.ID)
	return nil
}

func toRequestDomain(m *RequestModel) *requestDomain.ItemRequest {
	return requestDomain.Reconstruct(m.ID, m.RequestorID, m.Description, m.CreatedAt)
}

func toRequestDomains(models []RequestModel) []*requestDomain.ItemRequest {
	out := make([]*requestDomain.ItemRequest, len(models))
	for i := range models {
		out[i] = toRequestDomain(&models[i])
	}
	return out
}
