package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-go/service-shareit/internal/domain/booking"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ItemID    int64     `gorm:"not null;index"`
	BookerID  int64     `gorm:"not null;index"`
	StartAt   time.Time `gorm:"type:timestamptz;not null"`
	EndAt     time.Time `gorm:"type:timestamptz;not null"`
	Status    string    `gorm:"not null;size:20;index"`
	Version   int64     `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	return r.findOne(conn(ctx, r.db), id)
}

// FindByIDForUpdate retrieves a booking with SELECT ... FOR UPDATE. Outside a
// transaction the lock is released as soon as the statement completes.
func (r *GormBookingRepository) FindByIDForUpdate(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	return r.findOne(conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormBookingRepository) findOne(db *gorm.DB, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewBookingNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// Find runs a booking query. Time bounds are strict; a nil page returns every match.
func (r *GormBookingRepository) Find(ctx context.Context, q bookingDomain.Query) ([]*bookingDomain.Booking, error) {
	if q.ItemIDs != nil && len(q.ItemIDs) == 0 {
		return []*bookingDomain.Booking{}, nil
	}

	db := conn(ctx, r.db).Model(&BookingModel{})
	if q.BookerID != 0 {
		db = db.Where("booker_id = ?", q.BookerID)
	}
	if len(q.ItemIDs) > 0 {
		db = db.Where("item_id IN ?", q.ItemIDs)
	}
	db = applyFilter(db, q.Filter)
	if q.Page != nil {
		db = db.Offset(q.Page.Offset()).Limit(q.Page.Size)
	}

	var models []BookingModel
	if err := db.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bk, err := toDomainBooking(&models[i])
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}

func applyFilter(db *gorm.DB, f bookingDomain.Filter) *gorm.DB {
	if f.Status != nil {
		db = db.Where("status = ?", f.Status.String())
	}
	if !f.StartBefore.IsZero() {
		db = db.Where("start_at < ?", f.StartBefore)
	}
	if !f.StartAfter.IsZero() {
		db = db.Where("start_at > ?", f.StartAfter)
	}
	if !f.EndBefore.IsZero() {
		db = db.Where("end_at < ?", f.EndBefore)
	}
	if !f.EndAfter.IsZero() {
		db = db.Where("end_at > ?", f.EndAfter)
	}

	switch f.Order {
	case bookingDomain.OrderIDAsc:
		return db.Order("id ASC")
	default:
		return db.Order("start_at DESC").Order("id DESC")
	}
}

// Save persists a new booking and assigns its id.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	bk.AssignID(model.ID)
	return nil
}

// Update persists changes to an existing booking with optimistic locking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	// IncrementVersion has already been called, so the stored row holds version-1.
	expectedVersion := bk.Version() - 1
	result := conn(ctx, r.db).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", bk.ID(), expectedVersion).
		Updates(map[string]interface{}{
			"status":     bk.Status().String(),
			"version":    bk.Version(),
			"updated_at": bk.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	return nil
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        bk.ID(),
		ItemID:    bk.ItemID(),
		BookerID:  bk.BookerID(),
		StartAt:   bk.Start(),
		EndAt:     bk.End(),
		Status:    bk.Status().String(),
		Version:   bk.Version(),
		CreatedAt: bk.CreatedAt(),
		UpdatedAt: bk.UpdatedAt(),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseBookingStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return bookingDomain.ReconstructBooking(
		m.ID,
		m.ItemID,
		m.BookerID,
		m.StartAt.UTC(),
		m.EndAt.UTC(),
		status,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}
