package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
	itemDomain "github.com/shareit-go/service-shareit/internal/domain/item"
	"gorm.io/gorm"
)

// ItemModel is the GORM model for the items table.
type ItemModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64     `gorm:"not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Available   bool      `gorm:"not null"`
	RequestID   *int64    `gorm:"index"`
	CreatedAt   time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt   time.Time `gorm:"type:timestamptz;not null"`
}

func (ItemModel) TableName() string { return "items" }

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*itemDomain.Item, error) {
	var model ItemModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewItemNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find item by ID: %w", err)
	}
	return toItemDomain(&model), nil
}

func (r *GormItemRepository) FindByIDs(ctx context.Context, ids []int64) ([]*itemDomain.Item, error) {
	if len(ids) == 0 {
		return []*itemDomain.Item{}, nil
	}
	var models []ItemModel
	if err := conn(ctx, r.db).Where("id IN ?", ids).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by IDs: %w", err)
	}
	return toItemDomains(models), nil
}

func (r *GormItemRepository) FindByOwnerID(ctx context.Context, ownerID int64, page *domain.Page) ([]*itemDomain.Item, error) {
	db := conn(ctx, r.db).Where("owner_id = ?", ownerID).Order("id ASC")
	if page != nil {
		db = db.Offset(page.Offset()).Limit(page.Size)
	}
	var models []ItemModel
	if err := db.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find owner items: %w", err)
	}
	return toItemDomains(models), nil
}

func (r *GormItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*itemDomain.Item, error) {
	if len(requestIDs) == 0 {
		return []*itemDomain.Item{}, nil
	}
	var models []ItemModel
	if err := conn(ctx, r.db).Where("request_id IN ?", requestIDs).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by request IDs: %w", err)
	}
	return toItemDomains(models), nil
}

func (r *GormItemRepository) Search(ctx context.Context, text string, page domain.Page) ([]*itemDomain.Item, error) {
	pattern := containsPattern(text)
	var models []ItemModel
	if err := conn(ctx, r.db).
		Where("available = ?", true).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return toItemDomains(models), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-insensitive LIKE pattern matching text literally.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
}

func (r *GormItemRepository) Save(ctx context.Context, it *itemDomain.Item) error {
	model := toItemModel(it)
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	it.AssignID(model.ID)
	return nil
}

func (r *GormItemRepository) Update(ctx context.Context, it *itemDomain.Item) error {
	result := conn(ctx, r.db).
		Model(&ItemModel{}).
		Where("id = ?", it.ID()).
		Updates(map[string]interface{}{
			"name":        it.Name(),
			"description": it.Description(),
			"available":   it.Available(),
			"updated_at":  it.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewItemNotFoundError(it.ID())
	}
	return nil
}

func toItemModel(it *itemDomain.Item) *ItemModel {
	return &ItemModel{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
		CreatedAt:   it.CreatedAt(),
		UpdatedAt:   it.UpdatedAt(),
	}
}

func toItemDomain(m *ItemModel) *itemDomain.Item {
	return itemDomain.Reconstruct(
		m.ID, m.OwnerID,
		m.Name, m.Description,
		m.Available,
		m.RequestID,
		m.CreatedAt, m.UpdatedAt,
	)
}

func toItemDomains(models []ItemModel) []*itemDomain.Item {
	items := make([]*itemDomain.Item, len(models))
	for i := range models {
		items[i] = toItemDomain(&models[i])
	}
	return items
}

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ItemID    int64     `gorm:"not null;index"`
	AuthorID  int64     `gorm:"not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (CommentModel) TableName() string { return "comments" }

// commentRow is a comment joined with its author's name.
type commentRow struct {
	CommentModel
	AuthorName string
}

// GormCommentRepository implements CommentRepository using GORM.
type GormCommentRepository struct {
	db *gorm.DB
}

func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) FindByItemIDs(ctx context.Context, itemIDs []int64) ([]*itemDomain.Comment, error) {
	if len(itemIDs) == 0 {
		return []*itemDomain.Comment{}, nil
	}
	var rows []commentRow
	if err := conn(ctx, r.db).
		Table("comments c").
		Select("c.id, c.item_id, c.author_id, c.text, c.created_at, u.name AS author_name").
		Joins("JOIN users u ON u.id = c.author_id").
		Where("c.item_id IN ?", itemIDs).
		Order("c.created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*itemDomain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = itemDomain.ReconstructComment(row.ID, row.ItemID, row.AuthorID, row.AuthorName, row.Text, row.CreatedAt)
	}
	return comments, nil
}

func (r *GormCommentRepository) Save(ctx context.Context, c *itemDomain.Comment) error {
	model := &CommentModel{
		ItemID:    c.ItemID(),
		AuthorID:  c.AuthorID(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt(),
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	c.AssignID(model.ID)
	return nil
}
