package repository

import (
	"context"
	"errors"

	"github.com/arjunmenon/restobill/internal/domain/entity"
	domainRepo "github.com/arjunmenon/restobill/internal/domain/repository"
	"gorm.io/gorm"
)

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) domainRepo.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) GetByID(ctx context.Context, id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuRepository) GetByIDs(ctx context.Context, ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) List(ctx context.Context, params *domainRepo.MenuFilterParams) ([]entity.MenuItem, error) {
	var items []entity.MenuItem

	query := r.db.WithContext(ctx).Model(&entity.MenuItem{})
	if params != nil {
		if params.ActiveOnly {
			query = query.Where("is_active = ?", true)
		}
		if params.Category != "" {
			query = query.Where("category = ?", params.Category)
		}
		if params.Search != "" {
			query = query.Where("name LIKE ?", "%"+params.Search+"%")
		}
	}

	err := query.Order("category ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.MenuItem{}).Count(&total).Error
	return total, err
}
