package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

// CatalogGormRepository reads the tables owned by the profile and
// service collaborators.
type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

var _ domain.Catalog = (*CatalogGormRepository)(nil)

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

func (r *CatalogGormRepository) GetProvider(
	ctx context.Context,
	id uint,
) (*models.HairdresserProfile, error) {

	var p models.HairdresserProfile
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *CatalogGormRepository) GetProviderByUserID(
	ctx context.Context,
	userID uint,
) (*models.HairdresserProfile, error) {

	var p models.HairdresserProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}
