// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tripmap/internal/domain/entity"
	domainerrors "tripmap/internal/domain/errors"
	"tripmap/internal/domain/repository"
	"tripmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
// A nil db yields a repository whose calls fail with repository.ErrStoreUnavailable.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// FindLocationsByOwner retrieves all locations of an owner in insertion order.
func (repo *locationRepository) FindLocationsByOwner(ctx context.Context, ownerID string) ([]entity.Location, error) {
	if repo.db == nil {
		return nil, repository.ErrStoreUnavailable
	}

	var locationModels []*model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&locationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations by owner")
	}

	locations := make([]entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// CreateLocation persists a new location under a server-assigned ID.
func (repo *locationRepository) CreateLocation(ctx context.Context, ownerID string, location entity.Location) (*entity.Location, error) {
	if repo.db == nil {
		return nil, repository.ErrStoreUnavailable
	}

	locationM := fromLocationDomain(ownerID, location)
	locationM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("location rejected by the remote store")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	created := toLocationDomain(locationM)

	return &created, nil
}

// UpdateLocation applies the non-nil fields of the patch.
func (repo *locationRepository) UpdateLocation(ctx context.Context, id string, patch entity.LocationPatch) error {
	if repo.db == nil {
		return repository.ErrStoreUnavailable
	}

	updates := locationUpdates(patch)
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// DeleteLocation removes a location by its ID.
func (repo *locationRepository) DeleteLocation(ctx context.Context, id string) error {
	if repo.db == nil {
		return repository.ErrStoreUnavailable
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LocationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// ClearCategoryReferences sets category_id to NULL on every location holding the category.
func (repo *locationRepository) ClearCategoryReferences(ctx context.Context, categoryID string) error {
	if repo.db == nil {
		return repository.ErrStoreUnavailable
	}

	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear category references")
	}

	return nil
}

// locationUpdates maps a patch to column updates. A map keeps explicit NULLs for cleared categories.
func locationUpdates(patch entity.LocationPatch) map[string]any {
	updates := make(map[string]any, 4)
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Coordinates != nil {
		updates["longitude"] = patch.Coordinates.Lon()
		updates["latitude"] = patch.Coordinates.Lat()
	}
	switch {
	case patch.ClearCategory:
		updates["category_id"] = nil
	case patch.CategoryID != nil:
		updates["category_id"] = *patch.CategoryID
	}

	return updates
}

func toLocationDomain(data *model.LocationModel) entity.Location {
	if data == nil {
		return entity.Location{}
	}

	location := entity.Location{
		ID:          data.ID,
		Name:        data.Name,
		Coordinates: orb.Point{data.Longitude, data.Latitude},
	}
	if data.CategoryID != nil {
		categoryID := *data.CategoryID
		location.CategoryID = &categoryID
	}

	return location
}

func fromLocationDomain(ownerID string, data entity.Location) *model.LocationModel {
	locationM := &model.LocationModel{
		ID:        data.ID,
		OwnerID:   ownerID,
		Name:      data.Name,
		Longitude: data.Lng(),
		Latitude:  data.Lat(),
	}
	if data.CategoryID != nil {
		categoryID := *data.CategoryID
		locationM.CategoryID = &categoryID
	}

	return locationM
}
