package postgres

import (
	"context"

	"tripmap/internal/domain/entity"
	domainerrors "tripmap/internal/domain/errors"
	"tripmap/internal/domain/repository"
	"tripmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
// Instances created by the repository factory are bound to a transaction and have no txManager.
type categoryRepository struct {
	db        *gorm.DB
	txManager repository.TransactionManager
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB, txManager repository.TransactionManager) repository.CategoryRepository {
	return &categoryRepository{db: db, txManager: txManager}
}

// FindCategoriesByOwner retrieves all categories of an owner in insertion order.
func (repo *categoryRepository) FindCategoriesByOwner(ctx context.Context, ownerID string) ([]entity.Category, error) {
	if repo.db == nil {
		return nil, repository.ErrStoreUnavailable
	}

	var categoryModels []*model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&categoryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories by owner")
	}

	categories := make([]entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// CreateCategory persists a new category under a server-assigned ID.
func (repo *categoryRepository) CreateCategory(ctx context.Context, ownerID string, category entity.Category) (*entity.Category, error) {
	if repo.db == nil {
		return nil, repository.ErrStoreUnavailable
	}

	categoryM := fromCategoryDomain(ownerID, category)
	categoryM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("category rejected by the remote store")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	created := toCategoryDomain(categoryM)

	return &created, nil
}

// UpdateCategory applies the non-nil fields of the patch.
func (repo *categoryRepository) UpdateCategory(ctx context.Context, id string, patch entity.CategoryPatch) error {
	if repo.db == nil {
		return repository.ErrStoreUnavailable
	}

	updates := categoryUpdates(patch)
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory removes the category and clears it from every location in one transaction.
func (repo *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	if repo.db == nil {
		return repository.ErrStoreUnavailable
	}

	if repo.txManager == nil {
		return repo.deleteWithReferences(ctx, NewLocationRepository(repo.db), id)
	}

	return repo.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCategoryRepository().DeleteCategory(ctx, id)
	})
}

func (repo *categoryRepository) deleteWithReferences(ctx context.Context, locations repository.LocationRepository, id string) error {
	if err := locations.ClearCategoryReferences(ctx, id); err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func categoryUpdates(patch entity.CategoryPatch) map[string]any {
	updates := make(map[string]any, 2)
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Color != nil {
		updates["color"] = *patch.Color
	}

	return updates
}

func toCategoryDomain(data *model.CategoryModel) entity.Category {
	if data == nil {
		return entity.Category{}
	}

	return entity.Category{
		ID:    data.ID,
		Name:  data.Name,
		Color: data.Color,
	}
}

func fromCategoryDomain(ownerID string, data entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:      data.ID,
		OwnerID: ownerID,
		Name:    data.Name,
		Color:   data.Color,
	}
}
