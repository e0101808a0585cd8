package repository

import "context"

// RepositoryFactory creates repositories bound to one transaction.
type RepositoryFactory interface {
	NewLocationRepository() LocationRepository
	NewCategoryRepository() CategoryRepository
}

// TransactionManager runs fn inside a single database transaction.
// The transaction is rolled back when fn returns an error.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
