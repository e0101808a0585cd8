package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"tripmap/internal/domain/constants"
	"tripmap/internal/domain/entity"
	"tripmap/internal/errors"
)

const defaultDir = "~/.local/share/tripmap"

// FileStore keeps each snapshot as a JSON file inside one directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a file-backed snapshot store. An empty dir selects the default location.
func NewFileStore(dir string) (*FileStore, error) {
	resolved, err := resolveDir(dir)
	if err != nil {
		return nil, err
	}

	return &FileStore{dir: resolved}, nil
}

// Dir returns the resolved snapshot directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) SaveLocations(ctx context.Context, locations []entity.Location) error {
	data, err := encode(locations)
	if err != nil {
		return err
	}

	return s.write(constants.SnapshotKeyLocations, data)
}

func (s *FileStore) SaveCategories(ctx context.Context, categories []entity.Category) error {
	data, err := encode(categories)
	if err != nil {
		return err
	}

	return s.write(constants.SnapshotKeyCategories, data)
}

func (s *FileStore) LoadLocations(ctx context.Context) ([]entity.Location, error) {
	data, err := s.read(constants.SnapshotKeyLocations)
	if err != nil {
		return []entity.Location{}, err
	}

	return decodeLocations(data)
}

func (s *FileStore) LoadCategories(ctx context.Context) ([]entity.Category, error) {
	data, err := s.read(constants.SnapshotKeyCategories)
	if err != nil {
		return []entity.Category{}, err
	}

	return decodeCategories(data)
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// read treats a missing file as an empty snapshot.
func (s *FileStore) read(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "read %s snapshot", key)
	}

	return data, nil
}

// write replaces the snapshot through a rename so readers never see a partial file.
func (s *FileStore) write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "create snapshot dir")
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create %s snapshot", key)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "write %s snapshot", key)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s snapshot", key)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return errors.Wrapf(err, "replace %s snapshot", key)
	}

	return nil
}

func resolveDir(dir string) (string, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		trimmed = defaultDir
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "resolve home dir")
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}

	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", errors.Wrap(err, "resolve snapshot dir")
	}

	return abs, nil
}
