// Package snapshot keeps a local copy of the trip lists so a restart can recover
// when the remote store is unreachable.
package snapshot

import (
	"encoding/json"

	"tripmap/internal/domain/entity"
	"tripmap/internal/errors"
)

// ErrMalformed is returned alongside an empty list when a snapshot cannot be decoded.
var ErrMalformed = errors.New("malformed snapshot")

func encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "marshal snapshot")
	}

	return data, nil
}

// decode never returns nil; a malformed payload yields an empty list and ErrMalformed.
func decode[T any](data []byte) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, errors.Wrap(ErrMalformed, err.Error())
	}
	if items == nil {
		return []T{}, nil
	}

	return items, nil
}

func decodeLocations(data []byte) ([]entity.Location, error) {
	return decode[entity.Location](data)
}

func decodeCategories(data []byte) ([]entity.Category, error) {
	return decode[entity.Category](data)
}
