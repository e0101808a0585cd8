package main

import (
	"fmt"
	"io"

	"tripmap/internal/infra/auth"

	"github.com/pkg/errors"
)

func runHash(out io.Writer, passcode string) error {
	hash, err := auth.NewBcryptHasher().Hash(passcode)
	if err != nil {
		return errors.Wrap(err, "failed to hash passcode")
	}

	_, err = fmt.Fprintln(out, hash)

	return errors.WithStack(err)
}
