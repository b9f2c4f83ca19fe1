package stl

import "github.com/cockroachdb/errors"

var (
	// ErrAllocation is returned when a raw block cannot be sized or admitted
	// by the Memory backing a Storage. Nothing has been constructed when it is
	// returned.
	ErrAllocation = errors.New("stl: allocation failed")

	// ErrOutOfRange is returned by element access when the index is not in
	// [0, Len()).
	ErrOutOfRange = errors.New("stl: index out of range")

	// ErrConstruction marks errors raised by an element constructor, copier
	// or relocator. The original cause stays reachable through errors.Is.
	ErrConstruction = errors.New("stl: element construction failed")
)

func outOfRange(index, size int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, len %d", index, size)
}

func constructionFailed(err error, op string, index int) error {
	return errors.Mark(errors.Wrapf(err, "%s element %d", op, index), ErrConstruction)
}
