package repo

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("record with this id already exists")
)

// Store holds the records of one collection in id order.
type Store[T any] interface {
	// NextID returns the id the next inserted record should carry.
	// Ids are never handed out twice, even after the record is deleted.
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, rec *T) error
	FindByID(ctx context.Context, id int) (*T, error)
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id int) (*T, error)
	// All returns a copy of the collection; callers may filter it freely.
	All(ctx context.Context) ([]T, error)
}

func nextID(highWater, maxExisting int) int {
	if highWater == 0 && maxExisting == 0 {
		return 1
	}
	return max(highWater, maxExisting) + 1
}
