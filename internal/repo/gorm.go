package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/Skotchmaster/demo_api/internal/models"
)

// GormStore keeps a collection in a gorm table. The table is expected to be migrated.
type GormStore[T models.Keyed] struct {
	DB *gorm.DB

	mu     sync.Mutex
	lastID int
}

// NewGormStore seeds an empty table and remembers the highest id present.
func NewGormStore[T models.Keyed](ctx context.Context, db *gorm.DB, seed ...T) (*GormStore[T], error) {
	s := &GormStore[T]{DB: db}

	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	if total == 0 && len(seed) > 0 {
		if err := db.WithContext(ctx).Create(&seed).Error; err != nil {
			return nil, fmt.Errorf("seed records: %w", err)
		}
	}

	maxID, err := s.maxID(ctx)
	if err != nil {
		return nil, err
	}
	s.lastID = maxID
	return s, nil
}

func (s *GormStore[T]) maxID(ctx context.Context) (int, error) {
	var maxID int
	if err := s.DB.WithContext(ctx).Model(new(T)).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return 0, fmt.Errorf("max id: %w", err)
	}
	return maxID, nil
}

func (s *GormStore[T]) NextID(ctx context.Context) (int, error) {
	maxID, err := s.maxID(ctx)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return nextID(s.lastID, maxID), nil
}

func (s *GormStore[T]) Insert(ctx context.Context, rec *T) error {
	id := (*rec).Key()
	if _, err := s.FindByID(ctx, id); err == nil {
		return fmt.Errorf("insert %d: %w", id, ErrDuplicateID)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	if err := s.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("insert %d: %w", id, err)
	}

	s.mu.Lock()
	s.lastID = max(s.lastID, id)
	s.mu.Unlock()
	return nil
}

func (s *GormStore[T]) FindByID(ctx context.Context, id int) (*T, error) {
	var rec T
	if err := s.DB.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %d: %w", id, err)
	}
	return &rec, nil
}

func (s *GormStore[T]) Update(ctx context.Context, rec *T) error {
	res := s.DB.WithContext(ctx).Model(rec).Select("*").Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("update %d: %w", (*rec).Key(), res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore[T]) Delete(ctx context.Context, id int) (*T, error) {
	rec, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := s.DB.WithContext(ctx).Delete(rec)
	if res.Error != nil {
		return nil, fmt.Errorf("delete %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (s *GormStore[T]) All(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := s.DB.WithContext(ctx).Model(new(T)).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return items, nil
}
