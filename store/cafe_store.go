// Package store runs the cafe queries and commands against the database.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cafeapi/model"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no cafe matches the request.
	ErrNotFound = errors.New("cafe not found")
	// ErrConflict is returned when a write would duplicate a cafe name.
	ErrConflict = errors.New("cafe name already exists")
)

// CafeStore reads and writes the cafe table.
type CafeStore struct {
	db *gorm.DB
}

// NewCafeStore wraps an open database handle.
func NewCafeStore(db *gorm.DB) *CafeStore {
	return &CafeStore{db: db}
}

// All returns every cafe in table order.
func (s *CafeStore) All(ctx context.Context) ([]model.Cafe, error) {
	cafes := []model.Cafe{}
	if err := s.db.WithContext(ctx).Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("list cafes: %w", err)
	}
	return cafes, nil
}

// Random returns one cafe picked uniformly at random.
func (s *CafeStore) Random(ctx context.Context) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := s.db.WithContext(ctx).Order("RANDOM()").Take(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("pick random cafe: %w", err)
	}
	return &cafe, nil
}

// SearchByLocation returns the cafes whose location contains loc, ignoring case.
func (s *CafeStore) SearchByLocation(ctx context.Context, loc string) ([]model.Cafe, error) {
	if strings.TrimSpace(loc) == "" {
		return nil, ErrNotFound
	}

	// SQLite's LIKE folds ASCII case on both sides.
	pattern := "%" + escapeLike(loc) + "%"
	cafes := []model.Cafe{}
	err := s.db.WithContext(ctx).
		Where(`location LIKE ? ESCAPE '\'`, pattern).
		Find(&cafes).Error
	if err != nil {
		return nil, fmt.Errorf("search cafes by location: %w", err)
	}
	if len(cafes) == 0 {
		return nil, ErrNotFound
	}
	return cafes, nil
}

// GetByID returns the cafe with the given id.
func (s *CafeStore) GetByID(ctx context.Context, id uint) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := s.db.WithContext(ctx).First(&cafe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cafe %d: %w", id, err)
	}
	return &cafe, nil
}

// Create inserts cafe and fills in its ID.
func (s *CafeStore) Create(ctx context.Context, cafe *model.Cafe) error {
	cafe.ID = 0
	if err := s.db.WithContext(ctx).Create(cafe).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%w: %s", ErrConflict, cafe.Name)
		}
		return fmt.Errorf("create cafe: %w", err)
	}
	return nil
}

// Update writes only the fields set in upd on the cafe with the given id and
// returns the stored result.
func (s *CafeStore) Update(ctx context.Context, id uint, upd model.CafeUpdate) (*model.Cafe, error) {
	cafe, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Empty() {
		return cafe, nil
	}

	err = s.db.WithContext(ctx).
		Model(&model.Cafe{}).
		Where("id = ?", id).
		Updates(upd.Columns()).Error
	if err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("%w: cafe %d", ErrConflict, id)
		}
		return nil, fmt.Errorf("update cafe %d: %w", id, err)
	}
	return s.GetByID(ctx, id)
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
