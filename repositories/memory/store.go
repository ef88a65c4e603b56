// Package memory holds map-backed implementations of the repository
// interfaces. They mirror the Postgres constraints that the services rely on
// (foreign keys, unique pairs, cascades) and are used by the test suites.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/models"
)

type savedKey struct {
	userID uint
	scamID uint
}

type Store struct {
	mu sync.RWMutex

	// Fail, when set, is returned by every operation.
	Fail error

	clock  time.Time
	nextID uint

	users      map[uint]*models.User
	scams      map[uint]*models.Scam
	comments   map[uint]*models.Comment
	likes      map[uint]*models.Like
	reports    map[uint]*models.Report
	categories map[string]*models.Category
	saved      map[savedKey]time.Time
}

func NewStore() *Store {
	return &Store{
		clock:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:      map[uint]*models.User{},
		scams:      map[uint]*models.Scam{},
		comments:   map[uint]*models.Comment{},
		likes:      map[uint]*models.Like{},
		reports:    map[uint]*models.Report{},
		categories: map[string]*models.Category{},
		saved:      map[savedKey]time.Time{},
	}
}

// tick advances the store clock one second so insertion order is also time order.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func (s *Store) stamp(created *time.Time, updated *time.Time) {
	now := s.tick()
	if created.IsZero() {
		*created = now
	}
	if updated != nil && updated.IsZero() {
		*updated = *created
	}
}

func notFound(message string) error {
	return apperrors.NotFound(message)
}

func foreignKey(message string) error {
	return apperrors.ForeignKeyViolation(message, nil)
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func newestFirst[T any](items []T, created func(T) time.Time, id func(T) uint) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if ci.Equal(cj) {
			return id(items[i]) > id(items[j])
		}
		return ci.After(cj)
	})
}
