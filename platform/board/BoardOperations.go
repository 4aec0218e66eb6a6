package board

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/DedS3t/monopoly-properties/app/models"
)

var ErrNotFound = errors.New("not found")

//go:embed properties.json
var defaultBoard []byte

func LoadProperties(path string) ([]models.BoardSpace, error) {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board %s: %w", path, err)
	}
	return parseSpaces(byteValue)
}

func LoadDefault() ([]models.BoardSpace, error) {
	return parseSpaces(defaultBoard)
}

func parseSpaces(byteValue []byte) ([]models.BoardSpace, error) {
	var spaces []models.BoardSpace
	if err := json.Unmarshal(byteValue, &spaces); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	sort.SliceStable(spaces, func(i, j int) bool { return spaces[i].Position < spaces[j].Position })
	return spaces, nil
}

// Board owns every property of a game plus the players' portfolios. Each
// property is guarded by its own mutex; there is no cross-property locking.
type Board struct {
	spaces     []models.BoardSpace
	properties []*models.Property
	byName     map[string]int
	locks      []sync.Mutex

	portfoliosMu sync.Mutex
	portfolios   models.Portfolios
}

func NewBoard(spaces []models.BoardSpace) (*Board, error) {
	b := &Board{
		spaces:     spaces,
		properties: make([]*models.Property, 0, len(spaces)),
		byName:     make(map[string]int, len(spaces)),
		locks:      make([]sync.Mutex, len(spaces)),
		portfolios: models.Portfolios{},
	}
	for idx, space := range spaces {
		if _, dup := b.byName[space.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate space %q", models.ErrInvalidProperty, space.Name)
		}
		property, err := models.NewProperty(space.Name, space.Price, space.Rent)
		if err != nil {
			return nil, fmt.Errorf("space at %d: %w", space.Position, err)
		}
		b.properties = append(b.properties, property)
		b.byName[space.Name] = idx
	}
	return b, nil
}

func (b *Board) GetByPos(pos int) (*models.Property, error) { // O(N) time complexity
	for idx, space := range b.spaces {
		if space.Position == pos {
			return b.properties[idx], nil
		}
	}
	return nil, fmt.Errorf("position %d: %w", pos, ErrNotFound)
}

func (b *Board) GetByName(name string) (*models.Property, error) {
	idx, ok := b.byName[name]
	if !ok {
		return nil, fmt.Errorf("property %q: %w", name, ErrNotFound)
	}
	return b.properties[idx], nil
}

func (b *Board) Spaces() []models.BoardSpace {
	out := make([]models.BoardSpace, len(b.spaces))
	copy(out, b.spaces)
	return out
}

// All returns the properties in board order.
func (b *Board) All() []*models.Property {
	out := make([]*models.Property, len(b.properties))
	copy(out, b.properties)
	return out
}

// With runs fn while holding the named property's lock.
func (b *Board) With(name string, fn func(*models.Property)) error {
	idx, ok := b.byName[name]
	if !ok {
		return fmt.Errorf("property %q: %w", name, ErrNotFound)
	}
	b.locks[idx].Lock()
	defer b.locks[idx].Unlock()
	fn(b.properties[idx])
	return nil
}

// WithMany runs fn while holding the locks of every named property. Locks are
// taken in board order; unknown names are skipped.
func (b *Board) WithMany(names []string, fn func([]*models.Property)) {
	seen := make(map[int]bool, len(names))
	idxs := make([]int, 0, len(names))
	for _, name := range names {
		if idx, ok := b.byName[name]; ok && !seen[idx] {
			seen[idx] = true
			idxs = append(idxs, idx)
		}
	}
	sort.Ints(idxs)

	held := make([]*models.Property, 0, len(idxs))
	for _, idx := range idxs {
		b.locks[idx].Lock()
		defer b.locks[idx].Unlock()
		held = append(held, b.properties[idx])
	}
	fn(held)
}

// Statuses snapshots every property, locking each in turn.
func (b *Board) Statuses() []models.PropertyStatus {
	out := make([]models.PropertyStatus, 0, len(b.properties))
	for idx, property := range b.properties {
		b.locks[idx].Lock()
		out = append(out, property.Status())
		b.locks[idx].Unlock()
	}
	return out
}

func (b *Board) WithPortfolios(fn func(models.Portfolios)) {
	b.portfoliosMu.Lock()
	defer b.portfoliosMu.Unlock()
	fn(b.portfolios)
}
