package board

import (
	"sync"
	"testing"

	"github.com/DedS3t/monopoly-properties/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	spaces, err := LoadDefault()
	require.NoError(t, err)
	require.Len(t, spaces, 22)

	assert.Equal(t, "Mediterranean Avenue", spaces[0].Name)
	assert.Equal(t, "Boardwalk", spaces[len(spaces)-1].Name)

	b, err := NewBoard(spaces)
	require.NoError(t, err)
	park, err := b.GetByName("Park Place")
	require.NoError(t, err)
	assert.Equal(t, 175, park.HouseCost())
}

func TestLoadProperties(t *testing.T) {
	spaces, err := LoadProperties("testdata/small.json")
	require.NoError(t, err)
	assert.Equal(t, []models.BoardSpace{
		{Name: "Mediterranean Avenue", Group: "brown", Position: 1, Price: 60, Rent: 2},
		{Name: "Boardwalk", Group: "darkblue", Position: 39, Price: 400, Rent: 50},
	}, spaces)

	_, err = LoadProperties("testdata/missing.json")
	assert.Error(t, err)
}

func TestNewBoardRejectsInvalidSpaces(t *testing.T) {
	spaces, err := LoadProperties("testdata/invalid.json")
	require.NoError(t, err)

	_, err = NewBoard(spaces)
	assert.ErrorIs(t, err, models.ErrInvalidProperty)

	dup := []models.BoardSpace{
		{Name: "Boardwalk", Position: 39, Price: 400, Rent: 50},
		{Name: "Boardwalk", Position: 40, Price: 400, Rent: 50},
	}
	_, err = NewBoard(dup)
	assert.ErrorIs(t, err, models.ErrInvalidProperty)
}

func TestLookups(t *testing.T) {
	spaces, err := LoadProperties("testdata/small.json")
	require.NoError(t, err)
	b, err := NewBoard(spaces)
	require.NoError(t, err)

	p, err := b.GetByPos(39)
	require.NoError(t, err)
	assert.Equal(t, "Boardwalk", p.Name())

	same, err := b.GetByName("Boardwalk")
	require.NoError(t, err)
	assert.Same(t, p, same)

	_, err = b.GetByPos(5)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = b.GetByName("Short Line")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, b.With("Short Line", func(*models.Property) {}), ErrNotFound)

	all := b.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Mediterranean Avenue", all[0].Name())
	assert.Len(t, b.Spaces(), 2)
}

func TestWithSerializesAccess(t *testing.T) {
	spaces, err := LoadProperties("testdata/small.json")
	require.NoError(t, err)
	b, err := NewBoard(spaces)
	require.NoError(t, err)

	var wg sync.WaitGroup
	added := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.With("Boardwalk", func(p *models.Property) {
				ok, _ := p.AddHouse()
				added <- ok
			})
		}()
	}
	wg.Wait()
	close(added)

	succeeded := 0
	for ok := range added {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, models.MaxHouses, succeeded)

	statuses := b.Statuses()
	require.Len(t, statuses, 2)
	assert.Equal(t, models.MaxHouses, statuses[1].Houses)
}

func TestWithMany(t *testing.T) {
	b, err := NewBoard([]models.BoardSpace{
		{Name: "Mediterranean Avenue", Position: 1, Price: 60, Rent: 2},
		{Name: "Baltic Avenue", Position: 3, Price: 60, Rent: 4},
		{Name: "Boardwalk", Position: 39, Price: 400, Rent: 50},
	})
	require.NoError(t, err)

	var names []string
	b.WithMany([]string{"Boardwalk", "Short Line", "Mediterranean Avenue", "Boardwalk"}, func(held []*models.Property) {
		for _, p := range held {
			names = append(names, p.Name())
		}
	})
	assert.Equal(t, []string{"Mediterranean Avenue", "Boardwalk"}, names)

	b.WithMany([]string{"Boardwalk", "Baltic Avenue"}, func([]*models.Property) {
		assert.False(t, b.locks[1].TryLock())
		assert.False(t, b.locks[2].TryLock())
		assert.True(t, b.locks[0].TryLock())
		b.locks[0].Unlock()
	})
	require.True(t, b.locks[2].TryLock(), "locks released")
	b.locks[2].Unlock()
}
