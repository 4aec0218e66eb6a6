package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioTotals(t *testing.T) {
	med := newTestProperty(t, "Mediterranean Avenue", 60, 2)
	park := newTestProperty(t, "Park Place", 350, 35)
	withHouses(t, med, 2)
	withHouses(t, park, MaxHouses)
	ok, _ := park.AddHotel()
	require.True(t, ok)

	pf := &Portfolio{}
	pf.Add(med)
	pf.Add(park)
	pf.Add(med)

	assert.Equal(t, 2, pf.TotalProperties())
	assert.Equal(t, 2, pf.TotalHouses(), "hotels add no houses")
	assert.Equal(t, 6+175, pf.TotalRent())

	withHouses(t, med, 1)
	assert.Equal(t, 3, pf.TotalHouses(), "portfolio tracks the shared property")
}

func TestPortfolioRemove(t *testing.T) {
	med := newTestProperty(t, "Mediterranean Avenue", 60, 2)
	baltic := newTestProperty(t, "Baltic Avenue", 60, 4)

	pf := &Portfolio{}
	pf.Add(med)
	pf.Add(baltic)

	assert.True(t, pf.Remove(med))
	assert.False(t, pf.Remove(med))
	assert.Equal(t, []*Property{baltic}, pf.Properties())
}

func TestPortfolioDto(t *testing.T) {
	boardwalk := newTestProperty(t, "Boardwalk", 400, 50)
	pf := &Portfolio{}
	pf.Add(boardwalk)

	dto := pf.Dto("Charlie")
	assert.Equal(t, "Charlie", dto.Player)
	assert.Equal(t, 1, dto.TotalProperties)
	assert.Equal(t, 0, dto.TotalHouses)
	assert.Equal(t, 50, dto.TotalRent)
	require.Len(t, dto.Properties, 1)
	assert.Equal(t, "Boardwalk", dto.Properties[0].PropertyName)
}

func TestPortfolios(t *testing.T) {
	ps := Portfolios{}
	bob := ps.For("Bob")
	assert.Same(t, bob, ps.For("Bob"))
	ps.For("Alice")

	assert.Equal(t, []string{"Alice", "Bob"}, ps.Players())
	assert.Equal(t, 0, ps.For("Charlie").TotalProperties())
}
