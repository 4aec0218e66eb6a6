package models

import (
	"errors"
	"fmt"
	"strconv"
)

const MaxHouses = 4

var ErrInvalidProperty = errors.New("invalid property")

// An owned property always has a named owner.
const playerRequired = "Player name required"

// Property is one ownable board space. A single instance is shared by every
// view that references it; callers serialize access to it.
type Property struct {
	name          string
	purchasePrice int
	rentAmount    int
	houseCost     int
	hotelCost     int

	owner     string
	numHouses int
	hasHotel  bool
	isOwned   bool
}

func NewProperty(name string, purchasePrice int, rentAmount int) (*Property, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidProperty)
	}
	if purchasePrice <= 0 {
		return nil, fmt.Errorf("%w: %s has non-positive price %d", ErrInvalidProperty, name, purchasePrice)
	}
	if rentAmount <= 0 {
		return nil, fmt.Errorf("%w: %s has non-positive rent %d", ErrInvalidProperty, name, rentAmount)
	}
	houseCost := purchasePrice / 2
	return &Property{
		name:          name,
		purchasePrice: purchasePrice,
		rentAmount:    rentAmount,
		houseCost:     houseCost,
		hotelCost:     houseCost * 5,
	}, nil
}

func (p *Property) AddHouse() (bool, string) {
	if p.hasHotel {
		return false, "Property already has a hotel"
	}
	if p.numHouses >= MaxHouses {
		return false, "Maximum number of houses reached"
	}
	p.numHouses++
	return true, "House added. Now has " + strconv.Itoa(p.numHouses) + " houses"
}

func (p *Property) RemoveHouse() (bool, string) {
	if p.hasHotel {
		return false, "Cannot remove houses while hotel exists"
	}
	if p.numHouses <= 0 {
		return false, "No houses to remove"
	}
	p.numHouses--
	return true, "House removed. Now has " + strconv.Itoa(p.numHouses) + " houses"
}

// AddHotel trades the four houses for a hotel.
func (p *Property) AddHotel() (bool, string) {
	if p.hasHotel {
		return false, "Hotel already exists"
	}
	if p.numHouses < MaxHouses {
		return false, "Need " + strconv.Itoa(MaxHouses) + " houses before adding hotel"
	}
	p.hasHotel = true
	p.numHouses = 0
	return true, "Hotel added successfully"
}

// RemoveHotel leaves the property with no improvements; the houses traded
// for the hotel are not given back.
func (p *Property) RemoveHotel() (bool, string) {
	if !p.hasHotel {
		return false, "No hotel to remove"
	}
	p.hasHotel = false
	return true, "Hotel removed successfully"
}

func (p *Property) CalculateRent() int {
	if p.hasHotel {
		return p.rentAmount * 5
	}
	return p.rentAmount * (p.numHouses + 1)
}

func (p *Property) Purchase(player string) (bool, string) {
	if p.isOwned {
		return false, "Property already owned"
	}
	if player == "" {
		return false, playerRequired
	}
	p.owner = player
	p.isOwned = true
	return true, "Property purchased by " + player
}

// TransferOwnership hands the property to newOwner. currentOwner must match
// the stored owner exactly.
func (p *Property) TransferOwnership(currentOwner string, newOwner string) (bool, string) {
	if !p.isOwned {
		return false, "Property not owned, cannot transfer"
	}
	if p.owner != currentOwner {
		return false, "Only the current owner can transfer the property"
	}
	if newOwner == "" {
		return false, playerRequired
	}
	p.owner = newOwner
	return true, "Property transferred from " + currentOwner + " to " + newOwner
}

func (p *Property) Status() PropertyStatus {
	return PropertyStatus{
		PropertyName: p.name,
		Owner:        p.owner,
		Houses:       p.numHouses,
		HasHotel:     p.hasHotel,
		CurrentRent:  p.CalculateRent(),
		HouseCost:    p.houseCost,
		HotelCost:    p.hotelCost,
	}
}

func (p *Property) Name() string       { return p.name }
func (p *Property) PurchasePrice() int { return p.purchasePrice }
func (p *Property) RentAmount() int    { return p.rentAmount }
func (p *Property) Owner() string      { return p.owner }
func (p *Property) IsOwned() bool      { return p.isOwned }
func (p *Property) Houses() int        { return p.numHouses }
func (p *Property) HasHotel() bool     { return p.hasHotel }
func (p *Property) HouseCost() int     { return p.houseCost }
func (p *Property) HotelCost() int     { return p.hotelCost }
