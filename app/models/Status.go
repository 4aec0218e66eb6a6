package models

import "strconv"

type PropertyStatus struct {
	PropertyName string `json:"property_name"`
	Owner        string `json:"owner"`
	Houses       int    `json:"houses"`
	HasHotel     bool   `json:"has_hotel"`
	CurrentRent  int    `json:"current_rent"`
	HouseCost    int    `json:"house_cost"`
	HotelCost    int    `json:"hotel_cost"`
}

type StatusEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Entries returns the status as string pairs sorted by key.
func (s PropertyStatus) Entries() []StatusEntry {
	return []StatusEntry{
		{"current_rent", strconv.Itoa(s.CurrentRent)},
		{"has_hotel", strconv.FormatBool(s.HasHotel)},
		{"hotel_cost", strconv.Itoa(s.HotelCost)},
		{"house_cost", strconv.Itoa(s.HouseCost)},
		{"houses", strconv.Itoa(s.Houses)},
		{"owner", s.Owner},
		{"property_name", s.PropertyName},
	}
}

// ActionResult is what a property action reports back to players.
type ActionResult struct {
	Property string         `json:"property"`
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Status   PropertyStatus `json:"status"`
}
