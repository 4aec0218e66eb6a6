package models

// BoardSpace is the static definition of a property space as read from the
// board file.
type BoardSpace struct {
	Name     string `json:"name"`
	Group    string `json:"group"`
	Position int    `json:"position"`
	Price    int    `json:"price"`
	Rent     int    `json:"rent"`
}
