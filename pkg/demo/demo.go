package demo

import (
	"fmt"
	"io"

	"github.com/DedS3t/monopoly-properties/app/models"
)

type reporter struct {
	w io.Writer
}

func (r reporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format, args...)
}

func (r reporter) divider() {
	r.printf("\n----------------------------------------\n")
}

func ownerOrNone(owner string) string {
	if owner == "" {
		return "None"
	}
	return owner
}

func (r reporter) status(p *models.Property) {
	r.printf("\nProperty Status for %s:\n", p.Name())
	r.printf("Current Owner: %s\n", ownerOrNone(p.Owner()))
	for _, entry := range p.Status().Entries() {
		r.printf("%s: %s\n", entry.Key, entry.Value)
	}
	r.divider()
}

func (r reporter) portfolio(player string, pf *models.Portfolio) {
	r.printf("\nPlayer: %s\n", player)
	r.printf("Total Properties Owned: %d\n", pf.TotalProperties())
	r.printf("Total Houses Built: %d\n", pf.TotalHouses())
	r.printf("Total Rent Collectible: $%d\n", pf.TotalRent())
	r.printf("\nOwned Properties:\n")
	for _, p := range pf.Properties() {
		hotel := "No"
		if p.HasHotel() {
			hotel = "Yes"
		}
		r.printf("\n%s:\nHouses: %d\nHas Hotel: %s\nCurrent Rent: $%d\n", p.Name(), p.Houses(), hotel, p.CalculateRent())
	}
	r.divider()
}

func (r reporter) portfolios(ps models.Portfolios) {
	for _, player := range ps.Players() {
		r.portfolio(player, ps[player])
	}
}

func (r reporter) basicOperations(p *models.Property, player string, ps models.Portfolios) {
	r.printf("\nTesting Basic Operations for %s\n", p.Name())
	ok, msg := p.Purchase(player)
	r.printf("Purchase by %s: %s\n", player, msg)
	if ok {
		ps.For(player).Add(p)
	}

	r.printf("\nRent Calculations:\n")
	r.printf("Base rent: $%d\n", p.CalculateRent())
	for i := 1; i <= models.MaxHouses; i++ {
		p.AddHouse()
		r.printf("Rent with %d houses: $%d\n", i, p.CalculateRent())
	}
}

func (r reporter) hotelOperations(p *models.Property) {
	r.printf("\nTesting Hotel Operations for %s\n", p.Name())
	ok, msg := p.AddHotel()
	r.printf("Hotel addition attempt: %s\n", msg)
	if !ok {
		return
	}
	r.printf("Rent with hotel: $%d\n", p.CalculateRent())
	_, msg = p.AddHouse()
	r.printf("Attempt to add house with hotel: %s\n", msg)
	_, msg = p.RemoveHotel()
	r.printf("Hotel removal: %s\n", msg)
}

func (r reporter) edgeCases(p *models.Property) {
	r.printf("\nTesting Edge Cases for %s\n", p.Name())
	_, msg := p.AddHouse()
	r.printf("Adding extra house: %s\n", msg)
	for i := 0; i < 6; i++ {
		_, msg = p.RemoveHouse()
		r.printf("Removing house attempt %d: %s\n", i+1, msg)
	}
	_, msg = p.AddHotel()
	r.printf("Adding hotel without houses: %s\n", msg)
}

func (r reporter) ownershipTransfer(p *models.Property, initialOwner, invalidTransferrer, newOwner string, ps models.Portfolios) {
	r.printf("\nTesting Ownership for %s\n", p.Name())
	r.printf("Current Owner: %s\n", ownerOrNone(p.Owner()))
	ok, msg := p.Purchase(initialOwner)
	if ok {
		ps.For(initialOwner).Add(p)
	}
	r.printf("Initial purchase by %s: %s\n", initialOwner, msg)

	_, msg = p.TransferOwnership(invalidTransferrer, newOwner)
	r.printf("Invalid transfer attempt by %s: %s\n", invalidTransferrer, msg)

	ok, msg = p.TransferOwnership(initialOwner, newOwner)
	if ok {
		ps.For(initialOwner).Remove(p)
		ps.For(newOwner).Add(p)
	}
	r.printf("Valid transfer from %s to %s: %s\n", initialOwner, newOwner, msg)
}

func mustProperty(name string, price, rent int) *models.Property {
	p, err := models.NewProperty(name, price, rent)
	if err != nil {
		panic(err)
	}
	return p
}

// Run plays the scripted walkthrough of every property operation and writes
// the report to w. It returns the portfolios it built.
func Run(w io.Writer) models.Portfolios {
	const (
		player1 = "Alice"
		player2 = "Bob"
		player3 = "Charlie"
	)

	mediterraneanAve := mustProperty("Mediterranean Avenue", 60, 2)
	parkPlace := mustProperty("Park Place", 350, 35)
	boardwalk := mustProperty("Boardwalk", 400, 50)
	atlanticAve := mustProperty("Atlantic Avenue", 260, 22)

	r := reporter{w: w}
	ps := models.Portfolios{}

	r.printf("Test Case 1: Initial Property Status\n")
	r.status(mediterraneanAve)
	r.status(parkPlace)
	r.status(boardwalk)

	r.printf("\nTest Case 2: Basic Operations and Ownership\n")
	r.basicOperations(mediterraneanAve, player1, ps)
	r.basicOperations(parkPlace, player2, ps)
	r.basicOperations(boardwalk, player3, ps)

	r.printf("\nTest Case 3: Initial Player Portfolios\n")
	r.portfolios(ps)

	r.printf("\nTest Case 4: Hotel Operations\n")
	r.hotelOperations(mediterraneanAve)
	r.hotelOperations(parkPlace)

	r.printf("\nTest Case 5: Edge Cases\n")
	r.edgeCases(boardwalk)

	r.printf("\nTest Case 6: Ownership Transfers\n")
	r.ownershipTransfer(atlanticAve, player1, player2, player3, ps)

	r.printf("\nTest Case 7: Final Portfolio Status\n")
	r.portfolios(ps)

	r.printf("\nTest Case 8: Final Property Status\n")
	r.status(mediterraneanAve)
	r.status(parkPlace)
	r.status(boardwalk)
	r.status(atlanticAve)

	return ps
}
