package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	ps := Run(&out)
	report := out.String()

	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, ps.Players())
	assert.Equal(t, 1, ps["Alice"].TotalProperties(), "Atlantic Avenue moved to Charlie")
	assert.Equal(t, 2, ps["Charlie"].TotalProperties())

	for _, line := range []string{
		"Purchase by Charlie: Property purchased by Charlie",
		"Rent with 4 houses: $250",
		"Hotel addition attempt: Hotel added successfully",
		"Attempt to add house with hotel: Property already has a hotel",
		"Adding extra house: Maximum number of houses reached",
		"Removing house attempt 5: No houses to remove",
		"Adding hotel without houses: Need 4 houses before adding hotel",
		"Invalid transfer attempt by Bob: Only the current owner can transfer the property",
		"Valid transfer from Alice to Charlie: Property transferred from Alice to Charlie",
		"Current Owner: None",
	} {
		assert.Contains(t, report, line)
	}

	require.Contains(t, report, "Test Case 8: Final Property Status")
}
