package models

import "sort"

// Portfolio is a read-only view over the properties a player holds.
type Portfolio struct {
	properties []*Property
}

func (pf *Portfolio) Add(p *Property) {
	for _, held := range pf.properties {
		if held == p {
			return
		}
	}
	pf.properties = append(pf.properties, p)
}

func (pf *Portfolio) Remove(p *Property) bool {
	for idx, held := range pf.properties {
		if held == p {
			pf.properties = append(pf.properties[:idx], pf.properties[idx+1:]...)
			return true
		}
	}
	return false
}

func (pf *Portfolio) Properties() []*Property {
	out := make([]*Property, len(pf.properties))
	copy(out, pf.properties)
	return out
}

func (pf *Portfolio) TotalProperties() int {
	return len(pf.properties)
}

// TotalHouses counts houses only; a hotel contributes nothing.
func (pf *Portfolio) TotalHouses() int {
	total := 0
	for _, p := range pf.properties {
		total += p.Houses()
	}
	return total
}

func (pf *Portfolio) TotalRent() int {
	total := 0
	for _, p := range pf.properties {
		total += p.CalculateRent()
	}
	return total
}

type PortfolioDto struct {
	Player          string           `json:"player"`
	TotalProperties int              `json:"total_properties"`
	TotalHouses     int              `json:"total_houses"`
	TotalRent       int              `json:"total_rent"`
	Properties      []PropertyStatus `json:"properties"`
}

func (pf *Portfolio) Dto(player string) PortfolioDto {
	dto := PortfolioDto{
		Player:          player,
		TotalProperties: pf.TotalProperties(),
		TotalHouses:     pf.TotalHouses(),
		TotalRent:       pf.TotalRent(),
		Properties:      make([]PropertyStatus, 0, len(pf.properties)),
	}
	for _, p := range pf.properties {
		dto.Properties = append(dto.Properties, p.Status())
	}
	return dto
}

type Portfolios map[string]*Portfolio

func (ps Portfolios) For(player string) *Portfolio {
	pf, ok := ps[player]
	if !ok {
		pf = &Portfolio{}
		ps[player] = pf
	}
	return pf
}

func (ps Portfolios) Players() []string {
	players := make([]string, 0, len(ps))
	for player := range ps {
		players = append(players, player)
	}
	sort.Strings(players)
	return players
}
