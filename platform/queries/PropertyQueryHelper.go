package queries

import (
	"github.com/DedS3t/monopoly-properties/app/models"
	"github.com/DedS3t/monopoly-properties/platform/board"
	"github.com/sirupsen/logrus"
)

// Notifier receives the outcome of every property action.
type Notifier interface {
	PropertyChanged(result models.ActionResult)
}

type NotifierFunc func(result models.ActionResult)

func (f NotifierFunc) PropertyChanged(result models.ActionResult) { f(result) }

func notify(n Notifier, result models.ActionResult) {
	if n != nil {
		n.PropertyChanged(result)
	}
}

func newResult(property *models.Property, ok bool, message string) models.ActionResult {
	return models.ActionResult{
		Property: property.Name(),
		Success:  ok,
		Message:  message,
		Status:   property.Status(),
	}
}

func logResult(action string, player string, result models.ActionResult) {
	entry := logrus.WithFields(logrus.Fields{
		"action":   action,
		"player":   player,
		"property": result.Property,
		"success":  result.Success,
	})
	if result.Success {
		entry.Info(result.Message)
	} else {
		entry.Debug(result.Message)
	}
}

// CheckWhoOwns returns the owner of the named property, or "" when unowned.
func CheckWhoOwns(b *board.Board, name string) (string, error) {
	var owner string
	err := b.With(name, func(p *models.Property) {
		owner = p.Owner()
	})
	return owner, err
}

func GetStatus(b *board.Board, name string) (models.PropertyStatus, error) {
	var status models.PropertyStatus
	err := b.With(name, func(p *models.Property) {
		status = p.Status()
	})
	return status, err
}

// GetPortfolio reports what player owns right now. Entries are re-checked
// against each property's owner under its lock, so a transfer that lands after
// the names are read does not show up in the old owner's totals.
func GetPortfolio(b *board.Board, player string) models.PortfolioDto {
	var names []string
	b.WithPortfolios(func(ps models.Portfolios) {
		if pf, ok := ps[player]; ok {
			for _, p := range pf.Properties() {
				names = append(names, p.Name())
			}
		}
	})

	var dto models.PortfolioDto
	b.WithMany(names, func(held []*models.Property) {
		view := &models.Portfolio{}
		for _, p := range held {
			if p.Owner() == player {
				view.Add(p)
			}
		}
		dto = view.Dto(player)
	})
	return dto
}
