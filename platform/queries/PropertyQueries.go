package queries

import (
	"github.com/DedS3t/monopoly-properties/app/models"
	"github.com/DedS3t/monopoly-properties/platform/board"
)

const notOwnerMessage = "Only the owner can improve this property"

func BuyProperty(b *board.Board, name string, player string, n Notifier) (models.ActionResult, error) {
	var result models.ActionResult
	err := b.With(name, func(p *models.Property) {
		ok, msg := p.Purchase(player)
		if ok {
			b.WithPortfolios(func(ps models.Portfolios) {
				ps.For(player).Add(p)
			})
		}
		result = newResult(p, ok, msg)
	})
	if err != nil {
		return result, err
	}
	logResult("buy", player, result)
	notify(n, result)
	return result, nil
}

// TransferProperty moves the property, and its portfolio entry, from one
// player to another.
func TransferProperty(b *board.Board, name string, from string, to string, n Notifier) (models.ActionResult, error) {
	var result models.ActionResult
	err := b.With(name, func(p *models.Property) {
		ok, msg := p.TransferOwnership(from, to)
		if ok {
			b.WithPortfolios(func(ps models.Portfolios) {
				if pf, held := ps[from]; held {
					pf.Remove(p)
				}
				ps.For(to).Add(p)
			})
		}
		result = newResult(p, ok, msg)
	})
	if err != nil {
		return result, err
	}
	logResult("transfer", from, result)
	notify(n, result)
	return result, nil
}

func BuildHouse(b *board.Board, name string, player string, n Notifier) (models.ActionResult, error) {
	return improve(b, name, player, "build-house", (*models.Property).AddHouse, n)
}

func SellHouse(b *board.Board, name string, player string, n Notifier) (models.ActionResult, error) {
	return improve(b, name, player, "sell-house", (*models.Property).RemoveHouse, n)
}

func BuildHotel(b *board.Board, name string, player string, n Notifier) (models.ActionResult, error) {
	return improve(b, name, player, "build-hotel", (*models.Property).AddHotel, n)
}

func SellHotel(b *board.Board, name string, player string, n Notifier) (models.ActionResult, error) {
	return improve(b, name, player, "sell-hotel", (*models.Property).RemoveHotel, n)
}

func improve(b *board.Board, name string, player string, action string, op func(*models.Property) (bool, string), n Notifier) (models.ActionResult, error) {
	var result models.ActionResult
	err := b.With(name, func(p *models.Property) {
		if !p.IsOwned() || p.Owner() != player {
			result = newResult(p, false, notOwnerMessage)
			return
		}
		ok, msg := op(p)
		result = newResult(p, ok, msg)
	})
	if err != nil {
		return result, err
	}
	logResult(action, player, result)
	notify(n, result)
	return result, nil
}
