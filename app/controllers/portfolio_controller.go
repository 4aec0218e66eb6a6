package controllers

import (
	"github.com/DedS3t/monopoly-properties/platform/queries"
	"github.com/gofiber/fiber/v2"
)

func (ctrl *Controller) GetPortfolio(c *fiber.Ctx) error {
	player := c.Params("player")
	if player == "me" {
		name, ok := playerName(c)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		player = name
	}
	return c.JSON(queries.GetPortfolio(ctrl.Board, player))
}
