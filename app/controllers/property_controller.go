package controllers

import (
	"github.com/DedS3t/monopoly-properties/app/models"
	"github.com/DedS3t/monopoly-properties/platform/board"
	"github.com/DedS3t/monopoly-properties/platform/queries"
	"github.com/gofiber/fiber/v2"
)

type action func(b *board.Board, name string, player string, n queries.Notifier) (models.ActionResult, error)

func (ctrl *Controller) GetAllProperties(c *fiber.Ctx) error {
	return c.JSON(ctrl.Board.Statuses())
}

func (ctrl *Controller) GetPropertyStatus(c *fiber.Ctx) error {
	status, err := queries.GetStatus(ctrl.Board, propertyName(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"status": status, "entries": status.Entries()})
}

func (ctrl *Controller) BuyProperty(c *fiber.Ctx) error {
	return ctrl.run(c, queries.BuyProperty)
}

func (ctrl *Controller) BuildHouse(c *fiber.Ctx) error {
	return ctrl.run(c, queries.BuildHouse)
}

func (ctrl *Controller) SellHouse(c *fiber.Ctx) error {
	return ctrl.run(c, queries.SellHouse)
}

func (ctrl *Controller) BuildHotel(c *fiber.Ctx) error {
	return ctrl.run(c, queries.BuildHotel)
}

func (ctrl *Controller) SellHotel(c *fiber.Ctx) error {
	return ctrl.run(c, queries.SellHotel)
}

func (ctrl *Controller) TransferProperty(c *fiber.Ctx) error {
	player, ok := playerName(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	transferDto := new(models.TransferDto)
	if err := c.BodyParser(transferDto); err != nil || transferDto.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "transfer target required"})
	}

	result, err := queries.TransferProperty(ctrl.Board, propertyName(c), player, transferDto.To, ctrl.Notifier)
	if err != nil {
		return sendError(c, err)
	}
	return sendResult(c, result)
}

func (ctrl *Controller) run(c *fiber.Ctx, act action) error {
	player, ok := playerName(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	result, err := act(ctrl.Board, propertyName(c), player, ctrl.Notifier)
	if err != nil {
		return sendError(c, err)
	}
	return sendResult(c, result)
}
