package controllers

import (
	"errors"
	"net/url"

	"github.com/DedS3t/monopoly-properties/app/models"
	"github.com/DedS3t/monopoly-properties/platform/board"
	"github.com/DedS3t/monopoly-properties/platform/queries"
	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	Board     *board.Board
	Notifier  queries.Notifier
	JWTSecret []byte
}

func New(b *board.Board, n queries.Notifier, secret string) *Controller {
	return &Controller{Board: b, Notifier: n, JWTSecret: []byte(secret)}
}

func propertyName(c *fiber.Ctx) string {
	name := c.Params("name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

// playerName reads the authenticated player from the token set by the jwt
// middleware.
func playerName(c *fiber.Ctx) (string, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	name, ok := claims["name"].(string)
	return name, ok && name != ""
}

func sendError(c *fiber.Ctx, err error) error {
	if errors.Is(err, board.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	logrus.WithError(err).Error("request failed")
	return c.SendStatus(fiber.StatusInternalServerError)
}

func sendResult(c *fiber.Ctx, result models.ActionResult) error {
	if !result.Success {
		return c.Status(fiber.StatusConflict).JSON(result)
	}
	return c.JSON(result)
}
