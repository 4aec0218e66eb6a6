package controllers

import (
	"strings"

	"github.com/DedS3t/monopoly-properties/app/models"
	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// Login issues a token for a player name. There are no accounts; the name is
// the identity the property rules compare against.
func (ctrl *Controller) Login(c *fiber.Ctx) error {
	loginDto := new(models.LoginDto)
	if err := c.BodyParser(loginDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	name := strings.TrimSpace(loginDto.Name)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name required"})
	}

	player := models.Player{Id: uuid.NewV4().String(), Name: name}
	t, err := ctrl.SignToken(player)
	if err != nil {
		logrus.WithError(err).Error("sign token")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"access_token": t, "player": player})
}

func (ctrl *Controller) SignToken(player models.Player) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = player.Id
	claims["name"] = player.Name
	return token.SignedString(ctrl.JWTSecret)
}

func (ctrl *Controller) Cur(c *fiber.Ctx) error {
	name, ok := playerName(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	claims := c.Locals("user").(*jwt.Token).Claims.(jwt.MapClaims)
	id, _ := claims["user_id"].(string)
	return c.JSON(models.Player{Id: id, Name: name})
}
