package routes

import (
	"github.com/DedS3t/monopoly-properties/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(a *fiber.App, ctrl *controllers.Controller) {
	route := a.Group("/user")

	route.Post("login", ctrl.Login)
}
