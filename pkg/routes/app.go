package routes

import (
	"github.com/DedS3t/monopoly-properties/app/controllers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
)

func NewApp(ctrl *controllers.Controller) *fiber.App {
	app := fiber.New()

	app.Use(cors.New())
	AuthRoutes(app, ctrl)
	PublicPropertyRoutes(app, ctrl)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: ctrl.JWTSecret,
	}))

	PropertyRoutes(app, ctrl)
	return app
}
