package routes

import (
	"github.com/DedS3t/monopoly-properties/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func PublicPropertyRoutes(a *fiber.App, ctrl *controllers.Controller) {
	route := a.Group("/property")
	route.Get("/all", ctrl.GetAllProperties)
	route.Get("/:name", ctrl.GetPropertyStatus)
}

// PropertyRoutes must be registered behind the jwt middleware.
func PropertyRoutes(a *fiber.App, ctrl *controllers.Controller) {
	route := a.Group("/property")
	route.Post("/:name/buy", ctrl.BuyProperty)
	route.Post("/:name/house", ctrl.BuildHouse)
	route.Delete("/:name/house", ctrl.SellHouse)
	route.Post("/:name/hotel", ctrl.BuildHotel)
	route.Delete("/:name/hotel", ctrl.SellHotel)
	route.Post("/:name/transfer", ctrl.TransferProperty)

	a.Get("/portfolio/:player", ctrl.GetPortfolio)
	a.Get("/user/cur", ctrl.Cur)
}
