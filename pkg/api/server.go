package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/hafasboard/pkg/api/routes"
	"github.com/travigo/hafasboard/pkg/hafas"
)

func NewApp(normalizer *hafas.Normalizer) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.DeparturesRouter(group.Group("/departures"), normalizer)

	return webApp
}

func SetupServer(listen string, normalizer *hafas.Normalizer) error {
	return NewApp(normalizer).Listen(listen)
}
