package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/hafasboard/pkg/ctdf"
	"github.com/travigo/hafasboard/pkg/hafas"
)

func DeparturesRouter(router fiber.Router, normalizer *hafas.Normalizer) {
	router.Post("/normalize", func(c *fiber.Ctx) error {
		return normalizeDeparture(c, normalizer)
	})
}

func normalizeDeparture(c *fiber.Ctx, normalizer *hafas.Normalizer) error {
	event, err := normalizer.ParseEvent(c.Body())
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, hafas.InvalidRecordError) || errors.Is(err, hafas.InvalidTimestampError) {
			status = fiber.StatusBadRequest
		}

		c.Status(status)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	departure, err := ctdf.NewDepartureBoard(event)
	if err != nil {
		log.Error().Err(err).Str("id", event.ID).Msg("Failed to build departure board record")

		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not build departure board record",
		})
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed") {
		groups = append(groups, "detailed")
	}

	reducedDeparture, err := ctdf.ReduceDeparture(departure, groups...)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce departure",
		})
	}

	return c.JSON(reducedDeparture)
}
