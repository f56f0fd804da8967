package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandlab-api/internal/service"
)

type LookupHandler struct {
	s service.LookupService
}

func NewLookupHandler(service service.LookupService) *LookupHandler {
	return &LookupHandler{s: service}
}

func (h *LookupHandler) Countries(c *fiber.Ctx) error {
	countries, err := h.s.Countries(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(countries)
}

func (h *LookupHandler) Channels(c *fiber.Ctx) error {
	channels, err := h.s.Channels(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(channels)
}

func (h *LookupHandler) Objectives(c *fiber.Ctx) error {
	objectives, err := h.s.Objectives(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(objectives)
}
