package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandlab-api/internal/service"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
)

type RelevanceHandler struct {
	s service.RelevanceService
}

func NewRelevanceHandler(service service.RelevanceService) *RelevanceHandler {
	return &RelevanceHandler{s: service}
}

func (h *RelevanceHandler) ListForClient(c *fiber.Ctx) error {
	id, err := idParam(c, "client")
	if err != nil {
		return err
	}

	scores, err := h.s.ListByClient(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(scores)
}

func (h *RelevanceHandler) UpdateScore(c *fiber.Ctx) error {
	id, err := idParam(c, "relevance score")
	if err != nil {
		return err
	}

	var in transfer.RelevanceScoreUpdate
	if err := parseBody(c, &in); err != nil {
		return err
	}

	score, err := h.s.Update(c.Context(), id, &in)
	if err != nil {
		return err
	}
	return c.JSON(score)
}
