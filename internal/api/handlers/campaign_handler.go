package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandlab-api/internal/service"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
)

type CampaignHandler struct {
	s service.CampaignService
}

func NewCampaignHandler(service service.CampaignService) *CampaignHandler {
	return &CampaignHandler{s: service}
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	clientID, err := uuidQuery(c, "client_id")
	if err != nil {
		return err
	}

	campaigns, err := h.s.List(c.Context(), transfer.CampaignFilter{
		ClientID: clientID,
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(campaigns)
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := idParam(c, "campaign")
	if err != nil {
		return err
	}

	detail, err := h.s.Detail(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var in transfer.CampaignInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	campaign, err := h.s.Create(c.Context(), &in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(campaign)
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := idParam(c, "campaign")
	if err != nil {
		return err
	}

	var in transfer.CampaignInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	campaign, err := h.s.Update(c.Context(), id, &in)
	if err != nil {
		return err
	}
	return c.JSON(campaign)
}

func (h *CampaignHandler) RemoveCampaign(c *fiber.Ctx) error {
	id, err := idParam(c, "campaign")
	if err != nil {
		return err
	}

	if err := h.s.Remove(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Campaign deleted"})
}
