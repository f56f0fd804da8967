package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandlab-api/internal/service"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
)

type ClientHandler struct {
	s              service.ClientService
	uploadMaxBytes int
}

func NewClientHandler(service service.ClientService, uploadMaxBytes int) *ClientHandler {
	return &ClientHandler{s: service, uploadMaxBytes: uploadMaxBytes}
}

func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.s.List(c.Context(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(clients)
}

func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	id, err := idParam(c, "client")
	if err != nil {
		return err
	}

	detail, err := h.s.Detail(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var in transfer.ClientInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	client, err := h.s.Create(c.Context(), &in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id, err := idParam(c, "client")
	if err != nil {
		return err
	}

	var in transfer.ClientInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	client, err := h.s.Update(c.Context(), id, &in)
	if err != nil {
		return err
	}
	return c.JSON(client)
}

func (h *ClientHandler) RemoveClient(c *fiber.Ctx) error {
	id, err := idParam(c, "client")
	if err != nil {
		return err
	}

	if err := h.s.Remove(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Client deleted"})
}

func (h *ClientHandler) UploadLogo(c *fiber.Ctx) error {
	id, err := idParam(c, "client")
	if err != nil {
		return err
	}

	upload, err := readUpload(c, "file", h.uploadMaxBytes)
	if err != nil {
		return err
	}

	client, err := h.s.UploadLogo(c.Context(), id, upload)
	if err != nil {
		return err
	}
	return c.JSON(client)
}

func (h *ClientHandler) RequestAnalysis(c *fiber.Ctx) error {
	id, err := idParam(c, "client")
	if err != nil {
		return err
	}

	if err := h.s.RequestAnalysis(c.Context(), id, GetUserID(c)); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Analysis requested"})
}
