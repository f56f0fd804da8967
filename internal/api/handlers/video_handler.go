package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandlab-api/internal/service"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
)

type VideoHandler struct {
	s              service.VideoService
	uploadMaxBytes int
}

func NewVideoHandler(service service.VideoService, uploadMaxBytes int) *VideoHandler {
	return &VideoHandler{s: service, uploadMaxBytes: uploadMaxBytes}
}

func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	campaignID, err := uuidQuery(c, "campaign_id")
	if err != nil {
		return err
	}

	videos, err := h.s.List(c.Context(), transfer.VideoFilter{
		CampaignID: campaignID,
		Craft:      c.Query("craft"),
		Search:     c.Query("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(videos)
}

func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	id, err := idParam(c, "video")
	if err != nil {
		return err
	}

	detail, err := h.s.Detail(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// UploadVideo takes a multipart form with the file and its metadata.
func (h *VideoHandler) UploadVideo(c *fiber.Ctx) error {
	upload, err := readUpload(c, "file", h.uploadMaxBytes)
	if err != nil {
		return err
	}

	in := transfer.VideoInput{
		Title:       c.FormValue("title"),
		Format:      c.FormValue("format"),
		Craft:       c.FormValue("craft"),
		CreatorName: c.FormValue("creator_name"),
	}
	if campaignID := c.FormValue("campaign_id"); campaignID != "" {
		in.CampaignID = &campaignID
	}

	video, err := h.s.Upload(c.Context(), &in, upload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

func (h *VideoHandler) UpdateVideo(c *fiber.Ctx) error {
	id, err := idParam(c, "video")
	if err != nil {
		return err
	}

	var in transfer.VideoInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	video, err := h.s.Update(c.Context(), id, &in)
	if err != nil {
		return err
	}
	return c.JSON(video)
}

func (h *VideoHandler) RemoveVideo(c *fiber.Ctx) error {
	id, err := idParam(c, "video")
	if err != nil {
		return err
	}

	if err := h.s.Remove(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Video deleted"})
}
