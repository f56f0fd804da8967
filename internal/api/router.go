package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandlab-api/internal/api/handlers"
	"github.com/maheshrc27/brandlab-api/internal/api/middleware"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Lookup    *handlers.LookupHandler
	Client    *handlers.ClientHandler
	Relevance *handlers.RelevanceHandler
	Campaign  *handlers.CampaignHandler
	Video     *handlers.VideoHandler
	Realtime  *handlers.RealtimeHandler
}

func RegisterRoutes(app *fiber.App, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	app.Post("/auth/login", h.Auth.Login)
	app.Get("/auth/google", h.Auth.GoogleLogin)
	app.Get("/auth/google/callback", h.Auth.GoogleCallback)
	app.Post("/auth/logout", authMiddleware.AuthMiddleware(), h.Auth.Logout)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	api.Get("/session", h.Auth.Session)
	api.Get("/session/events", h.Auth.SessionEvents)
	api.Get("/user/info", h.User.GetUserInfo)

	api.Get("/countries", h.Lookup.Countries)
	api.Get("/channels", h.Lookup.Channels)
	api.Get("/objectives", h.Lookup.Objectives)

	api.Get("/clients", h.Client.ListClients)
	api.Post("/clients", h.Client.CreateClient)
	api.Get("/clients/:id", h.Client.GetClient)
	api.Put("/clients/:id", h.Client.UpdateClient)
	api.Delete("/clients/:id", h.Client.RemoveClient)
	api.Post("/clients/:id/logo", h.Client.UploadLogo)
	api.Post("/clients/:id/analysis", h.Client.RequestAnalysis)
	api.Get("/clients/:id/relevance-scores", h.Relevance.ListForClient)
	api.Put("/relevance-scores/:id", h.Relevance.UpdateScore)

	api.Get("/campaigns", h.Campaign.ListCampaigns)
	api.Post("/campaigns", h.Campaign.CreateCampaign)
	api.Get("/campaigns/:id", h.Campaign.GetCampaign)
	api.Put("/campaigns/:id", h.Campaign.UpdateCampaign)
	api.Delete("/campaigns/:id", h.Campaign.RemoveCampaign)

	api.Get("/videos", h.Video.ListVideos)
	api.Post("/videos", h.Video.UploadVideo)
	api.Get("/videos/:id", h.Video.GetVideo)
	api.Put("/videos/:id", h.Video.UpdateVideo)
	api.Delete("/videos/:id", h.Video.RemoveVideo)

	api.Get("/realtime", h.Realtime.Changes)
}
