package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/maheshrc27/brandlab-api/internal/api/middleware"
	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"go.uber.org/zap"
)

func GetUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(middleware.LocalUserID).(string)
	return userID
}

func GetSession(c *fiber.Ctx) *transfer.SessionInfo {
	session, _ := c.Locals(middleware.LocalSession).(*transfer.SessionInfo)
	return session
}

func getToken(c *fiber.Ctx) string {
	token, _ := c.Locals(middleware.LocalToken).(string)
	return token
}

// idParam reads a UUID path parameter. Malformed IDs cannot name a row, so
// they are reported as not found.
func idParam(c *fiber.Ctx, entity string) (string, error) {
	raw := c.Params("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperrors.NotFound(entity, raw)
	}
	return id.String(), nil
}

func parseBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return apperrors.Validation("body", "invalid request body")
	}
	return nil
}

// readUpload pulls the named file out of a multipart form.
func readUpload(c *fiber.Ctx, field string, maxBytes int) (*transfer.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, apperrors.Validation(field, field+" is required")
	}
	if maxBytes > 0 && fh.Size > int64(maxBytes) {
		return nil, apperrors.Validation(field, "file is too large")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &transfer.Upload{FileName: fh.Filename, Data: data}, nil
}

// ErrorHandler turns handler errors into {"error": "..."} responses.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		status := apperrors.HTTPStatus(err)
		if status >= fiber.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err),
			)
		}
		return c.Status(status).JSON(fiber.Map{"error": apperrors.PublicMessage(err)})
	}
}

// uuidQuery reads an optional UUID query parameter.
func uuidQuery(c *fiber.Ctx, name string) (string, error) {
	raw := c.Query(name)
	if raw == "" {
		return "", nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperrors.Validation(name, name+" must be a valid id")
	}
	return id.String(), nil
}
