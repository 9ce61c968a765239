package http

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hotel-service/internal/observability"
	apperrors "github.com/spec-kit/hotel-service/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware converts every error into the generic error body
// {message, code, challenges}. The numeric code mirrors the HTTP status, so
// authentication failures all look identical to the client regardless of
// which internal check rejected them.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err == nil {
				return
			}

			status := fiber.StatusInternalServerError
			message := "internal server error"
			code := "INTERNAL_ERROR"
			var details map[string]any

			var fiberErr *fiber.Error
			var domainErr *apperrors.DomainError
			switch {
			case errors.As(err, &domainErr):
				status = domainErr.HTTPStatus
				message = domainErr.Message
				code = domainErr.Code
				details = domainErr.Details
			case errors.As(err, &fiberErr):
				status = fiberErr.Code
				message = fiberErr.Message
				code = "REQUEST_FAILED"
			}

			metrics.RecordError(c.Path(), c.Method(), code)
			if status >= 500 {
				logger.Error("request failed", zap.String("code", code), zap.Error(err))
			}

			response := fiber.Map{
				"message":    message,
				"code":       status,
				"challenges": []any{},
			}
			if len(details) > 0 {
				response["details"] = details
			}

			c.Status(status)
			_ = c.JSON(response)
			err = nil
		}()
		return c.Next()
	}
}
