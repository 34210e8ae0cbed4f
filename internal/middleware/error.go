package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Client-facing messages. Internal detail never leaves the server.
const (
	MessageBadRequest    = "bad request"
	MessageNotFound      = "resource not found"
	MessageUnprocessable = "unprocessable"
	MessageServerError   = "server error"
)

// ErrorHandler is a centralized error handler rendering every failure as
// {success:false, error:<status>, message:<text>}.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("request_id", RequestIDFrom(c)),
		)

		var status int

		var appErr *domain.AppError
		var fiberErr *fiber.Error
		switch {
		case !errors.As(err, &appErr) && errors.As(err, &fiberErr):
			status = mapFiberErrorToHTTPStatus(fiberErr)
			log.Warn("Fiber error occurred", zap.Int("code", fiberErr.Code), zap.String("message", fiberErr.Message))
		default:
			code := domain.CodeOf(err)
			status = mapErrorCodeToHTTPStatus(code)
			if status == http.StatusInternalServerError {
				log.Error("Request failed", zap.String("code", string(code)), zap.Error(err))
			} else {
				log.Debug("Request rejected", zap.String("code", string(code)), zap.Error(err))
			}
		}

		return c.Status(status).JSON(dto.ErrorResponse{
			Success: false,
			Error:   status,
			Message: messageFor(status),
		})
	}
}

// Foreign errors carry CodeInternal and render as 500.
func mapErrorCodeToHTTPStatus(code domain.ErrorCode) int {
	switch code {
	case domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Unmatched routes and methods surface as 404/405 fiber errors; the client
// contract only knows 400, 404, 422 and 500.
func mapFiberErrorToHTTPStatus(err *fiber.Error) int {
	switch {
	case err.Code == http.StatusNotFound:
		return http.StatusNotFound
	case err.Code == http.StatusUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case err.Code >= http.StatusInternalServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func messageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MessageBadRequest
	case http.StatusNotFound:
		return MessageNotFound
	case http.StatusUnprocessableEntity:
		return MessageUnprocessable
	default:
		return MessageServerError
	}
}
