package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"finakihub_backend/internals/helpers/apperr"
)

const internalMessage = "Ocurrió un error interno"

// ✅ Error Response sederhana
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"detail":  message,
	})
}

// ✅ Error Response advance, bisa kirim multiple field error
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"detail":  message,
		"errors":  errors,
	})
}

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Datos inválidos")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}
	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validación fallida", errorsMap)
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.InvalidArgument, apperr.Conflict:
		return fiber.StatusBadRequest
	case apperr.NotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// FromError writes the response for an error returned by a service.
// Internal errors are logged with their cause; clients only see the generic message.
func FromError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ValidationError(c, err)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return FromFiberError(c, fe)
	}

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.InternalErr(internalMessage, err)
	}

	status := StatusOf(ae.Kind)
	entry := log.WithFields(log.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"reqid":  c.Locals("reqid"),
		"kind":   ae.Kind.String(),
	})
	if status >= fiber.StatusInternalServerError {
		entry.WithError(ae.Err).Error(ae.Message)
	} else if ae.Err != nil {
		entry.WithError(ae.Err).Warn(ae.Message)
	}
	return Error(c, status, ae.Message)
}

// FromFiberError mengubah *fiber.Error menjadi response JSON konsisten via helper.Error.
func FromFiberError(c *fiber.Ctx, fe *fiber.Error) error {
	if fe.Code >= fiber.StatusInternalServerError {
		log.WithField("path", c.Path()).Errorf("[ERROR] %s", fe.Message)
		return Error(c, fe.Code, internalMessage)
	}
	return Error(c, fe.Code, fe.Message)
}

// ErrorHandler is installed as fiber's global error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromError(c, err)
}
