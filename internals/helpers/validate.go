package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"finakihub_backend/internals/helpers/apperr"
)

// Validate is shared by every request DTO.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names (user_id) instead of Go names (UserID)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Bind parses the JSON body into dst and runs struct validation.
func Bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperr.Wrap(apperr.InvalidArgument, "JSON inválido", err)
	}
	return Validate.Struct(dst)
}
