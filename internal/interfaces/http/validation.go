package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

var validate = newValidator()

// newValidator usa el nombre JSON del campo en los mensajes de error.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			tag = strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		}
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// parseBody decodifica el JSON y valida las etiquetas `validate`. Responde 400 si falla.
func parseBody(c *fiber.Ctx, dest any) *dto.ErrorResponse {
	if err := c.BodyParser(dest); err != nil {
		return &dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"}
	}
	return validateStruct(dest)
}

// parseQuery igual que parseBody pero sobre la query string.
func parseQuery(c *fiber.Ctx, dest any) *dto.ErrorResponse {
	if err := c.QueryParser(dest); err != nil {
		return &dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"}
	}
	return validateStruct(dest)
}

func validateStruct(dest any) *dto.ErrorResponse {
	err := validate.Struct(dest)
	if err == nil {
		return nil
	}
	resp := &dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
	if errs, ok := err.(validator.ValidationErrors); ok {
		resp.Details = make(map[string]string, len(errs))
		for _, fe := range errs {
			resp.Details[fe.Field()] = validationMessage(fe)
		}
	}
	return resp
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "min":
		return fmt.Sprintf("debe ser al menos %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe ser como máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	}
	return "es inválido"
}
