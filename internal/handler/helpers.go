package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/oliveirafjdo-web/MetriFy/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, max=100 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidationFields(fields))
		return false
	}
	return true
}

// respondError maps the domain error taxonomy onto HTTP statuses. Storage
// failures and unknown errors are logged and surfaced as a generic 500.
func respondError(c *gin.Context, err error) {
	var de *apierror.DomainError
	if errors.As(err, &de) {
		switch de.Kind {
		case apierror.KindValidation:
			c.JSON(http.StatusUnprocessableEntity, apierror.New(de.Msg))
			return
		case apierror.KindNotFound:
			c.JSON(http.StatusNotFound, apierror.New(de.Msg))
			return
		case apierror.KindConflict:
			c.JSON(http.StatusConflict, apierror.New(de.Msg))
			return
		}
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("operation failed")
	c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
}
