package handler

import (
	"errors"
	"net/http"
	"reflect"

	"comanda/internal/api"
	"comanda/internal/apierror"
	"comanda/internal/forms"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
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
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

var preflightErrs = []error{
	service.ErrTitularRequerido,
	service.ErrSinServicios,
	service.ErrSinProductos,
	service.ErrCantidadInvalida,
	forms.ErrMaxTwoTarifas,
	forms.ErrDifferentUnidadFacturacion,
}

// respondError translates a service error into the console's own response.
// Remote rejections keep the upstream status code; local pre-network
// validation maps to 422; anything else is a gateway-level failure.
func respondError(c *gin.Context, err error) {
	var remote *api.RemoteError
	if errors.As(err, &remote) {
		c.JSON(remote.Status, apierror.New(remote.Detail))
		return
	}
	if errors.Is(err, service.ErrDetalleNoDisponible) {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	var line *forms.LineError
	if errors.As(err, &line) {
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		return
	}
	for _, known := range preflightErrs {
		if errors.Is(err, known) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
	}
	c.JSON(http.StatusBadGateway, apierror.New(api.Message(err)))
}
