package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/errors"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/valueobjects"
	"github.com/smartclassfiap/smartclass-backend/internal/handlers/dto"
)

// respondServiceError mapeia um erro do serviço para status HTTP e corpo
// {error, details}. requiredFieldsKey é a chave da mensagem combinada de
// campos obrigatórios da entidade em questão.
func respondServiceError(c *gin.Context, err error, requiredFieldsKey string) {
	var reqErr *errors.RequiredFieldsError
	var storeErr *errors.StoreError

	switch {
	case errs.As(err, &reqErr):
		c.JSON(http.StatusBadRequest, dto.NewRequiredFieldsResponse(c, requiredFieldsKey, reqErr.Fields))

	case errs.Is(err, errors.ErrUserNotFound), errs.Is(err, errors.ErrPostNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(c, err.Error()))

	case errs.Is(err, errors.ErrSearchNameRequired),
		errs.Is(err, errors.ErrSearchQueryRequired),
		errs.Is(err, errors.ErrInvalidSearchPattern):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(c, err.Error()))

	case errs.Is(err, valueobjects.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(c, "error.request.invalid_body", err.Error()))

	case errs.As(err, &storeErr):
		details := ""
		if cause := storeErr.Unwrap(); cause != nil {
			details = cause.Error()
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponseWithDetails(c, storeErr.MessageID, details))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponseWithDetails(c, "error.internal", err.Error()))
	}
}

// respondBindingError responde 400 para corpos que nem passam no binding/validator
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(c, "error.request.invalid_body", err.Error()))
}
