package dto

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorResponse é o corpo padrão de falha da API: uma mensagem curta legível
// em `error` e a mensagem da causa subjacente em `details`
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// LoginErrorResponse é o corpo de falha do login
type LoginErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewErrorResponse cria uma resposta de erro traduzindo a chave da mensagem
func NewErrorResponse(c *gin.Context, key string, params ...map[string]interface{}) ErrorResponse {
	return ErrorResponse{Error: T(c, key, params...)}
}

// NewErrorResponseWithDetails cria uma resposta de erro com a causa subjacente
func NewErrorResponseWithDetails(c *gin.Context, key string, details string) ErrorResponse {
	return ErrorResponse{
		Error:   T(c, key),
		Details: details,
	}
}

// NewRequiredFieldsResponse monta a mensagem combinada de campos obrigatórios
// ausentes (um único erro listando todos os campos)
func NewRequiredFieldsResponse(c *gin.Context, key string, fields []string) ErrorResponse {
	return ErrorResponse{
		Error: T(c, key, map[string]interface{}{"Fields": strings.Join(fields, ", ")}),
	}
}

// NewLoginErrorResponse cria uma resposta de falha de login
func NewLoginErrorResponse(c *gin.Context, key string) LoginErrorResponse {
	return LoginErrorResponse{
		Message: T(c, "error.login.failed"),
		Error:   T(c, key),
	}
}
