package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDContextKey é a chave usada para armazenar o request id no contexto
	RequestIDContextKey = "request_id"
	// RequestIDHeader é o header de resposta com o request id
	RequestIDHeader = "X-Request-Id"
)

// RequestID atribui um identificador único a cada requisição.
// Um id vindo do cliente no header é reaproveitado; caso contrário um uuid v4
// é gerado. O id é ecoado na resposta e fica disponível para os logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
