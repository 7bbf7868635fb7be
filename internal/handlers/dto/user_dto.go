package dto

import (
	"time"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/entities"
	"github.com/smartclassfiap/smartclass-backend/internal/services"
)

// CreateUserRequest representa a requisição para criar um usuário.
// A obrigatoriedade dos campos é validada pelo serviço, que monta a mensagem
// combinada; aqui só o enum de role é verificado no binding.
type CreateUserRequest struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	IsActive    bool   `json:"isActive"`
	Role        string `json:"role" binding:"omitempty,oneof=professor aluno administrador"`
	MobilePhone string `json:"mobilePhone"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateUserRequest) ToInput() services.CreateUserInput {
	return services.CreateUserInput{
		Name:        r.Name,
		Username:    r.Username,
		Password:    r.Password,
		Email:       r.Email,
		IsActive:    r.IsActive,
		Role:        r.Role,
		MobilePhone: r.MobilePhone,
	}
}

// UpdateUserRequest representa a requisição para atualizar um usuário.
// Campos ausentes são deixados intocados no documento.
type UpdateUserRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	MobilePhone *string `json:"mobilePhone"`
	Password    *string `json:"password"`
	IsActive    *bool   `json:"isActive"`
}

// ToInput converte a requisição para o input do serviço
func (r UpdateUserRequest) ToInput() services.UpdateUserInput {
	return services.UpdateUserInput{
		Name:        r.Name,
		Email:       r.Email,
		MobilePhone: r.MobilePhone,
		Password:    r.Password,
		IsActive:    r.IsActive,
	}
}

// UserResponse representa a resposta de um usuário.
// O hash de senha nunca aparece aqui: a redação acontece nesta fronteira de
// serialização para toda operação que devolve usuário, sem exceção.
type UserResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	MobilePhone string    `json:"mobilePhone"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MessageUserResponse é o corpo de sucesso da inativação
type MessageUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse é o corpo de sucesso do login
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Username:    user.Username,
		Email:       user.Email.String(),
		Role:        string(user.Role),
		MobilePhone: user.MobilePhone,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
