package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/errors"
	"github.com/smartclassfiap/smartclass-backend/internal/handlers/dto"
	"github.com/smartclassfiap/smartclass-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers lista todos os usuários
//
//	@Summary	Lista todos os usuários
//	@Tags		Usuários
//	@Produce	json
//	@Success	200	{array}		dto.UserResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "error.users.required_fields")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// GetUser busca um usuário por ID
//
//	@Summary	Retorna um usuário por ID
//	@Tags		Usuários
//	@Produce	json
//	@Param		id	path		string	true	"ID do usuário"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "error.users.required_fields")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// CreateUser cria um novo usuário
//
//	@Summary	Cria um novo usuário
//	@Tags		Usuários
//	@Accept		json
//	@Produce	json
//	@Param		user	body		dto.CreateUserRequest	true	"Dados do usuário"
//	@Success	201		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.ToInput())
	if err != nil {
		respondServiceError(c, err, "error.users.required_fields")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// UpdateUser atualiza parcialmente um usuário
//
//	@Summary	Atualiza um usuário existente
//	@Tags		Usuários
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"ID do usuário"
//	@Param		user	body		dto.UpdateUserRequest	true	"Campos a atualizar"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondServiceError(c, err, "error.users.required_fields")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeactivateUser inativa um usuário (soft delete)
//
//	@Summary	Inativa um usuário
//	@Tags		Usuários
//	@Produce	json
//	@Param		id	path		string	true	"ID do usuário"
//	@Success	200	{object}	dto.MessageUserResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/users/{id} [delete]
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.userService.DeactivateUser(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "error.users.required_fields")
		return
	}

	c.JSON(http.StatusOK, dto.MessageUserResponse{
		Message: dto.T(c, "message.users.deactivated"),
		User:    dto.ToUserResponse(user),
	})
}

// Login verifica as credenciais do usuário.
// É uma checagem one-shot: nenhum token ou sessão é emitido; o corpo de
// sucesso traz o perfil sem o hash de senha.
//
//	@Summary	Efetua login com email e senha
//	@Tags		Usuários
//	@Produce	json
//	@Param		email		query		string	true	"Email"
//	@Param		password	query		string	true	"Senha"
//	@Success	200			{object}	dto.LoginResponse
//	@Failure	400			{object}	dto.LoginErrorResponse
//	@Failure	401			{object}	dto.LoginErrorResponse
//	@Failure	403			{object}	dto.LoginErrorResponse
//	@Failure	500			{object}	dto.LoginErrorResponse
//	@Router		/users/login [get]
func (h *UserHandler) Login(c *gin.Context) {
	email := c.Query("email")
	password := c.Query("password")

	user, err := h.userService.Login(c.Request.Context(), email, password)
	if err != nil {
		var storeErr *errors.StoreError

		switch {
		case errs.Is(err, errors.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, dto.NewLoginErrorResponse(c, err.Error()))
		case errs.Is(err, errors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.NewLoginErrorResponse(c, err.Error()))
		case errs.Is(err, errors.ErrUserInactive):
			c.JSON(http.StatusForbidden, dto.NewLoginErrorResponse(c, err.Error()))
		case errs.As(err, &storeErr):
			c.JSON(http.StatusInternalServerError, dto.NewLoginErrorResponse(c, storeErr.MessageID))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewLoginErrorResponse(c, "error.internal"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: dto.T(c, "message.login.success"),
		User:    dto.ToUserResponse(user),
	})
}

// SearchUsers busca usuários por palavra-chave no nome
//
//	@Summary	Busca usuários por palavra-chave
//	@Tags		Usuários
//	@Produce	json
//	@Param		name	query		string	true	"Nome do usuário para busca"
//	@Success	200		{array}		dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	name := c.Query("name")

	users, err := h.userService.SearchUsersByName(c.Request.Context(), name)
	if err != nil {
		respondServiceError(c, err, "error.users.required_fields")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}
