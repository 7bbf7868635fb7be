package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/entities"
	"github.com/smartclassfiap/smartclass-backend/internal/handlers/dto"
	"github.com/smartclassfiap/smartclass-backend/internal/services"
)

// PostHandler lida com requisições HTTP relacionadas a posts (aulas)
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler cria um novo PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts lista posts com filtro de visibilidade por papel
//
//	@Summary	Lista posts conforme o papel informado
//	@Tags		Posts
//	@Produce	json
//	@Param		role	query		string	false	"Papel do chamador (aluno, professor)"
//	@Success	200		{array}		dto.PostResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	role := entities.Role(c.Query("role"))

	posts, err := h.postService.ListPosts(c.Request.Context(), role)
	if err != nil {
		respondServiceError(c, err, "error.posts.required_fields")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}

// GetPost busca um post por ID (sem filtro de visibilidade)
//
//	@Summary	Retorna um post por ID
//	@Tags		Posts
//	@Produce	json
//	@Param		id	path		string	true	"ID do post"
//	@Success	200	{object}	dto.PostResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id := c.Param("id")

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "error.posts.required_fields")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// CreatePost cria um novo post
//
//	@Summary	Cria uma nova postagem
//	@Tags		Posts
//	@Accept		json
//	@Produce	json
//	@Param		post	body		dto.CreatePostRequest	true	"Dados do post"
//	@Success	201		{object}	dto.PostResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), req.ToInput())
	if err != nil {
		respondServiceError(c, err, "error.posts.required_fields")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostResponse(post))
}

// UpdatePost atualiza parcialmente um post
//
//	@Summary	Atualiza uma postagem existente
//	@Tags		Posts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"ID do post"
//	@Param		post	body		dto.UpdatePostRequest	true	"Campos a atualizar"
//	@Success	200		{object}	dto.PostResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondServiceError(c, err, "error.posts.required_fields")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// SoftDeletePost marca um post como excluído
//
//	@Summary	Remove uma postagem (soft delete)
//	@Tags		Posts
//	@Produce	json
//	@Param		id	path		string	true	"ID do post"
//	@Success	200	{object}	dto.MessagePostResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/posts/{id} [delete]
func (h *PostHandler) SoftDeletePost(c *gin.Context) {
	id := c.Param("id")

	post, err := h.postService.SoftDeletePost(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "error.posts.required_fields")
		return
	}

	c.JSON(http.StatusOK, dto.MessagePostResponse{
		Message: dto.T(c, "message.posts.deleted"),
		Post:    dto.ToPostResponse(post),
	})
}

// SearchPosts busca posts publicados por palavra-chave
//
//	@Summary	Busca posts por palavra-chave
//	@Tags		Posts
//	@Produce	json
//	@Param		q	query		string	true	"Termo de busca"
//	@Success	200	{array}		dto.PostResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/posts/search [get]
func (h *PostHandler) SearchPosts(c *gin.Context) {
	q := c.Query("q")

	posts, err := h.postService.SearchPosts(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err, "error.posts.required_fields")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}
