package dto

import (
	"time"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/entities"
	"github.com/smartclassfiap/smartclass-backend/internal/services"
)

// ContentBlockRequest é um bloco de conteúdo no corpo da requisição.
// O enum de type é verificado no binding; blocos malformados nem chegam ao serviço.
type ContentBlockRequest struct {
	Type  string `json:"type" binding:"required,oneof=subtitle contentSubtitle initialConcepts link"`
	Value string `json:"value" binding:"required"`
}

// CreatePostRequest representa a requisição para criar um post.
// Posted e Excluded são ponteiros: false explícito é valor legal e não pode
// ser tratado como campo ausente.
type CreatePostRequest struct {
	Title       string                `json:"title"`
	Matter      string                `json:"matter"`
	ClassNumber string                `json:"classNumber"`
	Teacher     string                `json:"teacher"`
	Image       string                `json:"image"`
	Content     []ContentBlockRequest `json:"content" binding:"omitempty,dive"`
	UserID      string                `json:"userId"`
	Posted      *bool                 `json:"posted"`
	Excluded    *bool                 `json:"excluded"`
}

// ToInput converte a requisição para o input do serviço
func (r CreatePostRequest) ToInput() services.CreatePostInput {
	return services.CreatePostInput{
		Title:       r.Title,
		Matter:      r.Matter,
		ClassNumber: r.ClassNumber,
		Teacher:     r.Teacher,
		Image:       r.Image,
		Content:     ToContentBlocks(r.Content),
		UserID:      r.UserID,
		Posted:      r.Posted,
		Excluded:    r.Excluded,
	}
}

// UpdatePostRequest representa a requisição para atualizar um post.
// Author é aceito por compatibilidade com clientes antigos e descartado.
type UpdatePostRequest struct {
	Title   *string                `json:"title"`
	Content *[]ContentBlockRequest `json:"content" binding:"omitempty,dive"`
	Author  *string                `json:"author"`
}

// ToInput converte a requisição para o input do serviço
func (r UpdatePostRequest) ToInput() services.UpdatePostInput {
	input := services.UpdatePostInput{
		Title:  r.Title,
		Author: r.Author,
	}
	if r.Content != nil {
		blocks := ToContentBlocks(*r.Content)
		input.Content = &blocks
	}
	return input
}

// ContentBlockResponse é um bloco de conteúdo na resposta
type ContentBlockResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// PostResponse representa a resposta de um post
type PostResponse struct {
	ID          string                 `json:"_id"`
	Title       string                 `json:"title"`
	Matter      string                 `json:"matter"`
	ClassNumber string                 `json:"classNumber"`
	Teacher     string                 `json:"teacher"`
	Image       string                 `json:"image"`
	Content     []ContentBlockResponse `json:"content"`
	UserID      string                 `json:"userId,omitempty"`
	Posted      bool                   `json:"posted"`
	Excluded    bool                   `json:"excluded"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// MessagePostResponse é o corpo de sucesso da remoção (soft delete)
type MessagePostResponse struct {
	Message string       `json:"message"`
	Post    PostResponse `json:"post"`
}

// ToContentBlocks converte blocos da requisição para o domínio, preservando a ordem
func ToContentBlocks(blocks []ContentBlockRequest) []entities.ContentBlock {
	result := make([]entities.ContentBlock, len(blocks))
	for i, block := range blocks {
		result[i] = entities.ContentBlock{
			Type:  entities.ContentType(block.Type),
			Value: block.Value,
		}
	}
	return result
}

// ToPostResponse converte uma entidade Post para PostResponse
func ToPostResponse(post *entities.Post) PostResponse {
	content := make([]ContentBlockResponse, len(post.Content))
	for i, block := range post.Content {
		content[i] = ContentBlockResponse{
			Type:  string(block.Type),
			Value: block.Value,
		}
	}

	return PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Matter:      post.Matter,
		ClassNumber: post.ClassNumber,
		Teacher:     post.Teacher,
		Image:       post.Image,
		Content:     content,
		UserID:      post.UserID,
		Posted:      post.Posted,
		Excluded:    post.Excluded,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

// ToPostResponses converte uma lista de entidades Post para PostResponse
func ToPostResponses(posts []*entities.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ToPostResponse(post)
	}
	return responses
}
