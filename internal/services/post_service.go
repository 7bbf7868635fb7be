package services

import (
	"context"
	"regexp"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/entities"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/errors"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/ports"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/repositories"
)

// PostService contém a lógica de negócio para posts (aulas)
type PostService struct {
	postRepo repositories.PostRepository
	logger   ports.Logger
}

// NewPostService cria um novo PostService
func NewPostService(postRepo repositories.PostRepository, logger ports.Logger) *PostService {
	return &PostService{
		postRepo: postRepo,
		logger:   logger,
	}
}

// ListPosts lista posts com o filtro de visibilidade do papel informado.
// O papel vem da query string e não é identidade autenticada:
//   - aluno: somente posts publicados e não excluídos
//   - professor: posts não excluídos (inclui não publicados)
//   - qualquer outro valor (ou ausente): visão administrativa, via ListAllPosts
func (s *PostService) ListPosts(ctx context.Context, role entities.Role) ([]*entities.Post, error) {
	var filters repositories.PostFilters

	f := false
	t := true

	switch role {
	case entities.RoleAluno:
		filters.Posted = &t
		filters.Excluded = &f
	case entities.RoleProfessor:
		filters.Excluded = &f
	default:
		return s.ListAllPosts(ctx)
	}

	posts, err := s.postRepo.List(ctx, filters)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.posts.fetch", Err: err}
	}
	return posts, nil
}

// ListAllPosts é a visão administrativa: retorna todos os posts, inclusive os
// excluídos e os não publicados
func (s *PostService) ListAllPosts(ctx context.Context) ([]*entities.Post, error) {
	posts, err := s.postRepo.List(ctx, repositories.PostFilters{})
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.posts.fetch", Err: err}
	}
	return posts, nil
}

// GetPost busca um post por ID. O acesso direto por id ignora os flags
// posted/excluded: editores precisam abrir aulas não publicadas ou excluídas
// por link direto.
func (s *PostService) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.posts.fetch_one", Err: err}
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}
	return post, nil
}

// CreatePostInput representa os dados para criar um post.
// Posted e Excluded são ponteiros: false é valor legal e não pode ser
// confundido com campo ausente.
type CreatePostInput struct {
	Title       string
	Matter      string
	ClassNumber string
	Teacher     string
	Image       string
	Content     []entities.ContentBlock
	UserID      string
	Posted      *bool
	Excluded    *bool
}

// CreatePost valida os dados e cria um novo post
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*entities.Post, error) {
	if missing := s.missingFields(input); len(missing) > 0 {
		return nil, &errors.RequiredFieldsError{Fields: missing}
	}

	post := &entities.Post{
		Title:       input.Title,
		Matter:      input.Matter,
		ClassNumber: input.ClassNumber,
		Teacher:     input.Teacher,
		Image:       input.Image,
		Content:     input.Content,
		UserID:      input.UserID,
		Posted:      *input.Posted,
		Excluded:    *input.Excluded,
	}

	s.logger.Info("creating post", "title", input.Title, "matter", input.Matter)

	if err := s.postRepo.Create(ctx, post); err != nil {
		// Blocos com tipo fora do enum são rejeitados pelo validador de schema do banco
		return nil, &errors.StoreError{MessageID: "error.posts.create", Err: err}
	}

	return post, nil
}

func (s *PostService) missingFields(input CreatePostInput) []string {
	var missing []string
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.Matter == "" {
		missing = append(missing, "matter")
	}
	if input.ClassNumber == "" {
		missing = append(missing, "classNumber")
	}
	if len(input.Content) == 0 {
		missing = append(missing, "content")
	}
	if input.Teacher == "" {
		missing = append(missing, "teacher")
	}
	if input.UserID == "" {
		missing = append(missing, "userId")
	}
	if input.Image == "" {
		missing = append(missing, "image")
	}
	if input.Posted == nil {
		missing = append(missing, "posted")
	}
	if input.Excluded == nil {
		missing = append(missing, "excluded")
	}
	return missing
}

// UpdatePostInput representa os campos atualizáveis de um post.
// Author é aceito no corpo por compatibilidade, mas descartado: o documento
// de post não tem esse campo.
type UpdatePostInput struct {
	Title   *string
	Content *[]entities.ContentBlock
	Author  *string
}

// UpdatePost aplica uma atualização parcial de title/content
func (s *PostService) UpdatePost(ctx context.Context, id string, input UpdatePostInput) (*entities.Post, error) {
	patch := repositories.PostPatch{
		Title:   input.Title,
		Content: input.Content,
	}

	post, err := s.postRepo.UpdateFields(ctx, id, patch)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.posts.update", Err: err}
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}
	return post, nil
}

// SoftDeletePost marca um post como excluído (soft delete, o documento nunca
// é removido). Não existe operação que reverta a exclusão.
func (s *PostService) SoftDeletePost(ctx context.Context, id string) (*entities.Post, error) {
	post, err := s.postRepo.SoftDelete(ctx, id)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.posts.delete", Err: err}
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	s.logger.Info("post soft deleted", "id", id)
	return post, nil
}

// SearchPosts busca posts publicados e não excluídos por substring
// case-insensitive em title, matter, teacher e nos valores dos blocos de conteúdo
func (s *PostService) SearchPosts(ctx context.Context, q string) ([]*entities.Post, error) {
	if q == "" {
		return nil, errors.ErrSearchQueryRequired
	}

	if err := validateSearchPattern(q); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.Search(ctx, q)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.posts.fetch", Err: err}
	}
	return posts, nil
}

// validateSearchPattern garante que o termo de busca compila como expressão
// case-insensitive antes de chegar ao banco
func validateSearchPattern(pattern string) error {
	if _, err := regexp.Compile("(?i)" + pattern); err != nil {
		return errors.ErrInvalidSearchPattern
	}
	return nil
}
