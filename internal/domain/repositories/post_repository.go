package repositories

import (
	"context"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/entities"
)

// PostRepository define a interface para persistência de posts (aulas)
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) error
	FindByID(ctx context.Context, id string) (*entities.Post, error)
	// List retorna os posts que casam com os filtros, em ordem de criação.
	List(ctx context.Context, filters PostFilters) ([]*entities.Post, error)
	// UpdateFields aplica um $set parcial e retorna o documento atualizado.
	// Retorna (nil, nil) quando o id não existe.
	UpdateFields(ctx context.Context, id string, patch PostPatch) (*entities.Post, error)
	// SoftDelete seta excluded=true e retorna o documento atualizado.
	// Retorna (nil, nil) quando o id não existe.
	SoftDelete(ctx context.Context, id string) (*entities.Post, error)
	// Search busca por substring case-insensitive em title, matter, teacher e
	// content.value, somente entre posts publicados e não excluídos. A ordem do
	// resultado é a nativa do banco (sem sort explícito).
	Search(ctx context.Context, pattern string) ([]*entities.Post, error)
}

// PostFilters contém filtros de visibilidade para listagem de posts.
// Campos nil não restringem a consulta.
type PostFilters struct {
	Posted   *bool
	Excluded *bool
}

// PostPatch contém os campos atualizáveis de um post.
// Campos nil são deixados intocados no documento.
type PostPatch struct {
	Title   *string
	Content *[]entities.ContentBlock
}
