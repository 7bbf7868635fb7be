package repositories

import (
	"context"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// List retorna todos os usuários (inclusive inativos) em ordem de criação.
	List(ctx context.Context) ([]*entities.User, error)
	// UpdateFields aplica um $set parcial e retorna o documento atualizado.
	// Retorna (nil, nil) quando o id não existe.
	UpdateFields(ctx context.Context, id string, patch UserPatch) (*entities.User, error)
	// Deactivate seta isActive=false e retorna o documento atualizado.
	// Retorna (nil, nil) quando o id não existe.
	Deactivate(ctx context.Context, id string) (*entities.User, error)
	// SearchByName busca por substring case-insensitive sobre o campo name.
	SearchByName(ctx context.Context, name string) ([]*entities.User, error)
}

// UserPatch contém os campos atualizáveis de um usuário.
// Campos nil são deixados intocados no documento.
type UserPatch struct {
	Name         *string
	Email        *string
	MobilePhone  *string
	PasswordHash *string
	IsActive     *bool
}
