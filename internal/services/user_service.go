package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/entities"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/errors"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/ports"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/repositories"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers lista todos os usuários (inclusive inativos) em ordem de criação
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.users.fetch", Err: err}
	}
	return users, nil
}

// GetUser busca um usuário por ID. Usuários inativos também são retornados.
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.users.fetch_one", Err: err}
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Name        string
	Username    string
	Password    string
	Email       string
	IsActive    bool
	Role        string
	MobilePhone string
}

// CreateUser valida os dados e cria um novo usuário com a senha já em hash.
// Todos os sete campos são obrigatórios; isActive precisa ser true na criação.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	if missing := s.missingFields(input); len(missing) > 0 {
		return nil, &errors.RequiredFieldsError{Fields: missing}
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.users.create", Err: err}
	}

	user := &entities.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.Role(input.Role),
		MobilePhone:  input.MobilePhone,
		IsActive:     input.IsActive,
	}

	s.logger.Info("creating user", "username", input.Username, "role", input.Role)

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Conflitos de índice único e rejeições do validador de schema chegam aqui
		return nil, &errors.StoreError{MessageID: "error.users.create", Err: err}
	}

	return user, nil
}

func (s *UserService) missingFields(input CreateUserInput) []string {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Username == "" {
		missing = append(missing, "username")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if !input.IsActive {
		missing = append(missing, "isActive")
	}
	if input.Role == "" {
		missing = append(missing, "role")
	}
	if input.MobilePhone == "" {
		missing = append(missing, "mobilePhone")
	}
	return missing
}

// UpdateUserInput representa os campos atualizáveis de um usuário.
// Campos nil são deixados intocados.
type UpdateUserInput struct {
	Name        *string
	Email       *string
	MobilePhone *string
	Password    *string
	IsActive    *bool
}

// UpdateUser aplica uma atualização parcial. Uma nova senha é armazenada
// somente como hash; o email é normalizado antes de persistir.
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	patch := repositories.UserPatch{
		Name:        input.Name,
		MobilePhone: input.MobilePhone,
		IsActive:    input.IsActive,
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		normalized := email.String()
		patch.Email = &normalized
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, &errors.StoreError{MessageID: "error.users.update", Err: err}
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	user, err := s.userRepo.UpdateFields(ctx, id, patch)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.users.update", Err: err}
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// DeactivateUser inativa um usuário (soft delete, o documento nunca é removido).
// Um usuário inativo continua legível por id, mas não consegue mais fazer login.
func (s *UserService) DeactivateUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.Deactivate(ctx, id)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.users.delete", Err: err}
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	s.logger.Info("user deactivated", "id", id)
	return user, nil
}

// Login verifica as credenciais e retorna o usuário autenticado.
// A ordem das verificações é contratual: existência, depois isActive, depois
// senha: um usuário inativo com senha errada recebe o erro de inativo.
func (s *UserService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, errors.ErrMissingCredentials
	}

	normalized := strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.login.failed", Err: err}
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, errors.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	s.logger.Info("user logged in", "id", user.ID)
	return user, nil
}

// SearchUsersByName busca usuários por substring case-insensitive sobre o nome
func (s *UserService) SearchUsersByName(ctx context.Context, name string) ([]*entities.User, error) {
	if name == "" {
		return nil, errors.ErrSearchNameRequired
	}

	if err := validateSearchPattern(name); err != nil {
		return nil, err
	}

	users, err := s.userRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, &errors.StoreError{MessageID: "error.users.fetch", Err: err}
	}
	return users, nil
}
