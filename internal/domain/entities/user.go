package entities

import (
	"errors"
	"time"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/valueobjects"
)

// User representa um usuário da plataforma (professor, aluno ou administrador)
type User struct {
	ID           string
	Name         string
	Username     string
	Email        valueobjects.Email
	PasswordHash string
	Role         Role
	MobilePhone  string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdministrador verifica se o usuário é administrador
func (u *User) IsAdministrador() bool {
	return u.Role == RoleAdministrador
}

// Deactivate inativa o usuário (soft delete, o registro nunca é removido)
func (u *User) Deactivate() {
	u.IsActive = false
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}

	if u.Username == "" {
		return errors.New("username is required")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.MobilePhone == "" {
		return errors.New("mobilePhone is required")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}
