package entities

// Role representa o papel de um usuário na plataforma
type Role string

const (
	RoleProfessor     Role = "professor"
	RoleAluno         Role = "aluno"
	RoleAdministrador Role = "administrador"
)

// IsValid verifica se o role é um dos papéis conhecidos
func (r Role) IsValid() bool {
	return r == RoleProfessor || r == RoleAluno || r == RoleAdministrador
}
