package entities

import (
	"errors"
	"time"
)

// ContentType identifica o tipo de um bloco de conteúdo de uma aula
type ContentType string

const (
	ContentSubtitle        ContentType = "subtitle"
	ContentContentSubtitle ContentType = "contentSubtitle"
	ContentInitialConcepts ContentType = "initialConcepts"
	ContentLink            ContentType = "link"
)

// IsValid verifica se o tipo de bloco é um dos quatro tipos conhecidos
func (t ContentType) IsValid() bool {
	switch t {
	case ContentSubtitle, ContentContentSubtitle, ContentInitialConcepts, ContentLink:
		return true
	}
	return false
}

// ContentBlock é um bloco ordenado do corpo de uma aula.
// A ordem dos blocos é significativa: eles são renderizados de cima para baixo.
type ContentBlock struct {
	Type  ContentType
	Value string
}

// Post representa uma aula publicada na plataforma
type Post struct {
	ID          string
	Title       string
	Matter      string
	ClassNumber string
	Teacher     string
	Image       string
	Content     []ContentBlock
	UserID      string // referência solta, não é validada contra a coleção de usuários
	Posted      bool
	Excluded    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SoftDelete marca o post como excluído (o documento nunca é removido)
func (p *Post) SoftDelete() {
	p.Excluded = true
}

// VisibleTo informa se o post aparece em listagens para o papel dado.
// Alunos só veem posts publicados e não excluídos; professores veem os não
// excluídos; qualquer outro papel enxerga tudo (visão administrativa).
func (p *Post) VisibleTo(role Role) bool {
	switch role {
	case RoleAluno:
		return p.Posted && !p.Excluded
	case RoleProfessor:
		return !p.Excluded
	default:
		return true
	}
}

// Validate valida regras de negócio da entidade Post
func (p *Post) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}

	if p.Matter == "" {
		return errors.New("matter is required")
	}

	if p.ClassNumber == "" {
		return errors.New("classNumber is required")
	}

	if p.Teacher == "" {
		return errors.New("teacher is required")
	}

	if p.Image == "" {
		return errors.New("image is required")
	}

	if len(p.Content) == 0 {
		return errors.New("content must have at least one block")
	}

	for _, block := range p.Content {
		if !block.Type.IsValid() {
			return errors.New("invalid content block type")
		}
		if block.Value == "" {
			return errors.New("content block value is required")
		}
	}

	return nil
}
