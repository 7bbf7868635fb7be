package errors

import (
	"errors"
	"strings"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound         = errors.New("error.users.not_found")
	ErrPostNotFound         = errors.New("error.posts.not_found")
	ErrMissingCredentials   = errors.New("error.login.missing_credentials")
	ErrInvalidCredentials   = errors.New("error.login.invalid_credentials")
	ErrUserInactive         = errors.New("error.login.user_inactive")
	ErrSearchNameRequired   = errors.New("error.users.search_name_required")
	ErrSearchQueryRequired  = errors.New("error.posts.search_query_required")
	ErrInvalidSearchPattern = errors.New("error.search.invalid_pattern")
)

// RequiredFieldsError indica campos obrigatórios ausentes em uma requisição.
// A mensagem combinada (um único erro listando todos os campos) é montada na
// camada de serialização.
type RequiredFieldsError struct {
	Fields []string
}

func (e *RequiredFieldsError) Error() string {
	return "required fields missing: " + strings.Join(e.Fields, ", ")
}

// StoreError envolve uma falha do banco de documentos. MessageID aponta para a
// mensagem curta traduzível; Err carrega a mensagem original do driver, que é
// devolvida ao cliente no campo `details`.
type StoreError struct {
	MessageID string
	Err       error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.MessageID + ": " + e.Err.Error()
	}
	return e.MessageID
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
