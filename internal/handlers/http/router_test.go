package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/entities"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/ports"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/repositories"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/valueobjects"
	"github.com/smartclassfiap/smartclass-backend/internal/handlers/middleware"
	"github.com/smartclassfiap/smartclass-backend/internal/infrastructure/i18n"
	"github.com/smartclassfiap/smartclass-backend/internal/services"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...any)      {}
func (noopLogger) Error(string, ...any)     {}
func (noopLogger) Debug(string, ...any)     {}
func (noopLogger) Warn(string, ...any)      {}
func (noopLogger) With(...any) ports.Logger { return noopLogger{} }

// memUserRepo e memPostRepo são repositórios em memória para os testes de
// handler, com ids crescentes como o banco faz com _id

type memUserRepo struct {
	users  []*entities.User
	nextID int
}

func (m *memUserRepo) Create(_ context.Context, user *entities.User) error {
	m.nextID++
	user.ID = fmt.Sprintf("user-%d", m.nextID)
	m.users = append(m.users, user)
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range m.users {
		if u.Email.String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) List(_ context.Context) ([]*entities.User, error) {
	return m.users, nil
}

func (m *memUserRepo) UpdateFields(ctx context.Context, id string, patch repositories.UserPatch) (*entities.User, error) {
	user, _ := m.FindByID(ctx, id)
	if user == nil {
		return nil, nil
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		email, err := valueobjects.NewEmail(*patch.Email)
		if err != nil {
			return nil, err
		}
		user.Email = email
	}
	if patch.MobilePhone != nil {
		user.MobilePhone = *patch.MobilePhone
	}
	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}
	return user, nil
}

func (m *memUserRepo) Deactivate(ctx context.Context, id string) (*entities.User, error) {
	user, _ := m.FindByID(ctx, id)
	if user == nil {
		return nil, nil
	}
	user.IsActive = false
	return user, nil
}

func (m *memUserRepo) SearchByName(_ context.Context, name string) ([]*entities.User, error) {
	var result []*entities.User
	for _, u := range m.users {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(name)) {
			result = append(result, u)
		}
	}
	return result, nil
}

type memPostRepo struct {
	posts  []*entities.Post
	nextID int
}

func (m *memPostRepo) Create(_ context.Context, post *entities.Post) error {
	m.nextID++
	post.ID = fmt.Sprintf("post-%d", m.nextID)
	m.posts = append(m.posts, post)
	return nil
}

func (m *memPostRepo) FindByID(_ context.Context, id string) (*entities.Post, error) {
	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPostRepo) List(_ context.Context, filters repositories.PostFilters) ([]*entities.Post, error) {
	var result []*entities.Post
	for _, p := range m.posts {
		if filters.Posted != nil && p.Posted != *filters.Posted {
			continue
		}
		if filters.Excluded != nil && p.Excluded != *filters.Excluded {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (m *memPostRepo) UpdateFields(ctx context.Context, id string, patch repositories.PostPatch) (*entities.Post, error) {
	post, _ := m.FindByID(ctx, id)
	if post == nil {
		return nil, nil
	}
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	return post, nil
}

func (m *memPostRepo) SoftDelete(ctx context.Context, id string) (*entities.Post, error) {
	post, _ := m.FindByID(ctx, id)
	if post == nil {
		return nil, nil
	}
	post.Excluded = true
	return post, nil
}

func (m *memPostRepo) Search(_ context.Context, pattern string) ([]*entities.Post, error) {
	needle := strings.ToLower(pattern)
	matches := func(p *entities.Post) bool {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Matter), needle) ||
			strings.Contains(strings.ToLower(p.Teacher), needle) {
			return true
		}
		for _, block := range p.Content {
			if strings.Contains(strings.ToLower(block.Value), needle) {
				return true
			}
		}
		return false
	}

	var result []*entities.Post
	for _, p := range m.posts {
		if p.Excluded || !p.Posted {
			continue
		}
		if matches(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// newTestRouter monta a aplicação completa sobre repositórios em memória,
// com as mesmas rotas e o mesmo middleware de i18n do servidor real
func newTestRouter(t *testing.T) (*gin.Engine, *memUserRepo, *memPostRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	i18nService, err := i18n.NewService("../../infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		t.Fatalf("falha ao carregar catálogo i18n: %v", err)
	}

	userRepo := &memUserRepo{}
	postRepo := &memPostRepo{}

	userHandler := NewUserHandler(services.NewUserService(userRepo, noopLogger{}))
	postHandler := NewPostHandler(services.NewPostService(postRepo, noopLogger{}))

	router := gin.New()
	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())

	users := router.Group("/users")
	{
		users.GET("/login", userHandler.Login)
		users.GET("/search", userHandler.SearchUsers)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.POST("", userHandler.CreateUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeactivateUser)
	}

	posts := router.Group("/posts")
	{
		posts.GET("/search", postHandler.SearchPosts)
		posts.GET("", postHandler.ListPosts)
		posts.GET("/:id", postHandler.GetPost)
		posts.POST("", postHandler.CreatePost)
		posts.PUT("/:id", postHandler.UpdatePost)
		posts.DELETE("/:id", postHandler.SoftDeletePost)
	}

	return router, userRepo, postRepo
}

// doRequest executa uma requisição contra o router e retorna o recorder.
// body nil vira requisição sem corpo; qualquer outro valor é serializado como JSON.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("falha ao serializar corpo: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody desserializa o corpo da resposta em um mapa genérico
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("falha ao desserializar corpo %q: %v", rec.Body.String(), err)
	}
	return body
}

// decodeList desserializa um corpo que é um array JSON
func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("falha ao desserializar corpo %q: %v", rec.Body.String(), err)
	}
	return body
}

// seedUser insere um usuário direto no repositório, com a senha já em hash
func seedUser(t *testing.T, repo *memUserRepo, name, emailAddr, password string, active bool) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail(emailAddr)
	if err != nil {
		t.Fatalf("email de teste inválido: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("falha ao gerar hash: %v", err)
	}

	user := &entities.User{
		Name:         name,
		Username:     strings.Split(emailAddr, "@")[0],
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleProfessor,
		MobilePhone:  "11999999999",
		IsActive:     active,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("falha ao semear usuário: %v", err)
	}
	return user
}

// seedPost insere um post direto no repositório
func seedPost(t *testing.T, repo *memPostRepo, title string, posted, excluded bool) *entities.Post {
	t.Helper()

	post := &entities.Post{
		Title:       title,
		Matter:      "História",
		ClassNumber: "3B",
		Teacher:     "Maria Souza",
		Image:       "http://image.url/capa.png",
		Content: []entities.ContentBlock{
			{Type: entities.ContentInitialConcepts, Value: "Conceitos iniciais da Revolução Industrial"},
		},
		UserID:   "user-1",
		Posted:   posted,
		Excluded: excluded,
	}
	if err := repo.Create(context.Background(), post); err != nil {
		t.Fatalf("falha ao semear post: %v", err)
	}
	return post
}
