package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/entities"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/ports"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/repositories"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/valueobjects"
)

// noopLogger descarta tudo; os testes de serviço não verificam logs
type noopLogger struct{}

func (noopLogger) Info(string, ...any)      {}
func (noopLogger) Error(string, ...any)     {}
func (noopLogger) Debug(string, ...any)     {}
func (noopLogger) Warn(string, ...any)      {}
func (noopLogger) With(...any) ports.Logger { return noopLogger{} }

// fakeUserRepo implementa repositories.UserRepository em memória,
// preservando a ordem de inserção como o banco faz com _id crescente
type fakeUserRepo struct {
	users  []*entities.User
	nextID int
	err    error // quando setado, toda operação falha com este erro
}

func (f *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email.String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func (f *fakeUserRepo) UpdateFields(ctx context.Context, id string, patch repositories.UserPatch) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, _ := f.FindByID(ctx, id)
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

func (f *fakeUserRepo) Deactivate(ctx context.Context, id string) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, _ := f.FindByID(ctx, id)
	if user == nil {
		return nil, nil
	}
	user.IsActive = false
	return user, nil
}

func (f *fakeUserRepo) SearchByName(_ context.Context, name string) ([]*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entities.User
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(name)) {
			result = append(result, u)
		}
	}
	return result, nil
}

// fakePostRepo implementa repositories.PostRepository em memória
type fakePostRepo struct {
	posts  []*entities.Post
	nextID int
	err    error
}

func (f *fakePostRepo) Create(_ context.Context, post *entities.Post) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	post.ID = fmt.Sprintf("post-%d", f.nextID)
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePostRepo) FindByID(_ context.Context, id string) (*entities.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) List(_ context.Context, filters repositories.PostFilters) ([]*entities.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entities.Post
	for _, p := range f.posts {
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

func (f *fakePostRepo) UpdateFields(ctx context.Context, id string, patch repositories.PostPatch) (*entities.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	post, _ := f.FindByID(ctx, id)
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

func (f *fakePostRepo) SoftDelete(ctx context.Context, id string) (*entities.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	post, _ := f.FindByID(ctx, id)
	if post == nil {
		return nil, nil
	}
	post.Excluded = true
	return post, nil
}

func (f *fakePostRepo) Search(_ context.Context, pattern string) ([]*entities.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
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
	for _, p := range f.posts {
		if p.Excluded || !p.Posted {
			continue
		}
		if matches(p) {
			result = append(result, p)
		}
	}
	return result, nil
}
