package services

import (
	"context"
	errs "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/entities"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/errors"
)

func makePost(title string, posted, excluded bool) *entities.Post {
	return &entities.Post{
		Title:       title,
		Matter:      "Matemática",
		ClassNumber: "101",
		Teacher:     "Professor X",
		Image:       "http://image.url",
		Content: []entities.ContentBlock{
			{Type: entities.ContentSubtitle, Value: "Conceitos iniciais de álgebra"},
		},
		UserID:   "1",
		Posted:   posted,
		Excluded: excluded,
	}
}

var _ = Describe("PostService", func() {
	var (
		ctx       context.Context
		repo      *fakePostRepo
		service   *PostService
		published *entities.Post
		draft     *entities.Post
		deleted   *entities.Post
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = &fakePostRepo{}
		service = NewPostService(repo, noopLogger{})

		published = makePost("Palavra-chave", true, false)
		draft = makePost("Rascunho", false, false)
		deleted = makePost("Excluído", true, true)

		for _, p := range []*entities.Post{published, draft, deleted} {
			Expect(repo.Create(ctx, p)).To(Succeed())
		}
	})

	Describe("ListPosts", func() {
		Context("quando o papel é aluno", func() {
			It("retorna somente posts publicados e não excluídos", func() {
				posts, err := service.ListPosts(ctx, entities.RoleAluno)
				Expect(err).NotTo(HaveOccurred())
				Expect(posts).To(HaveLen(1))
				Expect(posts[0].Title).To(Equal("Palavra-chave"))
			})
		})

		Context("quando o papel é professor", func() {
			It("retorna posts não excluídos, inclusive rascunhos", func() {
				posts, err := service.ListPosts(ctx, entities.RoleProfessor)
				Expect(err).NotTo(HaveOccurred())
				Expect(posts).To(HaveLen(2))
				Expect([]string{posts[0].Title, posts[1].Title}).To(ConsistOf("Palavra-chave", "Rascunho"))
			})
		})

		Context("quando o papel é desconhecido ou ausente", func() {
			It("cai na visão administrativa e retorna tudo", func() {
				for _, role := range []entities.Role{"", "administrador", "qualquer"} {
					posts, err := service.ListPosts(ctx, role)
					Expect(err).NotTo(HaveOccurred())
					Expect(posts).To(HaveLen(3), "papel %q", role)
				}
			})
		})
	})

	Describe("GetPost", func() {
		It("retorna o post mesmo quando excluído ou não publicado", func() {
			// Acesso direto por id ignora os flags de visibilidade
			post, err := service.GetPost(ctx, deleted.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Excluded).To(BeTrue())

			post, err = service.GetPost(ctx, draft.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Posted).To(BeFalse())
		})

		It("falha com NotFound quando o id não existe", func() {
			_, err := service.GetPost(ctx, "post-999")
			Expect(err).To(MatchError(errors.ErrPostNotFound))
		})
	})

	Describe("CreatePost", func() {
		var input CreatePostInput

		BeforeEach(func() {
			f := false
			t := true
			input = CreatePostInput{
				Title:       "Teste",
				Matter:      "Matemática",
				ClassNumber: "101",
				Teacher:     "Professor X",
				Image:       "http://image.url",
				Content: []entities.ContentBlock{
					{Type: entities.ContentSubtitle, Value: "O que é UX"},
					{Type: entities.ContentLink, Value: "https://www.example.com"},
				},
				UserID:   "1",
				Posted:   &t,
				Excluded: &f,
			}
		})

		It("cria um post com todos os campos", func() {
			post, err := service.CreatePost(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.ID).NotTo(BeEmpty())
			Expect(post.Content).To(HaveLen(2))
		})

		It("aceita posted e excluded explícitos como false", func() {
			f := false
			input.Posted = &f
			input.Excluded = &f

			post, err := service.CreatePost(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Posted).To(BeFalse())
			Expect(post.Excluded).To(BeFalse())
		})

		It("trata posted ausente como campo obrigatório faltando", func() {
			input.Posted = nil

			_, err := service.CreatePost(ctx, input)
			var reqErr *errors.RequiredFieldsError
			Expect(errs.As(err, &reqErr)).To(BeTrue())
			Expect(reqErr.Fields).To(ContainElement("posted"))
		})

		It("retorna uma única mensagem combinada para todos os campos ausentes", func() {
			input.Title = ""
			input.Content = nil
			input.UserID = ""

			_, err := service.CreatePost(ctx, input)
			var reqErr *errors.RequiredFieldsError
			Expect(errs.As(err, &reqErr)).To(BeTrue())
			Expect(reqErr.Fields).To(ConsistOf("title", "content", "userId"))
		})

		It("preserva a ordem dos blocos de conteúdo", func() {
			post, err := service.CreatePost(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Content[0].Type).To(Equal(entities.ContentSubtitle))
			Expect(post.Content[1].Type).To(Equal(entities.ContentLink))
		})
	})

	Describe("UpdatePost", func() {
		It("atualiza somente o título, sem tocar nos demais campos", func() {
			title := "Atualizado"
			post, err := service.UpdatePost(ctx, published.ID, UpdatePostInput{Title: &title})
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Title).To(Equal("Atualizado"))
			Expect(post.Matter).To(Equal("Matemática"))
			Expect(post.Content).To(HaveLen(1))
		})

		It("descarta o campo author", func() {
			author := "Autor"
			post, err := service.UpdatePost(ctx, published.ID, UpdatePostInput{Author: &author})
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Title).To(Equal("Palavra-chave"))
		})

		It("falha com NotFound quando o id não existe", func() {
			title := "Qualquer"
			_, err := service.UpdatePost(ctx, "post-999", UpdatePostInput{Title: &title})
			Expect(err).To(MatchError(errors.ErrPostNotFound))
		})
	})

	Describe("SoftDeletePost", func() {
		It("seta excluded=true e mantém o documento", func() {
			post, err := service.SoftDeletePost(ctx, published.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Excluded).To(BeTrue())

			// Leituras por id continuam retornando o post com o flag virado
			found, err := service.GetPost(ctx, published.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Excluded).To(BeTrue())
		})

		It("remove o post das listagens de aluno e professor", func() {
			_, err := service.SoftDeletePost(ctx, published.ID)
			Expect(err).NotTo(HaveOccurred())

			posts, err := service.ListPosts(ctx, entities.RoleAluno)
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(BeEmpty())

			posts, err = service.ListPosts(ctx, entities.RoleProfessor)
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(HaveLen(1))
			Expect(posts[0].Title).To(Equal("Rascunho"))
		})

		It("falha com NotFound quando o id não existe", func() {
			_, err := service.SoftDeletePost(ctx, "post-999")
			Expect(err).To(MatchError(errors.ErrPostNotFound))
		})
	})

	Describe("SearchPosts", func() {
		It("rejeita termo vazio", func() {
			_, err := service.SearchPosts(ctx, "")
			Expect(err).To(MatchError(errors.ErrSearchQueryRequired))
		})

		It("rejeita padrão que não compila", func() {
			_, err := service.SearchPosts(ctx, "[inválido")
			Expect(err).To(MatchError(errors.ErrInvalidSearchPattern))
		})

		It("encontra por título sem diferenciar maiúsculas", func() {
			posts, err := service.SearchPosts(ctx, "palavra-chave")
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(HaveLen(1))
			Expect(posts[0].Title).To(Equal("Palavra-chave"))
		})

		It("encontra pelo valor de um bloco de conteúdo", func() {
			posts, err := service.SearchPosts(ctx, "álgebra")
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(HaveLen(1))
		})

		It("ignora rascunhos e posts excluídos", func() {
			posts, err := service.SearchPosts(ctx, "Rascunho")
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(BeEmpty())

			posts, err = service.SearchPosts(ctx, "Excluído")
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(BeEmpty())
		})
	})
})
