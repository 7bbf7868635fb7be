package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/entities"
	"github.com/smartclassfiap/smartclass-backend/internal/domain/repositories"
)

// PostRepository implementa repositories.PostRepository sobre MongoDB
type PostRepository struct {
	collection *mongo.Collection
}

// NewPostRepository cria um novo PostRepository
func NewPostRepository(db *mongo.Database) repositories.PostRepository {
	return &PostRepository{collection: db.Collection(postsCollection)}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.Post) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	model := r.toModel(post)

	result, err := r.collection.InsertOne(ctx, model)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid.Hex()
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*entities.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var model postModel
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PostRepository) List(ctx context.Context, filters repositories.PostFilters) ([]*entities.Post, error) {
	filter := bson.M{}
	if filters.Posted != nil {
		filter["posted"] = *filters.Posted
	}
	if filters.Excluded != nil {
		filter["excluded"] = *filters.Excluded
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []*postModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PostRepository) UpdateFields(ctx context.Context, id string, patch repositories.PostPatch) (*entities.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = r.toContentModels(*patch.Content)
	}

	return r.findOneAndSet(ctx, oid, set)
}

func (r *PostRepository) SoftDelete(ctx context.Context, id string) (*entities.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// Soft delete: seta excluded=true ao invés de remover o documento
	set := bson.M{
		"excluded":  true,
		"updatedAt": time.Now().UTC(),
	}
	return r.findOneAndSet(ctx, oid, set)
}

func (r *PostRepository) Search(ctx context.Context, pattern string) ([]*entities.Post, error) {
	regex := primitive.Regex{Pattern: pattern, Options: "i"}

	// Somente posts publicados e não excluídos entram no resultado da busca
	filter := bson.M{
		"excluded": false,
		"posted":   true,
		"$or": []bson.M{
			{"title": regex},
			{"matter": regex},
			{"teacher": regex},
			{"content.value": regex},
		},
	}

	// Sem sort explícito: a busca devolve a ordem nativa do banco
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []*postModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PostRepository) findOneAndSet(ctx context.Context, oid primitive.ObjectID, set bson.M) (*entities.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var model postModel
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

// Conversores
func (r *PostRepository) toModel(post *entities.Post) *postModel {
	model := &postModel{
		Title:       post.Title,
		Matter:      post.Matter,
		ClassNumber: post.ClassNumber,
		Teacher:     post.Teacher,
		Image:       post.Image,
		Content:     r.toContentModels(post.Content),
		UserID:      post.UserID,
		Posted:      post.Posted,
		Excluded:    post.Excluded,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}

	if post.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(post.ID); err == nil {
			model.ID = oid
		}
	}

	return model
}

func (r *PostRepository) toContentModels(blocks []entities.ContentBlock) []contentBlockModel {
	models := make([]contentBlockModel, len(blocks))
	for i, block := range blocks {
		models[i] = contentBlockModel{
			Type:  string(block.Type),
			Value: block.Value,
		}
	}
	return models
}

func (r *PostRepository) toEntity(model *postModel) *entities.Post {
	content := make([]entities.ContentBlock, len(model.Content))
	for i, block := range model.Content {
		content[i] = entities.ContentBlock{
			Type:  entities.ContentType(block.Type),
			Value: block.Value,
		}
	}

	return &entities.Post{
		ID:          model.ID.Hex(),
		Title:       model.Title,
		Matter:      model.Matter,
		ClassNumber: model.ClassNumber,
		Teacher:     model.Teacher,
		Image:       model.Image,
		Content:     content,
		UserID:      model.UserID,
		Posted:      model.Posted,
		Excluded:    model.Excluded,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (r *PostRepository) toEntities(models []*postModel) []*entities.Post {
	posts := make([]*entities.Post, 0, len(models))
	for _, model := range models {
		posts = append(posts, r.toEntity(model))
	}
	return posts
}
