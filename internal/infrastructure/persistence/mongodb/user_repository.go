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
	"github.com/smartclassfiap/smartclass-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository sobre MongoDB
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *mongo.Database) repositories.UserRepository {
	return &UserRepository{collection: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	model := r.toModel(user)

	result, err := r.collection.InsertOne(ctx, model)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var model userModel
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model userModel
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []*userModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) UpdateFields(ctx context.Context, id string, patch repositories.UserPatch) (*entities.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.MobilePhone != nil {
		set["mobilePhone"] = *patch.MobilePhone
	}
	if patch.PasswordHash != nil {
		set["password"] = *patch.PasswordHash
	}
	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	}

	return r.findOneAndSet(ctx, oid, set)
}

func (r *UserRepository) Deactivate(ctx context.Context, id string) (*entities.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// Soft delete: seta isActive=false ao invés de remover o documento
	set := bson.M{
		"isActive":  false,
		"updatedAt": time.Now().UTC(),
	}
	return r.findOneAndSet(ctx, oid, set)
}

func (r *UserRepository) SearchByName(ctx context.Context, name string) ([]*entities.User, error) {
	filter := bson.M{
		"name": primitive.Regex{Pattern: name, Options: "i"},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []*userModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// findOneAndSet aplica um $set atômico e retorna o documento já atualizado.
// Retorna (nil, nil) quando o id não existe.
func (r *UserRepository) findOneAndSet(ctx context.Context, oid primitive.ObjectID, set bson.M) (*entities.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var model userModel
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *userModel {
	model := &userModel{
		Name:        user.Name,
		Username:    user.Username,
		Email:       user.Email.String(),
		Password:    user.PasswordHash,
		Role:        string(user.Role),
		MobilePhone: user.MobilePhone,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}

	if user.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(user.ID); err == nil {
			model.ID = oid
		}
	}

	return model
}

func (r *UserRepository) toEntity(model *userModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:           model.ID.Hex(),
		Name:         model.Name,
		Username:     model.Username,
		Email:        email,
		PasswordHash: model.Password,
		Role:         entities.Role(model.Role),
		MobilePhone:  model.MobilePhone,
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

func (r *UserRepository) toEntities(models []*userModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
