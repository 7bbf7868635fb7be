package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/smartclassfiap/smartclass-backend/internal/domain/ports"
	"github.com/smartclassfiap/smartclass-backend/internal/infrastructure/config"
)

// NewDatabaseConnection cria uma nova conexão com o MongoDB
func NewDatabaseConnection(cfg *config.DatabaseConfig, log ports.Logger) (*mongo.Database, error) {
	timeout := time.Duration(cfg.ConnectTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Ping para verificar conexão
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected successfully",
		"uri", cfg.URI,
		"database", cfg.Name,
	)

	return client.Database(cfg.Name), nil
}

// EnsureSchemas cria as coleções com validadores $jsonSchema e os índices únicos.
// O banco valida cada documento na escrita; o enum dos blocos de conteúdo é
// rejeitado aqui, não na aplicação.
func EnsureSchemas(ctx context.Context, db *mongo.Database) error {
	userSchema := bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"name", "username", "email", "password", "role", "isActive", "mobilePhone"},
			"properties": bson.M{
				"name":        bson.M{"bsonType": "string", "minLength": 1},
				"username":    bson.M{"bsonType": "string", "minLength": 1},
				"email":       bson.M{"bsonType": "string", "minLength": 1},
				"password":    bson.M{"bsonType": "string", "minLength": 1},
				"role":        bson.M{"enum": []string{"professor", "aluno", "administrador"}},
				"isActive":    bson.M{"bsonType": "bool"},
				"mobilePhone": bson.M{"bsonType": "string", "minLength": 1},
			},
		},
	}

	postSchema := bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"title", "matter", "classNumber", "teacher", "image", "content", "posted", "excluded"},
			"properties": bson.M{
				"title":       bson.M{"bsonType": "string", "minLength": 1},
				"matter":      bson.M{"bsonType": "string", "minLength": 1},
				"classNumber": bson.M{"bsonType": "string", "minLength": 1},
				"teacher":     bson.M{"bsonType": "string", "minLength": 1},
				"image":       bson.M{"bsonType": "string", "minLength": 1},
				"userId":      bson.M{"bsonType": "string"},
				"posted":      bson.M{"bsonType": "bool"},
				"excluded":    bson.M{"bsonType": "bool"},
				"content": bson.M{
					"bsonType": "array",
					"minItems": 1,
					"items": bson.M{
						"bsonType": "object",
						"required": []string{"type", "value"},
						"properties": bson.M{
							"type":  bson.M{"enum": []string{"subtitle", "contentSubtitle", "initialConcepts", "link"}},
							"value": bson.M{"bsonType": "string", "minLength": 1},
						},
					},
				},
			},
		},
	}

	if err := createCollection(ctx, db, usersCollection, userSchema); err != nil {
		return err
	}
	if err := createCollection(ctx, db, postsCollection, postSchema); err != nil {
		return err
	}

	// Índices únicos de username e email
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	return nil
}

func createCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	opts := options.CreateCollection().SetValidator(validator)
	if err := db.CreateCollection(ctx, name, opts); err != nil {
		// NamespaceExists: a coleção já foi criada em uma execução anterior
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Code == 48 {
			return nil
		}
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	return nil
}
