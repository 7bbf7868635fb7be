package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	usersCollection = "users"
	postsCollection = "posts"
)

// userModel é o documento MongoDB de usuários
type userModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Username    string             `bson:"username"`
	Email       string             `bson:"email"`
	Password    string             `bson:"password"` // hash bcrypt
	Role        string             `bson:"role"`
	MobilePhone string             `bson:"mobilePhone"`
	IsActive    bool               `bson:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// contentBlockModel é o sub-documento de um bloco de conteúdo.
// Os blocos não têm _id próprio e a ordem do array é preservada.
type contentBlockModel struct {
	Type  string `bson:"type"`
	Value string `bson:"value"`
}

// postModel é o documento MongoDB de posts (aulas)
type postModel struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Title       string              `bson:"title"`
	Matter      string              `bson:"matter"`
	ClassNumber string              `bson:"classNumber"`
	Teacher     string              `bson:"teacher"`
	Image       string              `bson:"image"`
	Content     []contentBlockModel `bson:"content"`
	UserID      string              `bson:"userId,omitempty"`
	Posted      bool                `bson:"posted"`
	Excluded    bool                `bson:"excluded"`
	CreatedAt   time.Time           `bson:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
}
