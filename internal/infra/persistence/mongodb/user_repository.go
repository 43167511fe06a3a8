package mongodb

import (
	"context"

	"userlookup/internal/domain/entity"
	domainerrors "userlookup/internal/domain/errors"
	"userlookup/internal/domain/repository"
	"userlookup/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// userDocument is the stored shape of a user; _id holds the canonical UUID string.
type userDocument struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

// UserRepository reads users from one collection. A *mongo.Collection is safe
// for concurrent use, so the repository holds no other state.
type UserRepository struct {
	collection *mongo.Collection
}

var _ repository.UserRepository[*mongo.Session] = (*UserRepository)(nil)

// NewUserRepository creates a repository reading from collection.
func NewUserRepository(collection *mongo.Collection) *UserRepository {
	return &UserRepository{collection: collection}
}

// FindByID implements repository.UserRepository.
func (repo *UserRepository) FindByID(ctx context.Context, sess *mongo.Session, id uuid.UUID) (*entity.User, error) {
	var doc userDocument

	err := repo.collection.FindOne(mongo.NewSessionContext(ctx, sess), bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil //nolint:nilnil // absence is reported as a nil user
		}

		return nil, domainerrors.Infrastructure(err, "failed to find user by id")
	}

	return toUserDomain(&doc)
}

// Save upserts user; used to seed collections.
func (repo *UserRepository) Save(ctx context.Context, user entity.User) error {
	doc := fromUserDomain(user)

	_, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return domainerrors.Infrastructure(err, "failed to save user")
	}

	return nil
}

func toUserDomain(doc *userDocument) (*entity.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, domainerrors.NewInfrastructureError(err, "stored user has an invalid id")
	}

	return &entity.User{ID: id, Name: doc.Name}, nil
}

func fromUserDomain(user entity.User) userDocument {
	return userDocument{ID: user.ID.String(), Name: user.Name}
}
