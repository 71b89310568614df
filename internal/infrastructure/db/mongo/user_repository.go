package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lostfound/community-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository persists user records in the users collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// userDoc mirrors the stored document. The field is named "password" in the
// collection but only ever holds the bcrypt hash.
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Password     string             `bson:"password"`
	Name         string             `bson:"name"`
	Phone        string             `bson:"phone"`
	ProfileImage string             `bson:"profileImage,omitempty"`
	IsAdmin      bool               `bson:"isAdmin"`
	IsVerified   bool               `bson:"isVerified"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.Password,
		Name:         d.Name,
		Phone:        d.Phone,
		ProfileImage: d.ProfileImage,
		IsAdmin:      d.IsAdmin,
		IsVerified:   d.IsVerified,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Create inserts a new user. The unique index on email turns concurrent
// duplicate registrations into domain.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Email:      user.Email,
		Password:   user.PasswordHash,
		Name:       user.Name,
		Phone:      user.Phone,
		IsAdmin:    user.IsAdmin,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateProfile sets name and phone on the user's own record.
func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, phone string) error {
	return r.updateByID(ctx, id, bson.M{"name": name, "phone": phone})
}

// SetProfileImage stores the hosted avatar URL.
func (r *UserRepository) SetProfileImage(ctx context.Context, id, imageURL string) error {
	return r.updateByID(ctx, id, bson.M{"profileImage": imageURL})
}

// SetVerified flips the admin-controlled verification flag.
func (r *UserRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	return r.updateByID(ctx, id, bson.M{"isVerified": verified})
}

func (r *UserRepository) updateByID(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	fields["updatedAt"] = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

type userOverviewDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Email        string             `bson:"email"`
	Name         string             `bson:"name"`
	Phone        string             `bson:"phone"`
	ProfileImage string             `bson:"profileImage,omitempty"`
	IsAdmin      bool               `bson:"isAdmin"`
	IsVerified   bool               `bson:"isVerified"`
	PostCount    int64              `bson:"postCount"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// ListWithPostCounts joins each user with their posts, projects the password
// hash away, and returns users newest first with a post count.
func (r *UserRepository) ListWithPostCounts(ctx context.Context) ([]domain.UserOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         postsCollection,
			"localField":   "_id",
			"foreignField": "userId",
			"as":           "posts",
		}}},
		{{Key: "$addFields", Value: bson.M{"postCount": bson.M{"$size": "$posts"}}}},
		{{Key: "$project", Value: bson.M{"password": 0, "posts": 0}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userOverviewDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.UserOverview, 0, len(docs))
	for _, d := range docs {
		users = append(users, domain.UserOverview{
			ID:           d.ID.Hex(),
			Email:        d.Email,
			Name:         d.Name,
			Phone:        d.Phone,
			ProfileImage: d.ProfileImage,
			IsAdmin:      d.IsAdmin,
			IsVerified:   d.IsVerified,
			PostCount:    d.PostCount,
			CreatedAt:    d.CreatedAt,
		})
	}
	return users, nil
}

// EnsureIndexes creates the unique email index and the phone lookup index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "phone", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
