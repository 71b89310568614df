package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lostfound/community-api/internal/core/domain"
	"github.com/lostfound/community-api/internal/core/ports"
)

const postsCollection = "posts"

// PostRepository persists post records in the posts collection.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type contactInfoDoc struct {
	Phone            string `bson:"phone"`
	Email            string `bson:"email"`
	PreferredContact string `bson:"preferredContact"`
}

type postDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Category     string             `bson:"category"`
	ItemType     string             `bson:"itemType"`
	Location     string             `bson:"location"`
	DateOccurred time.Time          `bson:"dateOccurred"`
	Images       []string           `bson:"images"`
	ContactInfo  contactInfoDoc     `bson:"contactInfo"`
	UserID       primitive.ObjectID `bson:"userId"`
	Status       string             `bson:"status"`
	Views        int64              `bson:"views"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d *postDoc) toDomain() domain.Post {
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return domain.Post{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		Category:     domain.PostCategory(d.Category),
		ItemType:     d.ItemType,
		Location:     d.Location,
		DateOccurred: d.DateOccurred,
		Images:       images,
		ContactInfo: domain.ContactInfo{
			Phone:            d.ContactInfo.Phone,
			Email:            d.ContactInfo.Email,
			PreferredContact: d.ContactInfo.PreferredContact,
		},
		UserID:    d.UserID.Hex(),
		Status:    domain.PostStatus(d.Status),
		Views:     d.Views,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// authorDoc is the joined owner snippet produced by the $lookup stages.
type authorDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"name"`
	ProfileImage string             `bson:"profileImage,omitempty"`
	IsVerified   bool               `bson:"isVerified"`
}

type postWithAuthorDoc struct {
	postDoc `bson:",inline"`
	Author  authorDoc `bson:"user"`
}

func (d *postWithAuthorDoc) toDomain() domain.PostWithAuthor {
	return domain.PostWithAuthor{
		Post: d.postDoc.toDomain(),
		Author: domain.PostAuthor{
			ID:           d.Author.ID.Hex(),
			Name:         d.Author.Name,
			ProfileImage: d.Author.ProfileImage,
			IsVerified:   d.Author.IsVerified,
		},
	}
}

// authorLookup joins the owning user onto each post as "user".
func authorLookup() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: "$user"}},
		// Keep only the owner's public fields; the password hash must never
		// leave the store layer.
		{{Key: "$project", Value: bson.M{
			"user": bson.M{
				"_id":          "$user._id",
				"name":         "$user.name",
				"profileImage": "$user.profileImage",
				"isVerified":   "$user.isVerified",
			},
			"title":        1,
			"description":  1,
			"category":     1,
			"itemType":     1,
			"location":     1,
			"dateOccurred": 1,
			"images":       1,
			"contactInfo":  1,
			"userId":       1,
			"status":       1,
			"views":        1,
			"createdAt":    1,
			"updatedAt":    1,
		}}},
	}
}

// Create inserts a new post document and returns its generated id.
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (string, error) {
	ownerID, err := primitive.ObjectIDFromHex(post.UserID)
	if err != nil {
		return "", domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := postDoc{
		Title:        post.Title,
		Description:  post.Description,
		Category:     string(post.Category),
		ItemType:     post.ItemType,
		Location:     post.Location,
		DateOccurred: post.DateOccurred,
		Images:       post.Images,
		ContactInfo: contactInfoDoc{
			Phone:            post.ContactInfo.Phone,
			Email:            post.ContactInfo.Email,
			PreferredContact: post.ContactInfo.PreferredContact,
		},
		UserID:    ownerID,
		Status:    string(post.Status),
		Views:     post.Views,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert post: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// IncrementViews adds one to the view counter. The $inc is atomic per
// document; no cross-field consistency is attempted.
func (r *PostRepository) IncrementViews(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// FindByIDWithAuthor returns a single post joined with its owner's public
// details.
func (r *PostRepository) FindByIDWithAuthor(ctx context.Context, id string) (*domain.PostWithAuthor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": oid}}},
	}
	pipeline = append(pipeline, authorLookup()...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []postWithAuthorDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode post: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrPostNotFound
	}

	post := docs[0].toDomain()
	return &post, nil
}

// List returns a page of active posts matching filter, newest first, plus the
// total count of matches.
func (r *PostRepository) List(ctx context.Context, filter ports.ListPostsFilter) ([]domain.PostWithAuthor, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{"status": string(domain.StatusActive)}
	if filter.Category != "" {
		match["category"] = filter.Category
	}
	if filter.Search != "" {
		match["$text"] = bson.M{"$search": filter.Search}
	}

	skip := (filter.Page - 1) * filter.Limit

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
	}
	pipeline = append(pipeline, authorLookup()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: filter.Limit}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []postWithAuthorDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode posts: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	posts := make([]domain.PostWithAuthor, 0, len(docs))
	for i := range docs {
		posts = append(posts, docs[i].toDomain())
	}
	return posts, total, nil
}

// ListByUser returns a user's posts newest first. activeOnly restricts the
// result to active posts (public profile view).
func (r *PostRepository) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"userId": oid}
	if activeOnly {
		filter["status"] = string(domain.StatusActive)
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list user posts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []postDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode user posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(docs))
	for i := range docs {
		posts = append(posts, docs[i].toDomain())
	}
	return posts, nil
}

type postOverviewDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Category  string             `bson:"category"`
	Status    string             `bson:"status"`
	Views     int64              `bson:"views"`
	UserName  string             `bson:"userName"`
	UserEmail string             `bson:"userEmail"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// ListWithAuthors returns every post with owner name and email, newest first.
func (r *PostRepository) ListWithAuthors(ctx context.Context) ([]domain.PostOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$project", Value: bson.M{
			"title":     1,
			"category":  1,
			"status":    1,
			"views":     1,
			"createdAt": 1,
			"userName":  "$user.name",
			"userEmail": "$user.email",
		}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list posts overview: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []postOverviewDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts overview: %w", err)
	}

	posts := make([]domain.PostOverview, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, domain.PostOverview{
			ID:        d.ID.Hex(),
			Title:     d.Title,
			Category:  domain.PostCategory(d.Category),
			Status:    domain.PostStatus(d.Status),
			Views:     d.Views,
			UserName:  d.UserName,
			UserEmail: d.UserEmail,
			CreatedAt: d.CreatedAt,
		})
	}
	return posts, nil
}

// ExpireOlderThan marks active posts created before cutoff as expired.
func (r *PostRepository) ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateMany(ctx,
		bson.M{
			"status":    string(domain.StatusActive),
			"createdAt": bson.M{"$lt": cutoff},
		},
		bson.M{"$set": bson.M{
			"status":    string(domain.StatusExpired),
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("expire posts: %w", err)
	}
	return res.ModifiedCount, nil
}

// EnsureIndexes creates the lookup indexes and the text index backing search.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "location", Value: "text"},
		}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
