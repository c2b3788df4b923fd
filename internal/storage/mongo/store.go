// Package mongo is the MongoDB backend: accounts live in the users
// collection, generated documents in diets and meals. Field names match the
// data written by the rest of the health_ai system.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/dashboard"
)

const (
	usersCollection = "users"
	dietsCollection = "diets"
	mealsCollection = "meals"
)

type userDoc struct {
	ID               primitive.ObjectID     `bson:"_id,omitempty"`
	Username         string                 `bson:"username"`
	Password         string                 `bson:"password"`
	CreatedAt        time.Time              `bson:"created_at"`
	ProfileCompleted bool                   `bson:"profile_completed"`
	PersonalInfo     *accounts.PersonalInfo `bson:"personal_info,omitempty"`
}

func (d *userDoc) account() *accounts.Account {
	return &accounts.Account{
		ID:               d.ID.Hex(),
		Email:            d.Username,
		PasswordHash:     d.Password,
		CreatedAt:        d.CreatedAt.UTC(),
		ProfileCompleted: d.ProfileCompleted,
		PersonalInfo:     d.PersonalInfo,
	}
}

type dietDoc struct {
	AIPlan struct {
		ResponseType string             `bson:"response_type"`
		DietPlan     dashboard.DietPlan `bson:"diet_plan"`
	} `bson:"AI_plan"`
}

type Store struct {
	client *mongodriver.Client
	users  *mongodriver.Collection
	diets  *mongodriver.Collection
	meals  *mongodriver.Collection
}

// Connect dials uri and verifies the deployment with a ping.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongodriver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	s := NewStore(client.Database(database))
	s.client = client
	return s, nil
}

// NewStore binds the store to an already connected database.
func NewStore(db *mongodriver.Database) *Store {
	return &Store{
		users: db.Collection(usersCollection),
		diets: db.Collection(dietsCollection),
		meals: db.Collection(mealsCollection),
	}
}

// EnsureIndexes creates the unique username index that backs
// accounts.ErrAlreadyExists, and the user_id lookups on documents.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if _, err := s.users.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("create users index: %w", err)
	}
	for _, coll := range []*mongodriver.Collection{s.diets, s.meals} {
		if _, err := coll.Indexes().CreateOne(ctx, mongodriver.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		}); err != nil {
			return fmt.Errorf("create %s index: %w", coll.Name(), err)
		}
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Store) findUser(ctx context.Context, filter bson.D) (*accounts.Account, error) {
	var doc userDoc
	if err := s.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, accounts.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.account(), nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	return s.findUser(ctx, bson.D{{Key: "username", Value: email}})
}

func (s *Store) FindByID(ctx context.Context, id string) (*accounts.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, accounts.ErrNotFound
	}
	return s.findUser(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (s *Store) Create(ctx context.Context, a *accounts.Account) error {
	doc := userDoc{
		Username:         a.Email,
		Password:         a.PasswordHash,
		CreatedAt:        a.CreatedAt,
		ProfileCompleted: a.ProfileCompleted,
		PersonalInfo:     a.PersonalInfo,
	}
	res, err := s.users.InsertOne(ctx, doc)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return accounts.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	a.ID = oid.Hex()
	return nil
}

func (s *Store) CompleteProfile(ctx context.Context, email string, info accounts.PersonalInfo) error {
	res, err := s.users.UpdateOne(ctx,
		bson.D{{Key: "username", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "personal_info", Value: info},
			{Key: "profile_completed", Value: true},
		}}},
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return accounts.ErrNotFound
	}
	return nil
}

func (s *Store) Profile(ctx context.Context, userID string) (*dashboard.Profile, error) {
	a, err := s.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, dashboard.ErrNotFound
		}
		return nil, err
	}
	return dashboard.ProfileFromAccount(a), nil
}

// DietPlan returns the newest diet plan document for userID.
func (s *Store) DietPlan(ctx context.Context, userID string) (*dashboard.DietPlan, error) {
	var doc dietDoc
	err := s.diets.FindOne(ctx, bson.D{
		{Key: "user_id", Value: userID},
		{Key: "AI_plan.response_type", Value: dashboard.DietPlanResponseType},
	}, options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, dashboard.ErrNotFound
		}
		return nil, fmt.Errorf("find diet plan: %w", err)
	}
	plan := doc.AIPlan.DietPlan
	if err := dashboard.Validate(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *Store) MealLog(ctx context.Context, userID string) (*dashboard.MealLog, error) {
	var log dashboard.MealLog
	err := s.meals.FindOne(ctx, bson.D{{Key: "user_id", Value: userID}}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, dashboard.ErrNotFound
		}
		return nil, fmt.Errorf("find meal log: %w", err)
	}
	if err := dashboard.Validate(&log); err != nil {
		return nil, err
	}
	return &log, nil
}
