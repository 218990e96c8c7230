package db

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/healthhub/portal-api/internal/utils"
)

// Collection names. They match the data already stored by the portal.
const (
	Users             = "users"
	Supplies          = "supplies"
	TopProviders      = "topProviders"
	Testimonials      = "testimonials"
	Donors            = "donors"
	VolunteeringPosts = "volunteeringPosts"
	Volunteers        = "volunteers"
	CommunityPosts    = "communityPosts"
)

const connectTimeout = 10 * time.Second

// ConnectMongoDB opens a client and verifies it with a ping.
func ConnectMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connection failed: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	log.Info("Connected to MongoDB")
	return client, nil
}

// Store exposes the named collections of one database.
type Store struct {
	db *mongo.Database
}

func NewStore(database *mongo.Database) *Store {
	return &Store{db: database}
}

// Collection returns a MongoDB collection by name
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// EnsureIndexes creates the unique email index on users and the amount index
// used by the top supplies query. Both builds run concurrently.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	results, errs := utils.RunParallelTasks(s.indexTasks(ctx))
	if err := utils.FirstError(errs); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	for _, name := range results {
		log.Debugf("index ready: %v", name)
	}
	return nil
}

func (s *Store) indexTasks(ctx context.Context) []utils.ParallelTask {
	return []utils.ParallelTask{
		func() (interface{}, error) {
			return s.Collection(Users).Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			})
		},
		func() (interface{}, error) {
			return s.Collection(Supplies).Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys: bson.D{{Key: "amount", Value: -1}},
			})
		},
	}
}
