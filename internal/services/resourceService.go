package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/healthhub/portal-api/internal/db"
	"github.com/healthhub/portal-api/internal/models"
)

// TopSuppliesLimit is the number of supplies returned by TopSupplies.
const TopSuppliesLimit = 6

// ResourceService performs the single-collection operations behind the
// resource routes. Each method issues exactly one database command.
type ResourceService struct {
	store *db.Store
}

func NewResourceService(store *db.Store) *ResourceService {
	return &ResourceService{store: store}
}

// List returns every document of a collection.
func (s *ResourceService) List(ctx context.Context, collection string) ([]models.Document, error) {
	cursor, err := s.store.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %s: %w", collection, err)
	}
	return decodeAll(ctx, cursor, collection)
}

// TopSupplies returns the supplies with the largest amount, highest first.
func (s *ResourceService) TopSupplies(ctx context.Context) ([]models.Document, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "amount", Value: -1}}).
		SetLimit(TopSuppliesLimit)

	cursor, err := s.store.Collection(db.Supplies).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve top supplies: %w", err)
	}
	return decodeAll(ctx, cursor, db.Supplies)
}

// Insert stores doc verbatim.
func (s *ResourceService) Insert(ctx context.Context, collection string, doc models.Document) (models.InsertResult, error) {
	if doc == nil {
		doc = models.Document{}
	}
	res, err := s.store.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return models.NewInsertResult(res), nil
}

// UpdateSupply overwrites title, category and amount of one supply. An id
// that matches nothing is not an error; the result reports zero matches.
func (s *ResourceService) UpdateSupply(ctx context.Context, id string, update models.SupplyUpdate) (models.UpdateResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	res, err := s.store.Collection(db.Supplies).UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": update},
	)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to update supply: %w", err)
	}
	return models.NewUpdateResult(res), nil
}

// DeleteSupply removes one supply by id.
func (s *ResourceService) DeleteSupply(ctx context.Context, id string) (models.DeleteResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := s.store.Collection(db.Supplies).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete supply: %w", err)
	}
	return models.NewDeleteResult(res), nil
}

// AddComment appends comment to the end of a community post's comments.
func (s *ResourceService) AddComment(ctx context.Context, postID string, comment models.Document) (models.UpdateResult, error) {
	objID, err := parseID(postID)
	if err != nil {
		return models.UpdateResult{}, err
	}
	if comment == nil {
		comment = models.Document{}
	}

	res, err := s.store.Collection(db.CommunityPosts).UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to add comment: %w", err)
	}
	return models.NewUpdateResult(res), nil
}

func parseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return objID, nil
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor, collection string) ([]models.Document, error) {
	defer cursor.Close(ctx)

	docs := make([]models.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", collection, err)
	}
	return docs, nil
}
