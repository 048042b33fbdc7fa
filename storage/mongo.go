package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"todoapi/database"
	"todoapi/models"
)

// MongoTodoStore keeps todos in a MongoDB collection with the integer
// sequence id as _id. The sequence is named after the collection so each
// collection counts independently.
type MongoTodoStore struct {
	coll *mongo.Collection
	seq  string
}

func NewMongoTodoStore(collectionName string) *MongoTodoStore {
	return &MongoTodoStore{coll: database.GetCollection(collectionName), seq: collectionName}
}

func (s *MongoTodoStore) Get(ctx context.Context, id int64) (*models.Todo, error) {
	var t models.Todo
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *MongoTodoStore) List(ctx context.Context) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *MongoTodoStore) Insert(ctx context.Context, t *models.Todo) error {
	id, err := database.NextSequence(ctx, s.seq)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	t.ID = id
	t.Created = now
	t.Updated = now
	_, err = s.coll.InsertOne(ctx, t)
	return err
}

func (s *MongoTodoStore) Update(ctx context.Context, t *models.Todo) error {
	t.Updated = time.Now().UTC()
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	return err
}

func (s *MongoTodoStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// MongoContactStore keeps contacts, also keyed by a sequence id.
type MongoContactStore struct {
	coll *mongo.Collection
	seq  string
}

func NewMongoContactStore(collectionName string) *MongoContactStore {
	return &MongoContactStore{coll: database.GetCollection(collectionName), seq: collectionName}
}

func (s *MongoContactStore) List(ctx context.Context) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *MongoContactStore) Insert(ctx context.Context, c *models.Contact) error {
	id, err := database.NextSequence(ctx, s.seq)
	if err != nil {
		return err
	}
	c.ID = id
	_, err = s.coll.InsertOne(ctx, c)
	return err
}

func (s *MongoContactStore) PhoneInUse(ctx context.Context, phone string) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"phone_number": phone})
	return n > 0, err
}

func (s *MongoContactStore) EmailInUse(ctx context.Context, email string) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"email": email})
	return n > 0, err
}
