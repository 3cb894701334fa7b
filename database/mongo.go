package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Mongo is a Database backed by a MongoDB server.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri and pings the server before returning.
func Connect(ctx context.Context, uri, name string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.WithField("database", name).Info("MongoDB connected successfully")
	return &Mongo{client: client, db: client.Database(name)}, nil
}

func (m *Mongo) Driver(name string) Driver {
	return &mongoDriver{coll: m.db.Collection(name)}
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

type mongoDriver struct {
	coll *mongo.Collection
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func (d *mongoDriver) Find(ctx context.Context, sort *Sort) ([]bson.Raw, error) {
	opts := options.Find()
	if sort != nil {
		dir := 1
		if sort.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: sort.Field, Value: dir}})
	}

	cursor, err := d.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", d.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []bson.Raw{}
	for cursor.Next(ctx) {
		// Current is reused by the cursor on the next call.
		docs = append(docs, append(bson.Raw(nil), cursor.Current...))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", d.coll.Name(), err)
	}
	return docs, nil
}

func (d *mongoDriver) FindOne(ctx context.Context, id string) (bson.Raw, error) {
	raw, err := d.coll.FindOne(ctx, byID(id)).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %s: %w", d.coll.Name(), id, err)
	}
	return raw, nil
}

func (d *mongoDriver) Insert(ctx context.Context, docs ...bson.Raw) error {
	if len(docs) == 0 {
		return nil
	}
	if _, err := d.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert %s: %w", d.coll.Name(), err)
	}
	return nil
}

func (d *mongoDriver) Update(ctx context.Context, id string, fields bson.D) error {
	result, err := d.coll.UpdateOne(ctx, byID(id), bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return fmt.Errorf("update %s %s: %w", d.coll.Name(), id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *mongoDriver) Replace(ctx context.Context, id string, doc bson.Raw) error {
	_, err := d.coll.ReplaceOne(ctx, byID(id), doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace %s %s: %w", d.coll.Name(), id, err)
	}
	return nil
}

func (d *mongoDriver) Delete(ctx context.Context, id string) error {
	result, err := d.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", d.coll.Name(), id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *mongoDriver) Count(ctx context.Context) (int64, error) {
	n, err := d.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", d.coll.Name(), err)
	}
	return n, nil
}

func (d *mongoDriver) Distinct(ctx context.Context, field string) ([]string, error) {
	values := []string{}
	if err := d.coll.Distinct(ctx, field, bson.D{}).Decode(&values); err != nil {
		return nil, fmt.Errorf("distinct %s.%s: %w", d.coll.Name(), field, err)
	}
	return values, nil
}
