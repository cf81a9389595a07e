package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Admins   *mongo.Collection
	Blogs    *mongo.Collection
	Teams    *mongo.Collection
	Carousel *mongo.Collection
	Contacts *mongo.Collection
	Comments *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Admins:   db.Collection("admins"),
		Blogs:    db.Collection("blogs"),
		Teams:    db.Collection("teams"),
		Carousel: db.Collection("carousel_items"),
		Contacts: db.Collection("contact_messages"),
		Comments: db.Collection("comments"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.Admins.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Blogs.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			// Backs the `search` query parameter on the public blog list.
			Keys: bson.D{{Key: "title", Value: "text"}, {Key: "content", Value: "text"}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Comments.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "blogId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "parentId", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	return nil
}
