package blog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, item Blog) error
	FindBySlug(ctx context.Context, slug string) (Blog, error)
	Update(ctx context.Context, id string, set bson.M) (Blog, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ListFilter, limit, skip int64) ([]Blog, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item Blog) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) FindBySlug(ctx context.Context, slug string) (Blog, error) {
	var item Blog
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&item); err != nil {
		return Blog{}, err
	}
	return item, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set}

	var updated Blog
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Blog{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) List(ctx context.Context, filter ListFilter, limit, skip int64) ([]Blog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cursor, err := r.col.Find(ctx, buildQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Blog, 0)
	for cursor.Next(ctx) {
		var item Blog
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, buildQuery(filter))
}

func buildQuery(filter ListFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}
	return query
}
