package comments

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, item Comment) error
	ListByBlog(ctx context.Context, blogID string) ([]Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByParent(ctx context.Context, parentID string) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item Comment) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) ListByBlog(ctx context.Context, blogID string) ([]Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{"blogId": blogID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Comment, 0)
	for cursor.Next(ctx) {
		var item Comment
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

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) DeleteByParent(ctx context.Context, parentID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"parentId": parentID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
