package main

import (
	"context"
	"log"
	"strings"
	"time"

	"lexsite-backend/internal/auth"
	"lexsite-backend/internal/config"
	"lexsite-backend/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds the initial admin account from ADMIN_EMAIL / ADMIN_PASSWORD. Safe to
// run repeatedly; an existing account gets its password refreshed.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatal(err)
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	now := time.Now().In(cfg.Timezone)
	update := bson.M{
		"$set": bson.M{
			"password":  hash,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"_id":          primitive.NewObjectID().Hex(),
			"email":        email,
			"refreshToken": "",
			"createdAt":    now,
		},
	}

	if _, err := cols.Admins.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true)); err != nil {
		log.Fatalf("seed admin error for %s: %v", email, err)
	}

	log.Println("seed completed")
}
