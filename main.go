package main

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/c13-isotope/landingpage/config"
	"github.com/c13-isotope/landingpage/database"
	"github.com/c13-isotope/landingpage/routes"
	"github.com/c13-isotope/landingpage/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.AdminKey == "" {
		log.Println("WARNING: ADMIN_KEY is not set; admin endpoints will return 500")
	}

	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	utils.SetDB(db)
	log.Println("Connected to MongoDB")

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		// Text search degrades to the regex fallback without indexes,
		// so boot continues.
		utils.LogError(err, "ensure indexes")
		log.Printf("failed to ensure indexes: %v", err)
	} else {
		log.Println("Indexes ensured")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// Limiter and cache fail open without Redis.
		log.Printf("redis unavailable (%v); rate limiting and caching disabled", err)
	} else {
		utils.SetRedis(rdb)
		log.Println("Connected to Redis")
	}

	r := routes.SetupRouter(cfg)

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
