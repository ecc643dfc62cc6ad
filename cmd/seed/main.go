// Command main runs the database seeder for the community feed.
package main

import (
	"flag"
	"log"

	"commune/internal/config"
	"commune/internal/database"
	"commune/internal/seed"
)

func main() {
	numPosts := flag.Int("posts", 12, "Number of posts to create")
	shouldClean := flag.Bool("clean", false, "Clean content tables before seeding")
	randSeed := flag.Int64("seed", 0, "Random seed for reproducible runs (0 = time-based)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
		RandSeed:    *randSeed,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d posts with comments and likes", *numPosts)
}
