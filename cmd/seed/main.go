package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/boothlabs/boothtrack-backend/internal/catalog"
	"github.com/boothlabs/boothtrack-backend/pkg/config"
	"github.com/boothlabs/boothtrack-backend/pkg/logger"
	"github.com/boothlabs/boothtrack-backend/pkg/mongodb"
)

// Demo catalog for stall setups. The API never writes products, so a fresh
// database needs this seed (or an equivalent external import) before the
// frontend has anything to show.
var demoProducts = []catalog.Product{
	{
		Name:        "Smart Home Hub",
		Description: "Control all your smart devices from one central hub with voice commands and mobile app integration.",
		Category:    "Electronics",
		Price:       299.99,
		Stock:       25,
		ImageURL:    "/placeholder.svg?height=300&width=300",
		Features: []string{
			"Voice control with built-in AI assistant",
			"Compatible with 1000+ smart devices",
			"Advanced security encryption",
			"Mobile app for remote control",
		},
	},
	{
		Name:        "Wireless Earbuds Pro",
		Description: "Premium sound quality with active noise cancellation and 24-hour battery life.",
		Category:    "Audio",
		Price:       199.99,
		Stock:       40,
		ImageURL:    "/placeholder.svg?height=300&width=300",
		Features: []string{
			"Active noise cancellation (ANC)",
			"Transparency mode",
			"Touch controls",
			"Fast charging (15min = 3h playback)",
		},
	},
	{
		Name:        "Fitness Tracker Elite",
		Description: "Advanced health monitoring with heart rate, sleep tracking, and GPS functionality.",
		Category:    "Wearables",
		Price:       249.99,
		Stock:       30,
		ImageURL:    "/placeholder.svg?height=300&width=300",
		Features: []string{
			"24/7 heart rate monitoring",
			"Blood oxygen (SpO2) tracking",
			"Advanced sleep analysis",
			"Built-in GPS",
		},
	},
	{
		Name:        "Smart Watch Series X",
		Description: "Next-generation smartwatch with health features, payments, and cellular connectivity.",
		Category:    "Wearables",
		Price:       399.99,
		Stock:       20,
		ImageURL:    "/placeholder.svg?height=300&width=300",
		Features: []string{
			"ECG and blood oxygen monitoring",
			"Cellular connectivity",
			"Contactless payments",
			"Always-on display",
		},
	},
	{
		Name:        "Portable Charger Max",
		Description: "High-capacity 20,000mAh power bank with fast charging for all your devices.",
		Category:    "Accessories",
		Price:       79.99,
		Stock:       60,
		ImageURL:    "/placeholder.svg?height=300&width=300",
		Features: []string{
			"20,000mAh high capacity",
			"Fast charging technology",
			"Multiple device charging",
			"Universal compatibility",
		},
	},
	{
		Name:        "Bluetooth Speaker Pro",
		Description: "Premium portable speaker with 360° sound, waterproof design, and 12-hour battery.",
		Category:    "Audio",
		Price:       149.99,
		Stock:       35,
		ImageURL:    "/placeholder.svg?height=300&width=300",
		Features: []string{
			"360-degree surround sound",
			"IPX7 waterproof rating",
			"12-hour battery life",
			"Wireless stereo pairing",
		},
	},
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	force := flag.Bool("force", false, "seed even when the products collection is not empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	client, err := mongodb.New(ctx, cfg.Mongo, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap mongodb", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(ctx); err != nil {
			logg.Error(ctx, "error closing mongodb", err)
		}
	}()

	col := client.Collection("products")

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		logg.Error(ctx, "failed to count products", err)
		os.Exit(1)
	}
	if count > 0 && !*force {
		ctx = logg.WithField(ctx, "existing", count)
		logg.Info(ctx, "products collection not empty, skipping seed (use -force to override)")
		return
	}

	docs := make([]any, 0, len(demoProducts))
	for _, p := range demoProducts {
		docs = append(docs, p)
	}
	result, err := col.InsertMany(ctx, docs)
	if err != nil {
		logg.Error(ctx, "failed to insert demo products", err)
		os.Exit(1)
	}

	ctx = logg.WithField(ctx, "inserted", len(result.InsertedIDs))
	logg.Info(ctx, "demo catalog seeded")
}
