package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"transparencyhub/config"
	"transparencyhub/db"
	"transparencyhub/logger"
	"transparencyhub/models"
	"transparencyhub/services"

	"github.com/rs/zerolog"
)

type productFlags struct {
	name        string
	brand       string
	price       float64
	description string
	outOfStock  bool
}

// newProduct validates the flags and builds the product to insert.
func newProduct(f productFlags) (models.Product, error) {
	if f.name == "" {
		return models.Product{}, errors.New("name is required")
	}
	if f.price < 0 {
		return models.Product{}, errors.New("price must not be negative")
	}
	return models.Product{
		Name:        f.name,
		Brand:       f.brand,
		Price:       f.price,
		Description: f.description,
		InStock:     !f.outOfStock,
	}, nil
}

func main() {
	// Parse command line flags
	var f productFlags
	flag.StringVar(&f.name, "name", "", "Product name (required)")
	flag.StringVar(&f.brand, "brand", "", "Product brand")
	flag.Float64Var(&f.price, "price", 0, "Product price")
	flag.StringVar(&f.description, "description", "", "Product description")
	flag.BoolVar(&f.outOfStock, "out-of-stock", false, "Mark the product as out of stock")
	configPath := flag.String("config", "./config/config.yml", "Path to config file")
	flag.Parse()

	product, err := newProduct(f)
	if err != nil {
		fmt.Println("Error:", err)
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load config")
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: true})
	logger.SetGlobalLogger(log)

	if err := run(cfg, log, product); err != nil {
		log.Fatal().Err(err).Msg("Failed to add product")
	}
}

// run inserts the product and always disconnects before returning.
func run(cfg *config.Config, log zerolog.Logger, product models.Product) error {
	if cfg.Database.URI == "" {
		return errors.New("no database configured; set database.uri or MONGODB_URI")
	}

	// Connect to MongoDB
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		return err
	}
	defer func() {
		if err := db.DisconnectMongoDB(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := db.NewProductStore(db.MongoDatabase).Create(dbCtx, product)
	if err != nil {
		return err
	}

	// The score is informational only and is not stored with the product
	score := services.EstimateTransparency(created.Description, nil)

	fmt.Printf("Product added successfully\n")
	fmt.Printf("ID: %s\n", created.ID.Hex())
	fmt.Printf("Name: %s\n", created.Name)
	fmt.Printf("Brand: %s\n", created.Brand)
	fmt.Printf("Price: %.2f\n", created.Price)
	fmt.Printf("In stock: %t\n", created.InStock)
	fmt.Printf("Description transparency score: %d\n", score)
	return nil
}
