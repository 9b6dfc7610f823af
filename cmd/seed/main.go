package main

import (
	"fmt"
	"log"

	"github.com/RoboMarket/robomarket-backend/config"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a local storefront_products table with demo robots
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application. In
// production storefront_products is a materialized view owned by the catalog
// pipeline; this tool stands up a plain table with the same shape for local
// development.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ROBOMARKET - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	createTable := `
		CREATE TABLE IF NOT EXISTS storefront_products (
			id                BIGINT PRIMARY KEY,
			name              TEXT NOT NULL,
			description       TEXT NOT NULL DEFAULT '',
			brand             TEXT,
			categories        JSONB NOT NULL DEFAULT '[]',
			best_price        NUMERIC,
			rating_average    DOUBLE PRECISION NOT NULL DEFAULT 0,
			rating_count      INT NOT NULL DEFAULT 0,
			featured_position INT,
			created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if err := config.CatalogGorm.Exec(createTable).Error; err != nil {
		log.Fatalf("Failed to create storefront_products: %v", err)
	}
	log.Println("✓ storefront_products table ready")

	seed := `
		INSERT INTO storefront_products
			(id, name, description, brand, categories, best_price, rating_average, rating_count, featured_position, created_at)
		VALUES
			(1,  'Atlas Home Companion',   'General-purpose home assistant robot with voice control',  'RoboTech',   '["companion","home"]',    1299.00, 4.6, 182, 1,    now() - interval '30 days'),
			(2,  'SweepMaster 3000',       'Autonomous floor cleaning robot with LIDAR mapping',        'CleanCo',    '["home","cleaning"]',     449.99,  4.2, 957, 2,    now() - interval '90 days'),
			(3,  'GardenBot Mini',         'Compact weeding and watering robot for small gardens',      'AgriDroid',  '["garden"]',              699.00,  3.9, 64,  NULL, now() - interval '12 days'),
			(4,  'SecuriBot Sentinel',     'Patrolling security robot with night vision cameras',       'RoboTech',   '["security"]',            2499.00, 4.8, 41,  3,    now() - interval '200 days'),
			(5,  'ChefArm Pro',            'Robotic kitchen arm that preps and stirs',                  'KitchenIQ',  '["kitchen","home"]',      1899.50, 4.1, 233, NULL, now() - interval '45 days'),
			(6,  'EduBot Scholar',         'Programmable teaching robot for kids',                      'LearnLabs',  '["education","companion"]', 349.00, 4.4, 512, NULL, now() - interval '7 days'),
			(7,  'CargoMule X',            'Heavy-duty delivery robot, 80kg payload',                   'HaulTech',   '["logistics"]',           5999.00, 4.0, 18,  NULL, now() - interval '300 days'),
			(8,  'PetPal Rover',           'Interactive robot companion for pets home alone',           'RoboTech',   '["companion","pets"]',    279.00,  3.7, 801, NULL, now() - interval '60 days'),
			(9,  'WindowWiz',              'Window cleaning robot with safety tether',                  'CleanCo',    '["home","cleaning"]',     329.00,  4.3, 147, NULL, now() - interval '21 days'),
			(10, 'LabMate Analyst',        'Benchtop lab automation robot',                             'SciWorks',   '["lab"]',                 NULL,    4.9, 12,  NULL, now() - interval '400 days')
		ON CONFLICT (id) DO NOTHING
	`
	if err := config.CatalogGorm.Exec(seed).Error; err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the API server: go run main.go")
	fmt.Println("2. Browse products at GET /api/products")
	fmt.Println("3. Try filters: GET /api/products?brand=RoboTech&sort_by=rating")
	fmt.Println()
}
