package db

import (
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"
)

func InitDB(dbURL string) *sql.DB {
	db, err := sql.Open("mysql", dbURL)
	if err != nil {
		log.Fatal("Could not open database connection:", err)
	}

	err = db.Ping()
	if err != nil {
		log.Fatal("Database is not responding:", err)
	}

	log.Println("Connected to database")
	return db
}

func RunMigrations(db *sql.DB) {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			full_name VARCHAR(255),
			phone VARCHAR(50),
			email VARCHAR(255),
			login VARCHAR(100) UNIQUE,
			password VARCHAR(255),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS products (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			price DECIMAL(10,2) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id INT NOT NULL,
			delivery_address VARCHAR(500),
			status VARCHAR(100) DEFAULT 'новый',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_user_id (user_id),
			FOREIGN KEY (user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id INT AUTO_INCREMENT PRIMARY KEY,
			order_id INT NOT NULL,
			product_id INT NOT NULL,
			quantity INT NOT NULL,
			INDEX idx_order_id (order_id),
			FOREIGN KEY (product_id) REFERENCES products(id)
		);`,
	}

	for _, q := range queries {
		_, err := db.Exec(q)
		if err != nil {
			log.Fatal("Migration failed:", err)
		}
	}
	log.Println("Migrations complete")
}

// SeedProducts fills an empty catalog with demo rows. The API has no
// product-management endpoints, so a fresh database would otherwise
// serve an empty /products forever.
func SeedProducts(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []struct {
		name        string
		description string
		price       float64
	}{
		{"Молоко 1л", "Пастеризованное, 3.2%", 89.90},
		{"Хлеб бородинский", "Ржаной, 400г", 54.50},
		{"Яблоки, кг", "Сезонные", 129.00},
		{"Сыр российский, 300г", "Полутвёрдый", 289.00},
		{"Гречка, 900г", "Ядрица высший сорт", 109.90},
	}

	for _, p := range demo {
		_, err := db.Exec(
			"INSERT INTO products (name, description, price) VALUES (?, ?, ?)",
			p.name, p.description, p.price,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
