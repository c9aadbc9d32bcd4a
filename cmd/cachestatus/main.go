package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/uptrace/bun/driver/pgdriver"
)

func main() {
	ctx := context.Background()
	fmt.Println("Snapshot Cache Connection Status:")
	fmt.Println("=================================")

	_ = godotenv.Load("labhub.env")

	dsn := os.Getenv("LABHUB_POSTGRES_URL")
	if dsn == "" {
		host := getenv("POSTGRES_HOST", "localhost")
		port := getenv("POSTGRES_PORT", "5432")
		dbName := getenv("POSTGRES_DB", "labhub")
		user := getenv("POSTGRES_USER", "postgres")
		password := getenv("POSTGRES_PASSWORD", "postgres")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
	}

	fmt.Printf("Connection: %s\n\n", dsn)
	if err := testConnection(ctx, dsn); err != nil {
		fmt.Printf("Database connection failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Database connection successful")
}

func testConnection(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgdriver", dsn)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Printf("warning: closing connection: %v", cerr)
		}
	}()

	timeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.PingContext(timeout)
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
