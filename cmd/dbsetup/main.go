package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/peakform/backend/internal/db"

	_ "github.com/lib/pq"
)

// dbsetup creates the analytics schema on a fresh postgres instance.
// Meant for local development and throwaway environments, not for
// production migrations.
func main() {
	host := flag.String("host", "localhost", "postgres host")
	port := flag.String("port", "5432", "postgres port")
	user := flag.String("user", "postgres", "postgres user")
	password := flag.String("password", "postgres", "postgres password")
	dbName := flag.String("db", "peakform", "database name")
	flag.Parse()

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		*user, *password, *host, *port, *dbName,
	)

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open db conn: %s", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		log.Fatalf("ping db: %s", err)
	}

	if _, err := conn.Exec(db.InitSQL); err != nil {
		log.Fatalf("run init script: %s", err)
	}

	log.Printf("schema created on %s:%s/%s", *host, *port, *dbName)
}
