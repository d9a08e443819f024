package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

const sqlitePadrao = "database.db"

// GetDB escolhe o backend pelo ambiente: com DB_HOST definido usa
// Postgres; caso contrário usa o arquivo SQLite local (DB_PATH,
// default "database.db").
func GetDB() (*gorm.DB, error) {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = sqlitePadrao
		}
		return ConnectSQLite(path)
	}

	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432 // Default PostgreSQL port
	}
	dbName := os.Getenv("DB_NAME")
	return ConnectPostgres(uint(port), dbHost, dbName)
}
