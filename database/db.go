package database

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func SetupDatabase(
	dbBackend string,
	dbPath string,
	debug bool,
) *gorm.DB {
	var dialector gorm.Dialector

	switch dbBackend {
	case "sqlite":
		dialector = sqlite.Open(dbPath)
	case "postgres":
		// dbPath carries the DSN / DATABASE_URL here
		dialector = postgres.Open(dbPath)
	default:
		panic(fmt.Sprintf("Unsupported database backend: %s", dbBackend))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	stmt := &gorm.Statement{DB: db}
	if debug {
		for i, table := range Tables {
			stmt.Parse(table)
			log.Println(fmt.Sprintf("Dropping table (%v/%v): %v", i+1, len(Tables), stmt.Schema.Table))
			db.Migrator().DropTable(table)
		}
	}

	for i, table := range Tables {
		stmt.Parse(table)
		log.Println(fmt.Sprintf("Migrating table (%v/%v): %v", i+1, len(Tables), stmt.Schema.Table))
		if err := db.AutoMigrate(table); err != nil {
			panic(fmt.Sprintf("Failed to migrate table: %v", err))
		}
	}

	return db
}
