package main

import (
	"database/sql"
	_ "github.com/lib/pq"
	matbuddyFactory "github.com/matbuddy/go-matbuddy/internal/factories/matbuddy-factory"
	db "github.com/matbuddy/go-matbuddy/internal/services/datastore/postgresql/matbuddy/sqlc"
	"github.com/matbuddy/go-matbuddy/pkg/config/env"
	"log"
)

func main() {
	config, err := env.NewConfig()
	if err != nil {
		log.Fatalln("cannot load env variables:", err)
	}

	conn, err := sql.Open(config.DbDriver, config.DbSource)
	if err != nil {
		log.Fatalln("could not connect to database:", err)
	}

	store := db.NewStore(conn)
	server := matbuddyFactory.New(store)

	err = server.Start(config.ServerAddress)
	if err != nil {
		log.Fatalln("cannot start server:", err)
	}
}
