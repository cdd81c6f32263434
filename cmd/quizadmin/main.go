package main

import (
	"errors"
	"log/slog"
	"os"

	"schoolquiz_backend/internals/configs"
	database "schoolquiz_backend/internals/databases"
	"schoolquiz_backend/internals/helpers/slogcustom"
)

func main() {
	configs.LoadEnv()
	slogcustom.Install(os.Stdout, configs.GetEnv("LOG_LEVEL", "info"))

	driver := configs.GetEnv("DB_DRIVER", "postgres")
	db, err := database.Open(driver, database.DSNFromEnv(driver))
	errAndDie(err)
	defer database.Close(db)
	errAndDie(database.Ping(db))

	cli := commandLine{db: db, out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		if !errors.Is(err, errHelp) {
			slog.Error("quizadmin", "err", err)
		}
		database.Close(db)
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		slog.Error("quizadmin", "err", err)
		os.Exit(1)
	}
}
