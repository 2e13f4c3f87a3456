package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/GustavoEngSoft/CRM-Family/config"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

// migrate aplica o schema em sql/ com goose.
//
//	go run ./cmd/migrate                 # up
//	go run ./cmd/migrate -dir ./sql status
//	go run ./cmd/migrate down-to 0
func main() {
	dir := flag.String("dir", "./sql", "diretório com as migrações goose")
	flag.Parse()

	envErr := godotenv.Load()
	cfg, cfgErr := config.LoadDatabase()
	level := "info"
	if cfg != nil {
		level = cfg.LogLevel
	}
	appLog := logger.NewLogger(level, "crm-family-migrate")
	if envErr != nil {
		appLog.Warn("Arquivo .env não encontrado, usando apenas variáveis de ambiente.", nil)
	}
	if cfgErr != nil {
		appLog.Fatal("Configuração do banco inválida.", cfgErr)
	}

	command, args := "up", []string(nil)
	if rest := flag.Args(); len(rest) > 0 {
		command, args = rest[0], rest[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg.DatabaseURL, *dir, command, args, appLog); err != nil {
		appLog.Fatal("Migração falhou.", err)
	}
	appLog.Info("Migração concluída.", map[string]interface{}{"command": command, "dir": *dir})
}

func run(ctx context.Context, dsn, dir, command string, args []string, log logger.Logger) error {
	db, err := database.NewPostgresDB(dsn, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	log.Info("Executando goose.", map[string]interface{}{"command": command, "args": args})
	return goose.RunContext(ctx, command, db.SQL(), dir, args...)
}
