package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/iudanet/riffle/internal/client/api"
	"github.com/iudanet/riffle/internal/client/cli"
	"github.com/iudanet/riffle/internal/client/connectivity"
	"github.com/iudanet/riffle/internal/client/data"
	"github.com/iudanet/riffle/internal/client/iocli"
	"github.com/iudanet/riffle/internal/client/notify"
	"github.com/iudanet/riffle/internal/client/storage/boltdb"
	syncsvc "github.com/iudanet/riffle/internal/client/sync"
	"github.com/iudanet/riffle/internal/client/trigger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	pingInterval = 30 * time.Second
	syncInterval = 15 * time.Minute
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "riffle-client.db", "Path to local database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	// Клиентский логгер пишет в stderr, чтобы не мешаться в вывод команд
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(*serverURL)

	// Наблюдатель связи: API клиент служит prober'ом через /health
	observer := connectivity.NewObserver(apiClient, pingInterval, logger)

	// Движок синхронизации поверх локальной очереди
	syncService := syncsvc.NewService(apiClient, boltStorage, logger)

	// Фасад журнала: прямая отправка online, очередь offline
	dataService := data.NewService(apiClient, boltStorage, boltStorage, observer, logger)

	// Фоновый триггер будит синхронизацию при восстановлении связи
	// и по интервалу. Токен берется из сохраненной сессии.
	broadcaster := notify.NewBroadcaster()
	tokenFn := func(ctx context.Context) (string, error) {
		session, err := boltStorage.GetSession(ctx)
		if err != nil {
			return "", err
		}
		if time.Now().Unix() >= session.ExpiresAt {
			return "", fmt.Errorf("access token expired")
		}
		return session.AccessToken, nil
	}
	trig := trigger.New(trigger.TaskSyncJournal, syncService, observer, broadcaster, tokenFn, syncInterval, logger)

	c := cli.New(apiClient, boltStorage, dataService, syncService, observer, trig, broadcaster, iocli.NewStdio())
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("Riffle Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
