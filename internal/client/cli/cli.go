package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/riffle/internal/client/api"
	"github.com/iudanet/riffle/internal/client/connectivity"
	"github.com/iudanet/riffle/internal/client/data"
	"github.com/iudanet/riffle/internal/client/iocli"
	"github.com/iudanet/riffle/internal/client/notify"
	"github.com/iudanet/riffle/internal/client/storage"
	"github.com/iudanet/riffle/internal/client/sync"
	"github.com/iudanet/riffle/internal/client/trigger"
)

type Cli struct {
	apiClient   api.ClientAPI
	authStore   storage.AuthStorage
	dataService *data.Service
	syncService sync.Service
	observer    *connectivity.Observer
	trigger     *trigger.Trigger
	broadcaster *notify.Broadcaster
	io          iocli.IO
}

func New(
	apiClient api.ClientAPI,
	authStore storage.AuthStorage,
	dataService *data.Service,
	syncService sync.Service,
	observer *connectivity.Observer,
	trig *trigger.Trigger,
	broadcaster *notify.Broadcaster,
	io iocli.IO,
) *Cli {
	return &Cli{
		apiClient:   apiClient,
		authStore:   authStore,
		dataService: dataService,
		syncService: syncService,
		observer:    observer,
		trigger:     trig,
		broadcaster: broadcaster,
		io:          io,
	}
}

// currentSession возвращает сохраненную сессию или понятную ошибку
func (c *Cli) currentSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.authStore.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'riffle login' first")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

// accessToken возвращает валидный access token сохраненной сессии
func (c *Cli) accessToken(ctx context.Context) (string, error) {
	session, err := c.currentSession(ctx)
	if err != nil {
		return "", err
	}
	if time.Now().Unix() >= session.ExpiresAt {
		return "", fmt.Errorf("access token has expired. Please login again")
	}
	return session.AccessToken, nil
}

func PrintUsage() {
	fmt.Println("Riffle Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  riffle [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version       Show version information")
	fmt.Println("  --server URL    Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH       Path to local database (default: riffle-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                    Register new account")
	fmt.Println("  login                       Login to server")
	fmt.Println("  logout                      Delete the local session")
	fmt.Println("  status                      Show session, connectivity and pending queue")
	fmt.Println("  profile [set]               Show or update your profile")
	fmt.Println("  add                         Add a journal entry (queued when offline)")
	fmt.Println("  list [public]               List your entries or the community feed")
	fmt.Println("  sync                        Upload queued entries now")
	fmt.Println("  watch                       Run background sync until interrupted")
	fmt.Println("  conditions                  Fishing conditions for a location")
	fmt.Println("  hatch <report|list>         Community hatch reports")
	fmt.Println("  rivers <save|list|delete|sites>  Saved rivers and USGS site search")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  riffle register")
	fmt.Println("  riffle login")
	fmt.Println("  riffle add")
	fmt.Println("  riffle list")
	fmt.Println("  riffle sync")
	fmt.Println("  riffle conditions --lat 39.74 --lon -104.99 --site 06701900")
	fmt.Println("  riffle hatch list --river \"South Platte\" --days 14")
	fmt.Println("  riffle rivers sites --lat 39.74 --lon -104.99")
	fmt.Println("  riffle --server https://riffle.example.com login")
}
