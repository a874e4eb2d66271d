package bootstrap

import (
	"context"
	"fmt"
	"time"

	httpapi "github.com/SAI-CHANDHAN/My-portfolio/internal/api/http"
	authrepo "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/repository"
	contactrepo "github.com/SAI-CHANDHAN/My-portfolio/internal/contact/repository"
	projectrepo "github.com/SAI-CHANDHAN/My-portfolio/internal/projects/repository"
	skillrepo "github.com/SAI-CHANDHAN/My-portfolio/internal/skills/repository"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/mongodb"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage/postgres"

	"github.com/SAI-CHANDHAN/My-portfolio/config"
)

// Store groups the repositories of one backend.
type Store struct {
	Driver   string
	Projects projectrepo.ProjectRepository
	Skills   skillrepo.SkillRepository
	Messages contactrepo.MessageRepository
	Users    authrepo.UserRepository
	// Pinger is nil for the memory backend.
	Pinger httpapi.Pinger
	Close  func(ctx context.Context) error
}

// OpenStore connects the configured backend and makes sure its indexes or
// schema exist.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	switch cfg.Driver {
	case config.StoreMongo:
		client, db, err := mongodb.Open(ctx, mongodb.Options{
			URI:       cfg.MongoURI,
			Database:  cfg.MongoDatabase,
			ConnectTO: 10 * time.Second,
			PingTO:    2 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Store{
			Driver:   cfg.Driver,
			Projects: projectrepo.NewMongo(db),
			Skills:   skillrepo.NewMongo(db),
			Messages: contactrepo.NewMongo(db),
			Users:    authrepo.NewMongo(db),
			Pinger:   mongodb.Pinger{Client: client},
			Close:    client.Disconnect,
		}, nil

	case config.StorePostgres:
		pool, err := postgres.Open(ctx, postgres.Options{
			DSN:       cfg.PostgresDSN,
			ConnectTO: 5 * time.Second,
			PingTO:    2 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{
			Driver:   cfg.Driver,
			Projects: projectrepo.NewPostgres(pool),
			Skills:   skillrepo.NewPostgres(pool),
			Messages: contactrepo.NewPostgres(pool),
			Users:    authrepo.NewPostgres(pool),
			Pinger:   pool,
			Close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.StoreMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

// NewMemoryStore keeps everything in process. Data is lost on restart.
func NewMemoryStore() *Store {
	return &Store{
		Driver:   config.StoreMemory,
		Projects: projectrepo.NewMemory(),
		Skills:   skillrepo.NewMemory(),
		Messages: contactrepo.NewMemory(),
		Users:    authrepo.NewMemory(),
		Close:    func(context.Context) error { return nil },
	}
}
