package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	ProjectsCollection = "projects"
	SkillsCollection   = "skills"
	ContactsCollection = "contacts"
	UsersCollection    = "users"
)

type Options struct {
	URI       string
	Database  string
	ConnectTO time.Duration
	PingTO    time.Duration
}

// Open connects, pings the primary and returns the database handle.
func Open(ctx context.Context, opt Options) (*mongo.Client, *mongo.Database, error) {
	if opt.URI == "" {
		return nil, nil, fmt.Errorf("MONGODB_URI is not set")
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 10 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(opt.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(opt.Database), nil
}

// Pinger adapts a client to the health check.
type Pinger struct {
	Client *mongo.Client
}

func (p Pinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}
