package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clearview/internal/clearing/models"
	"clearview/internal/clearing/ports"
	"clearview/internal/clearing/publisher"
	"clearview/internal/clearing/store/event"
	"clearview/internal/clearing/store/license"
	"clearview/internal/platform/config"
	"clearview/internal/platform/postgres"
	"clearview/internal/platform/redis"
	id "clearview/pkg/domain"
)

// backend is the configured event store plus the optional Kafka publisher.
type backend struct {
	log       ports.EventLog
	db        *sql.DB
	publisher *publisher.Publisher
	closers   []func() error
}

func (b *backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i]())
	}
	return errors.Join(errs...)
}

// openBackend connects the event store selected by cfg. The memory store is
// refused because nothing would outlive the command.
func (a *app) openBackend(ctx context.Context) (*backend, error) {
	b := &backend{}
	switch a.cfg.EventStore {
	case config.StorePostgres:
		db, err := postgres.Open(ctx, a.cfg.Postgres)
		if err != nil {
			return nil, err
		}
		b.db = db
		b.log = event.NewPostgres(db)
		b.closers = append(b.closers, db.Close)
	case config.StoreRedis:
		client, err := redis.New(ctx, a.cfg.Redis)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, usageError{errors.New("redis url is not configured")}
		}
		b.log = event.NewRedis(client.Client)
		b.closers = append(b.closers, client.Close)
	default:
		return nil, usageError{fmt.Errorf("event store %q does not persist; use postgres or redis", a.cfg.EventStore)}
	}

	if len(a.cfg.Kafka.Brokers) > 0 {
		pub, err := publisher.New(a.cfg.Kafka.Brokers, publisher.WithTopic(a.cfg.Kafka.Topic))
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		b.publisher = pub
		b.closers = append(b.closers, pub.Close)
	}
	return b, nil
}

// licenseCatalog returns the PostgreSQL catalog when the backend has a
// database, otherwise the catalog loaded from a YAML file of
// {id, short_name} entries.
func (a *app) licenseCatalog(b *backend, path string) (ports.LicenseCatalog, error) {
	if path == "" && b.db != nil {
		return license.NewPostgres(b.db), nil
	}
	if path == "" {
		return nil, usageError{errors.New("--catalog is required unless the event store is postgres")}
	}
	var entries []struct {
		ID        int64  `yaml:"id"`
		ShortName string `yaml:"short_name"`
	}
	if err := a.readYAML(path, &entries); err != nil {
		return nil, err
	}
	catalog := license.NewInMemory()
	for _, e := range entries {
		ref := models.LicenseRef{ID: id.LicenseID(e.ID), ShortName: e.ShortName}
		if err := catalog.Save(context.Background(), ref); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}
