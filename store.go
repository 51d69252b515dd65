package main

import (
	"context"

	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/docstore"
	"github.com/llehouerou/showcase/internal/errmsg"
	"github.com/llehouerou/showcase/internal/store"
	"github.com/llehouerou/showcase/internal/templates"
)

// openStore opens the configured content store.
func openStore(ctx context.Context, c *config.Config) (content.Store, error) {
	db, err := c.GetDatabaseConfig()
	if err != nil {
		return nil, err
	}
	switch db.Driver {
	case config.DriverFirestore:
		s, err := docstore.Open(ctx, db.ProjectID, db.CollectionPrefix)
		if err != nil {
			return nil, errmsg.Wrap(errmsg.OpInitialize, err)
		}
		return s, nil
	default:
		s, err := store.Open(db.Path)
		if err != nil {
			return nil, errmsg.Wrap(errmsg.OpInitialize, err)
		}
		return s, nil
	}
}

// openService opens the store and wraps it in a content service. The caller
// closes the returned store.
func openService(ctx context.Context) (*content.Service, content.Store, error) {
	s, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return content.NewService(s, logger, templates.Populate), s, nil
}
