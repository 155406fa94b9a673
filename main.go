package main

import (
	"context"

	"github.com/cppla/coauthors/config"
	"github.com/cppla/coauthors/models"
	"github.com/cppla/coauthors/routes"
	"github.com/cppla/coauthors/store"
	"github.com/cppla/coauthors/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	db := config.InitDatabase(
		&models.Term{}, &models.TermTaxonomy{}, &models.TermRelationship{},
		&models.Post{}, &models.GuestAuthor{}, &models.User{},
	)

	rc := utils.NewRedis(cfg)
	if rc != nil {
		defer rc.Close()
		// Entries written by an older build may not decode into the current shapes.
		store.NewCachedAuthorStore(nil, utils.NewCache(rc, 0)).Purge(context.Background())
	}

	svc := routes.NewService(cfg, db, rc, nil)
	r := routes.SetupRouter(cfg, svc)

	utils.Sugar.Infof("Starting co-authors API on port %s under %s/%s", cfg.AppPort, cfg.APIBase(), cfg.Namespace)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
