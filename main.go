package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-catalog/apis"
	booksAPI "github.com/supakorn-kn/go-catalog/apis/books"
	kinematicsAPI "github.com/supakorn-kn/go-catalog/apis/kinematics"
	"github.com/supakorn-kn/go-catalog/catalog"
	"github.com/supakorn-kn/go-catalog/env"
	"github.com/supakorn-kn/go-catalog/kinematics"
	"github.com/supakorn-kn/go-catalog/models"
	booksModel "github.com/supakorn-kn/go-catalog/models/books"
	"github.com/supakorn-kn/go-catalog/mongodb"
)

func main() {

	config, err := env.GetEnv()
	if err != nil {
		slog.Error("Load config failed", "error", err)
		os.Exit(1)
	}

	if config.Log.Format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	c, err := loadCatalog(config.Catalog)
	if err != nil {
		slog.Error("Load catalog failed", "path", config.Catalog.Path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, storeName, closeStore, err := openStore(ctx, config, c)
	if err != nil {
		slog.Error("Create book store failed", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	slog.Info("Catalog ready", "store", storeName, "books", len(c.Books), "page_size", config.Catalog.PageSize)

	g := gin.Default()
	g.Use(apis.Metrics())

	apis.RegisterOperations(g)
	booksAPI.NewBooksAPI(store, storeName).Register(g)
	kinematicsAPI.NewKinematicsAPI(kinematics.DefaultMission()).Register(g.Group("api/kinematics"))

	if err := g.Run(config.Server.Address()); err != nil {
		slog.Error("Run server failed", "error", err)
	}
}

func loadCatalog(config env.CatalogConfig) (catalog.Catalog, error) {

	if config.Path == "" {
		return catalog.Default()
	}

	return catalog.LoadFile(config.Path)
}

// openStore serves the catalog from MongoDB when a URI is configured, from memory otherwise.
func openStore(ctx context.Context, config *env.Env, c catalog.Catalog) (models.BookStore, string, func(), error) {

	if !config.MongoDB.Enabled() {

		store, err := catalog.NewStore(c, config.Catalog.PageSize)
		if err != nil {
			return nil, "", nil, err
		}

		return store, "memory", func() {}, nil
	}

	conn, err := mongodb.InitConnection(ctx, config.MongoDB.URI, config.MongoDB.DB)
	if err != nil {
		return nil, "", nil, err
	}

	closeConn := func() {
		if err := conn.Disconnect(context.Background()); err != nil {
			slog.Error("Disconnect MongoDB failed", "error", err)
		}
	}

	model, err := booksModel.NewBooksModel(ctx, conn, c.Directory(), config.Catalog.PageSize)
	if err != nil {
		closeConn()
		return nil, "", nil, err
	}

	inserted, err := model.Seed(ctx, c.Books)
	if err != nil {
		closeConn()
		return nil, "", nil, err
	}
	slog.Info("Seeded MongoDB catalog", "db", config.MongoDB.DB, "inserted", inserted)

	return model, "mongodb", closeConn, nil
}
