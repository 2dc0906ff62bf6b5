package main

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/admin"
	"github.com/princinho/estudiobackend/cart"
	"github.com/princinho/estudiobackend/config"
	"github.com/princinho/estudiobackend/content"
	"github.com/princinho/estudiobackend/controllers"
	"github.com/princinho/estudiobackend/database"
	"github.com/princinho/estudiobackend/middleware"
	"github.com/princinho/estudiobackend/models"
	"github.com/princinho/estudiobackend/notify"
	"github.com/princinho/estudiobackend/storage"
	"github.com/princinho/estudiobackend/upload"
	"github.com/princinho/estudiobackend/utils"
	"github.com/princinho/estudiobackend/web"
	"go.uber.org/zap"
)

func openStore(ctx context.Context, cfg config.StorageConfig, port string) (storage.BlobStore, error) {
	base := cfg.PublicBaseURL
	if base == "" {
		base = "http://localhost:" + port
	}
	base += "/media"

	switch cfg.Driver {
	case "r2":
		return storage.NewR2(ctx, cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.Bucket, cfg.PublicDomain)
	case "gcs":
		return storage.NewGCS(ctx, cfg.GCSBucket, cfg.CredentialsFile)
	case "local":
		return storage.NewLocal(cfg.LocalPath, base)
	case "memory":
		return storage.NewMemory(base), nil
	}
	return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
}

func main() {
	cfg := config.Load()
	logger, err := utils.InitLogger(cfg.Logger.Mode, cfg.Logger.Filename)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		zap.S().Fatalw("invalid configuration", "error", err)
	}
	gin.SetMode(cfg.GinMode)
	ctx := context.Background()

	store, err := openStore(ctx, cfg.Storage, cfg.Port)
	if err != nil {
		zap.S().Fatalw("storage init failed", "driver", cfg.Storage.Driver, "error", err)
	}
	zap.S().Infow("storage ready", "driver", cfg.Storage.Driver)

	db, err := database.OpenPostgres(cfg.Database)
	if err != nil {
		zap.S().Fatalw("database init failed", "error", err)
	}

	var orders database.OrderRepository = database.SimulatedOrders{}
	mongoClient, err := database.ConnectMongo(ctx, cfg.Mongo.URI)
	if err != nil {
		zap.S().Fatalw("mongo init failed", "error", err)
	}
	if mongoClient != nil {
		defer mongoClient.Disconnect(ctx)
		orders = database.NewOrderStore(database.OpenCollection(mongoClient, cfg.Mongo.Database, "orders"))
	} else {
		zap.S().Warn("MONGODB_URI not set, orders are simulated")
	}

	secret := []byte(cfg.Session.Secret)
	if len(secret) == 0 {
		zap.S().Warn("SESSION_SECRET not set, using an insecure development key")
		secret = []byte("estudio-dev-session-key")
	}

	collections := content.NewCollections(store)
	uploads := upload.NewGateway(store)
	app := &controllers.App{
		Content: collections,
		Store:   store,
		Uploads: uploads,
		Carts:   cart.NewSessionStore(secret, cfg.Session.Secure),
		Catalog: cart.NewCatalog(collections),
		Orders:  orders,
		Admin:   admin.NewRegistry(collections, uploads),
		Notify:  notify.NewMailer(cfg.SMTP),

		Contacts:     database.NewRowStore[models.ContactMessage](db),
		Logos:        database.NewRowStore[models.Logo](db),
		LeftPhotos:   database.NewRowStore[models.LeftPhoto](db),
		AboutPhotos:  database.NewRowStore[models.AboutPhoto](db),
		Materials:    database.NewRowStore[models.EngravingMaterial](db),
		Services:     database.NewRowStore[models.StudioService](db),
		WorkExamples: database.NewRowStore[models.WorkExample](db),
	}

	renderer, err := controllers.LoadTemplates(web.FS)
	if err != nil {
		zap.S().Fatalw("templates", "error", err)
	}

	r := gin.New()
	allowedOrigins := map[string]bool{}
	for _, origin := range cfg.AllowedOrigins {
		allowedOrigins[origin] = true
	}
	zap.S().Infow("cors", "allowedOrigins", cfg.AllowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.HTMLRender = renderer

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		zap.S().Fatalw("static files", "error", err)
	}
	r.StaticFS("/static", http.FS(static))
	if o, ok := store.(storage.Opener); ok {
		r.GET("/media/*key", controllers.ServeMedia(o))
	}

	app.Routes(r)

	zap.S().Infow("listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		zap.S().Fatalw("server stopped", "error", err)
	}
}
