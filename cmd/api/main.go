package main

import (
	"github.com/daveshb/taskload/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/daveshb/taskload/internal/adapter/db"
	httpadapter "github.com/daveshb/taskload/internal/adapter/http"
	"github.com/daveshb/taskload/internal/adapter/http/handlers"
	httpmiddleware "github.com/daveshb/taskload/internal/adapter/http/middleware"
	"github.com/daveshb/taskload/internal/adapter/storage"
	appservice "github.com/daveshb/taskload/internal/app/service"
	"github.com/daveshb/taskload/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageEs},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	imageStore, err := storage.NewLocalImageStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal("failed to prepare upload directory", zap.Error(err))
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	userRepository := dbadapter.NewUserRepository(db)
	productRepository := dbadapter.NewProductRepository(db)

	taskService := appservice.NewTaskService(taskRepository, cfg.DbTimeout)
	userService := appservice.NewUserService(userRepository, cfg.DbTimeout)
	productService := appservice.NewProductService(productRepository, imageStore, cfg.DbTimeout)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestLogger(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	helloHandler := handlers.NewHelloHandler()
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(userService)
	productHandler := handlers.NewProductHandler(productService)

	httpadapter.RegisterRoutes(r, healthHandler, helloHandler, taskHandler, userHandler, authHandler, productHandler)
	r.Static(storage.URLPrefix, cfg.UploadDir)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
