package main

import (
	"fmt"
	"log"

	"coin-board/internal/api"
	"coin-board/internal/config"
	"coin-board/internal/db"
	"coin-board/internal/denomination"
	"coin-board/internal/logger"
	"coin-board/internal/service"
	"coin-board/pkg"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbConn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	db.Migrate(dbConn, "migrations")

	zapLogger := logger.NewLogger()
	defer func(l *zap.Logger) {
		_ = l.Sync()
	}(zapLogger)
	appLogger := pkg.NewZapLogger(zapLogger)

	denominations := make([]denomination.Denomination, len(cfg.Denominations))
	for i, d := range cfg.Denominations {
		denominations[i] = denomination.Denomination{Value: d.Value, Sprite: d.Sprite}
	}
	set, err := denomination.NewSet(denominations)
	if err != nil {
		log.Fatalf("Failed to configure denominations: %v", err)
	}
	allocator := denomination.NewAllocator(set)

	authDB := db.NewAuthDB(dbConn)
	boardDB := db.NewBoardDB(dbConn)

	authService := service.NewAuthService(authDB, appLogger, cfg.JWTSecret)
	campaignService, err := service.NewCampaignService(cfg.CampaignStart, cfg.CampaignEnd, appLogger)
	if err != nil {
		log.Fatalf("Failed to configure campaign: %v", err)
	}
	boardService := service.NewBoardService(boardDB, campaignService, allocator, appLogger)

	if err := boardService.RestoreBoard(); err != nil {
		log.Fatalf("Failed to restore board state: %v", err)
	}

	e := echo.New()
	e.Use(logger.RequestLogger(zapLogger))

	handlers := &api.Handlers{
		AuthService:     authService,
		BoardService:    boardService,
		CampaignService: campaignService,
		Logger:          appLogger,
		JWTSecret:       cfg.JWTSecret,
	}

	api.RegisterHandlers(e, handlers)

	port := fmt.Sprintf(":%s", cfg.ServerPort)
	appLogger.Info("Starting server", zap.String("port", cfg.ServerPort))
	if err := e.Start(port); err != nil {
		appLogger.Error("Failed to run server", zap.Error(err))
	}
}
