package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"casechain/backend/internal/api/handler"
	"casechain/backend/internal/config"
	"casechain/backend/internal/lifecycle"
	"casechain/backend/internal/models"
	"casechain/backend/internal/query"
	"casechain/backend/internal/reporthub"
	"casechain/backend/internal/reward"
	"casechain/backend/internal/storage"
	"casechain/backend/internal/telegram"
)

func setupDependencies() (*gorm.DB, *redis.Client) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "user"),
		envOr("DB_PASSWORD", "password"),
		envOr("DB_NAME", "casechaindb"),
		envOr("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	if err := db.AutoMigrate(&models.Report{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// seedUsers loads the portal accounts. Demo credentials stand in until a
// real directory is wired behind the login endpoints.
func seedUsers() map[string]handler.Credential {
	users := map[string]handler.Credential{
		"investigator1": {Password: "securepass1", Name: "John Investigator", Role: config.RoleInvestigator},
		"investigator2": {Password: "securepass2", Name: "Jane Investigator", Role: config.RoleInvestigator},
		"manager1":      {Password: "mgmtpass1", Name: "John Manager", Role: config.RoleManagement},
		"manager2":      {Password: "mgmtpass2", Name: "Jane Manager", Role: config.RoleManagement},
	}

	if adminUser := os.Getenv("ADMIN_USERNAME"); adminUser != "" {
		users[adminUser] = handler.Credential{
			Password: os.Getenv("ADMIN_PASSWORD"),
			Name:     "Administrator",
			Role:     config.RoleAdmin,
		}
	}
	return users
}

func main() {
	log.Println("Starting Casechain Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	initialBalance, err := decimal.NewFromString(envOr("REWARD_BALANCE", config.DefaultRewardBalance))
	if err != nil {
		log.Fatalf("Invalid REWARD_BALANCE: %v", err)
	}
	ledger := reward.NewLedger(initialBalance)

	engine := lifecycle.NewService(s, ledger, s)
	queries := query.NewService(s)

	hub := reporthub.NewHub(s)
	go hub.Run()

	// Optional Telegram alerting for the management channel.
	if botToken := os.Getenv("TELEGRAM_BOT_TOKEN"); botToken != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		notifier, err := telegram.NewNotifier(botToken, chatID, telegram.SubscribeBroadcast(s))
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		go notifier.Run()
	}

	secret := []byte(envOr("JWT_SECRET", "casechain-dev-secret"))
	h := handler.NewHandler(engine, queries, ledger, hub, seedUsers(), secret)

	r := gin.Default()

	// Whistleblower portal: open to anonymous reporters.
	wb := r.Group("/api/whistleblower")
	{
		wb.POST("/reports", h.SubmitReport)
		wb.GET("/reports/:id", h.GetReport)
		wb.GET("/reports/:id/chat", h.GetChatHistory)
		wb.POST("/reports/:id/chat", h.SendWhistleblowerMessage)
		wb.PUT("/reports/:id/chat/read", h.MarkWhistleblowerMessagesRead)
	}

	// Investigator portal.
	inv := r.Group("/api/investigator")
	inv.POST("/login", h.Login(config.RoleInvestigator))
	invAuth := inv.Group("", h.RequireRole(config.RoleInvestigator))
	{
		invAuth.GET("/reports", h.ListReportsByStatus)
		invAuth.GET("/reports/unassigned", h.ListUnassignedReports)
		invAuth.GET("/my-reports", h.ListMyReports)
		invAuth.GET("/reports/:id", h.GetReport)
		invAuth.POST("/reports/:id/assign", h.AssignReport)
		invAuth.POST("/reports/:id/summary", h.AddManagementSummary)
		invAuth.POST("/reports/:id/complete", h.CompleteInvestigation)
		invAuth.POST("/reports/:id/chat", h.SendInvestigatorMessage)
		invAuth.PUT("/reports/:id/chat/read", h.MarkInvestigatorMessagesRead)
		invAuth.GET("/statistics", h.GetStatistics)
	}

	// Management portal.
	mgmt := r.Group("/api/management")
	mgmt.POST("/login", h.Login(config.RoleManagement))
	mgmtAuth := mgmt.Group("", h.RequireRole(config.RoleManagement))
	{
		mgmtAuth.GET("/reports", h.ListAllReports)
		mgmtAuth.GET("/reports/:id", h.GetReport)
		mgmtAuth.POST("/reports/:id/reopen", h.ReopenInvestigation)
		mgmtAuth.POST("/reports/:id/close", h.PermanentlyCloseCase)
		mgmtAuth.POST("/reports/:id/reward", h.ProcessReward)
		mgmtAuth.GET("/reward-balance", h.GetRewardBalance)
		mgmtAuth.GET("/statistics", h.GetStatistics)
	}

	// Admin: read-only oversight. Status overrides go through the lifecycle
	// engine or not at all.
	adm := r.Group("/api/admin")
	adm.POST("/login", h.Login(config.RoleAdmin))
	admAuth := adm.Group("", h.RequireRole(config.RoleAdmin))
	{
		admAuth.GET("/reports", h.ListAllReports)
		admAuth.GET("/statistics", h.GetStatistics)
	}

	r.GET("/ws", h.ServeWebSocket)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	})

	server := &http.Server{
		Addr:           envOr("LISTEN_ADDR", ":8080"),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
