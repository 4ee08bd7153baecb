package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/daveshb/taskload/internal/adapter/http/middleware"
)

const (
	StatusOk   = "ok"
	StatusDown = "down"

	healthDBTimeout = 2 * time.Second
)

type healthStatus struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type healthReport struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Language          string `json:"language"`
	Status            struct {
		Mysql string `json:"mysql"`
	} `json:"status"`
}

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// CheckHealth reports liveness. It returns 500 when the database is
// unreachable so load balancers can take the instance out of rotation.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	code := http.StatusOK
	message := StatusOk
	if !h.databaseReachable(c.Request.Context()) {
		code = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(code, healthStatus{
		AppName:           envOr("APP_NAME", "taskload"),
		AppVersion:        envOr("APP_VERSION", "dev"),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

// CheckHealthReport returns a per-dependency breakdown and always answers 200.
func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	report := healthReport{
		AppName:           envOr("APP_NAME", "taskload"),
		AppVersion:        envOr("APP_VERSION", "dev"),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
	}
	report.Status.Mysql = StatusDown
	if h.databaseReachable(c.Request.Context()) {
		report.Status.Mysql = StatusOk
	}

	c.JSON(http.StatusOK, report)
}

func (h *HealthHandler) databaseReachable(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
