package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatchtrack/internal/pkg/database"
	natsclient "github.com/fleetops/dispatchtrack/internal/pkg/nats"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	Name() string
	CheckHealth(ctx context.Context) error
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (r *RedisHealthChecker) Name() string { return "redis" }

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Client.Ping(ctx).Err()
}

// PostgresHealthChecker checks the journal database connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

func (p *PostgresHealthChecker) Name() string { return "postgres" }

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil // journal is optional
	}
	return p.client.GetDB().PingContext(ctx)
}

// NATSHealthChecker checks NATS connection health
type NATSHealthChecker struct {
	client *natsclient.Client
}

// NewNATSHealthChecker creates a new NATS health checker
func NewNATSHealthChecker(client *natsclient.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

func (n *NATSHealthChecker) Name() string { return "nats" }

// CheckHealth checks if the NATS connection is alive
func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	if !n.client.GetConn().IsConnected() {
		return ErrNATSDisconnected
	}
	return nil
}

// DependencyStatus is the health state of one dependency
type DependencyStatus struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// HealthReport is the aggregate health response
type HealthReport struct {
	Status       string             `json:"status"`
	Dependencies []DependencyStatus `json:"dependencies"`
	CheckedAt    time.Time          `json:"checked_at"`
}

// NewHealthHandler creates a handler that checks all registered dependencies
func NewHealthHandler(checkers ...HealthChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		report := HealthReport{
			Status:    "ok",
			CheckedAt: time.Now().UTC(),
		}

		statusCode := http.StatusOK
		for _, checker := range checkers {
			status := DependencyStatus{Name: checker.Name(), Healthy: true}
			if err := checker.CheckHealth(ctx); err != nil {
				status.Healthy = false
				status.Error = err.Error()
				report.Status = "degraded"
				statusCode = http.StatusServiceUnavailable
			}
			report.Dependencies = append(report.Dependencies, status)
		}

		return c.JSON(statusCode, report)
	}
}
