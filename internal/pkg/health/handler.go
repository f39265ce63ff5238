package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the running build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Checker verifies connectivity of a single dependency
type Checker func(ctx context.Context) error

// Service aggregates dependency checkers for the readiness endpoint
type Service struct {
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs all checkers and returns the per-dependency outcome
func (s *Service) Check(ctx context.Context) (map[string]string, bool) {
	results := make(map[string]string, len(s.checkers))
	healthy := true
	for name, checker := range s.checkers {
		if err := checker(ctx); err != nil {
			results[name] = err.Error()
			healthy = false
		} else {
			results[name] = "ok"
		}
	}
	return results, healthy
}

// RegisterEndpoints registers the ping, liveness and readiness endpoints
func RegisterEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	if version == "" {
		version = "development"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		results, healthy := svc.Check(ctx)
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, results)
	})
}
