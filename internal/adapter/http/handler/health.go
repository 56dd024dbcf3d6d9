package handler

import (
	"net/http"

	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/pkg/response"

	"github.com/gin-gonic/gin"
)

// Healthz probes the wallet with get_version and pings the other
// dependencies. A wallet failure is a 503: the facade is useless without its
// wallet, and the error message carries the connectivity hint.
func Healthz(wallet ports.WalletClient, checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		version, err := wallet.GetVersion(c.Request.Context())
		if err != nil {
			response.ErrorWithStatus(c, http.StatusServiceUnavailable, err)
			return
		}

		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true
		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "ok"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"wallet":       gin.H{"version": version},
			"dependencies": deps,
		})
	}
}
