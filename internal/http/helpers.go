// README: Root endpoints (service index and liveness).
package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

const appName = "Paytm Campus OS API"

type indexResponse struct {
	App       string   `json:"app"`
	Version   string   `json:"version"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

// index lists the registered /api routes so the listing never drifts from the router.
func index(r *gin.Engine, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		seen := map[string]bool{}
		var paths []string
		for _, ri := range r.Routes() {
			if strings.HasPrefix(ri.Path, "/api/") && !seen[ri.Path] {
				seen[ri.Path] = true
				paths = append(paths, ri.Path)
			}
		}
		sort.Strings(paths)
		c.JSON(http.StatusOK, indexResponse{
			App:       appName,
			Version:   version,
			Status:    "running ✅",
			Endpoints: paths,
		})
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
