package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmadsaad58/todo/group"
)

// New builds the HTTP handler serving the group store.
func New(store *group.Store) (http.Handler, error) {
	router := gin.Default()

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	// Ping
	router.GET("/todo/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"data": "ok"})
	})

	groupHandler := GroupHandler{Store: store}
	groupHandler.RegisterRoutes(router)

	return router, nil
}
