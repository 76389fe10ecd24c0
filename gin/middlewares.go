package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmadsaad58/todo/errors"
)

type HandlerFunc func(*gin.Context) (interface{}, error)

// JSONFormatter renders the handler's result as JSON, mapping error codes
// to HTTP statuses.
func JSONFormatter(next HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := next(c.Copy())
		if err != nil {
			code := http.StatusInternalServerError
			if err, ok := err.(errors.Error); ok {
				code = err.Code()
			}

			c.JSON(code, map[string]interface{}{
				"message": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, res)
	}
}
