package handlers

import (
	"context"
	"net/http"
	"postlikes/db"
	"time"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "Database unavailable", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, StatusResponse{"ok"})
}
