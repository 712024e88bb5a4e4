package handlers

import (
	"net/http"
	"postlikes/models"
	"postlikes/monitoring"

	"github.com/gin-gonic/gin"
)

type LikeRequest struct {
	UserIDStr string `json:"user_id_str" binding:"required"`
}

func bindLikeRequest(c *gin.Context) (r LikeRequest, ok bool) {
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "user_id_str is required", Details: err.Error()})
		return r, false
	}
	return r, true
}

// PostLike is idempotent, liking twice is not an error
func PostLike(c *gin.Context) {
	r, ok := bindLikeRequest(c)
	if !ok {
		return
	}
	post, ok := loadPost(c)
	if !ok {
		return
	}
	created, err := models.LikeCreate(c.Request.Context(), r.UserIDStr, post.ID)
	if err != nil {
		dbError(c, err)
		return
	}
	if !created {
		monitoring.LikesChanged.WithLabelValues(StatusAlreadyLiked).Inc()
		c.JSON(http.StatusOK, StatusResponse{StatusAlreadyLiked})
		return
	}
	monitoring.LikesChanged.WithLabelValues(StatusLiked).Inc()
	c.JSON(http.StatusCreated, StatusResponse{StatusLiked})
}

func PostUnlike(c *gin.Context) {
	r, ok := bindLikeRequest(c)
	if !ok {
		return
	}
	post, ok := loadPost(c)
	if !ok {
		return
	}
	deleted, err := models.LikeDelete(c.Request.Context(), r.UserIDStr, post.ID)
	if err != nil {
		dbError(c, err)
		return
	}
	status := StatusUnliked
	if !deleted {
		status = StatusNotLikedPreviously
	}
	monitoring.LikesChanged.WithLabelValues(status).Inc()
	c.JSON(http.StatusOK, StatusResponse{status})
}
