package handlers

import (
	"errors"
	"net/http"
	"postlikes/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Response struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

const (
	StatusCreated            = "created"
	StatusLiked              = "liked"
	StatusAlreadyLiked       = "already_liked"
	StatusUnliked            = "unliked"
	StatusNotLikedPreviously = "not_liked_previously"
)

var (
	// Predefined errors
	PostNotFoundResponse = Response{Error: "Post not found"}
	PostExistsResponse   = Response{Error: "Post with this post_str_id already exists"}
)

// Routes registers every endpoint of the service on router
func Routes(router gin.IRouter) {
	router.POST("/posts", PostCreate)
	router.GET("/posts/top", PostTop)
	router.POST("/posts/:post_str_id/like", PostLike)
	router.DELETE("/posts/:post_str_id/like", PostUnlike)
	router.GET("/posts/:post_str_id/likes", PostLikes)
	router.GET("/users/:user_id_str/liked-posts", UserLikedPosts)
	router.GET("/healthz", Health)
}

func dbError(c *gin.Context, err error) {
	log.WithError(err).WithField("path", c.FullPath()).Error("DB error")
	c.JSON(http.StatusInternalServerError, Response{Error: "Internal server error", Details: err.Error()})
}

// loadPost resolves the :post_str_id path parameter, responding with 404/500 itself when it fails
func loadPost(c *gin.Context) (post models.Post, ok bool) {
	post, err := models.PostByStrID(c.Request.Context(), c.Param("post_str_id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, PostNotFoundResponse)
		return post, false
	}
	if err != nil {
		dbError(c, err)
		return post, false
	}
	return post, true
}
