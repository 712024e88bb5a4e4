package handlers

import (
	"net/http"
	"postlikes/models"

	"github.com/gin-gonic/gin"
)

// UserLikedPosts returns the post_str_id of every post the user liked, in the order they were liked
func UserLikedPosts(c *gin.Context) {
	result, err := models.LikedPostStrIDs(c.Request.Context(), c.Param("user_id_str"))
	if err != nil {
		dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
