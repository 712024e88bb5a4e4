package handlers

import (
	"net/http"
	"postlikes/models"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultTopLimit = 5

type PostCreateRequest struct {
	PostStrID string `json:"post_str_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type PostCreateResponse struct {
	InternalDBID uint64 `json:"internal_db_id"`
	PostStrID    string `json:"post_str_id"`
	Status       string `json:"status"`
}

type PostLikesResponse struct {
	PostStrID string `json:"post_str_id"`
	LikeCount int64  `json:"like_count"`
}

func PostCreate(c *gin.Context) {
	r := PostCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "post_str_id and content are required", Details: err.Error()})
		return
	}
	post, created, err := models.PostCreate(c.Request.Context(), r.PostStrID, r.Content)
	if err != nil {
		dbError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusConflict, PostExistsResponse)
		return
	}
	c.JSON(http.StatusCreated, PostCreateResponse{
		InternalDBID: post.ID,
		PostStrID:    post.PostStrID,
		Status:       StatusCreated,
	})
}

func PostLikes(c *gin.Context) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	count, err := models.LikeCount(c.Request.Context(), post.ID)
	if err != nil {
		dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, PostLikesResponse{
		PostStrID: post.PostStrID,
		LikeCount: count,
	})
}

// PostTop ranks posts by likes, ?limit= falls back to 5 when missing or not a positive number
func PostTop(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = defaultTopLimit
	}
	result, err := models.TopPosts(c.Request.Context(), limit)
	if err != nil {
		dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
