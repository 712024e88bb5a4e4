package models

import (
	"context"
	"errors"
	"postlikes/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int
	UpdatedAt int
	PostStrID string `gorm:"column:post_str_id;type:varchar(191);not null;uniqueIndex:uniq_post_str_id"`
	Content   string `gorm:"type:text;not null"`
}

// PostLikeCount is one row of the like ranking
type PostLikeCount struct {
	PostStrID string `json:"post_str_id"`
	LikeCount int64  `json:"like_count"`
}

// PostCreate inserts a new post in a single conditional insert.
// created is false if a post with the same postStrID already exists; that post is left untouched.
func PostCreate(ctx context.Context, postStrID, content string) (post Post, created bool, err error) {
	post = Post{
		PostStrID: postStrID,
		Content:   content,
	}
	result := db.Instance.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&post)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return post, false, nil
	}
	if result.Error != nil {
		return post, false, result.Error
	}
	return post, result.RowsAffected > 0, nil
}

// PostByStrID returns gorm.ErrRecordNotFound when there is no such post
func PostByStrID(ctx context.Context, postStrID string) (post Post, err error) {
	err = db.Instance.WithContext(ctx).First(&post, "post_str_id = ?", postStrID).Error
	return
}

// PostDelete removes a post, its likes go with it via the foreign key
func PostDelete(ctx context.Context, postStrID string) (deleted bool, err error) {
	result := db.Instance.WithContext(ctx).Where("post_str_id = ?", postStrID).Delete(&Post{})
	return result.RowsAffected > 0, result.Error
}

// TopPosts ranks all posts by number of likes, ties go to the older post.
// Posts nobody liked are ranked too, with a count of 0.
func TopPosts(ctx context.Context, limit int) ([]PostLikeCount, error) {
	result := []PostLikeCount{}
	err := db.Instance.WithContext(ctx).
		Model(&Post{}).
		Select("posts.post_str_id, count(likes.id) AS like_count").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Group("posts.id, posts.post_str_id").
		Order("like_count DESC, posts.id ASC").
		Limit(limit).
		Scan(&result).Error
	return result, err
}
