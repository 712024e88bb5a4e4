package models

import (
	"context"
	"errors"
	"postlikes/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Like struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int
	UpdatedAt int
	UserIDStr string `gorm:"column:user_id_str;type:varchar(191);not null;uniqueIndex:uniq_user_post"`
	PostID    uint64 `gorm:"not null;uniqueIndex:uniq_user_post;index"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// LikeCreate records that userIDStr likes the post, unless that is already the case.
// Losing an insert race against the same (user, post) pair is reported as created == false.
func LikeCreate(ctx context.Context, userIDStr string, postID uint64) (created bool, err error) {
	like := Like{
		UserIDStr: userIDStr,
		PostID:    postID,
	}
	result := db.Instance.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// LikeDelete returns false if the user did not like the post in the first place
func LikeDelete(ctx context.Context, userIDStr string, postID uint64) (deleted bool, err error) {
	result := db.Instance.WithContext(ctx).
		Where("user_id_str = ? AND post_id = ?", userIDStr, postID).
		Delete(&Like{})
	return result.RowsAffected > 0, result.Error
}

func LikeCount(ctx context.Context, postID uint64) (count int64, err error) {
	err = db.Instance.WithContext(ctx).Model(&Like{}).Where("post_id = ?", postID).Count(&count).Error
	return
}

// LikedPostStrIDs lists the posts a user liked, oldest like first
func LikedPostStrIDs(ctx context.Context, userIDStr string) ([]string, error) {
	result := []string{}
	err := db.Instance.WithContext(ctx).
		Model(&Like{}).
		Joins("JOIN posts ON posts.id = likes.post_id").
		Where("likes.user_id_str = ?", userIDStr).
		Order("likes.id ASC").
		Pluck("posts.post_str_id", &result).Error
	return result, err
}
