package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"blog/db"
)

const CommentMaxLength = 1000

var (
	ErrCommentEmpty   = errors.New("comment text is required")
	ErrCommentTooLong = errors.New("comment text is over 1000 characters")
)

type Comment struct {
	ID      uint64 `gorm:"primaryKey"`
	Created int64  `gorm:"index"`
	Text    string `gorm:"type:varchar(1000)"`
	UserID  uint64 `gorm:"not null;index"`
	User    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID  uint64 `gorm:"not null;index"`
	Post    Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (c *Comment) Validate() error {
	if c.Text == "" {
		return ErrCommentEmpty
	}
	if utf8.RuneCountInString(c.Text) > CommentMaxLength {
		return ErrCommentTooLong
	}
	return nil
}

// CommentCreate validates and appends a comment to an existing post
func CommentCreate(userID, postID uint64, text string) (Comment, error) {
	comment := Comment{
		Created: time.Now().Unix(),
		Text:    text,
		UserID:  userID,
		PostID:  postID,
	}
	if err := comment.Validate(); err != nil {
		return Comment{}, err
	}
	return comment, db.Instance.Create(&comment).Error
}

func CommentsForPost(postID uint64) (comments []Comment, err error) {
	err = db.Instance.
		Preload("User").
		Where("post_id = ?", postID).
		Order("created DESC, id DESC").
		Find(&comments).Error
	return
}
