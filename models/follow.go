package models

import (
	"errors"
	"time"

	"blog/db"

	"gorm.io/gorm/clause"
)

// Follow is a directed "user follows author" edge. The composite
// unique index keeps a pair from ever appearing twice, even when two
// requests race.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"not null;uniqueIndex:uniq_follow,priority:1"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"not null;uniqueIndex:uniq_follow,priority:2"`
	Author    User   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

var ErrSelfFollow = errors.New("users cannot follow themselves")

// FollowAuthor creates the edge. Calling it twice is a no-op: the
// insert ignores the duplicate-key conflict, idempotence is the
// user-facing contract.
func FollowAuthor(userID, authorID uint64) error {
	if userID == authorID {
		return ErrSelfFollow
	}
	follow := Follow{
		CreatedAt: time.Now().Unix(),
		UserID:    userID,
		AuthorID:  authorID,
	}
	return db.Instance.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error
}

// UnfollowAuthor deletes the edge; deleting a missing edge is not an error
func UnfollowAuthor(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

func IsFollowing(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}
