package models

import (
	"time"

	"blog/db"
	"blog/storage"

	"gorm.io/gorm"
)

type Post struct {
	ID      uint64 `gorm:"primaryKey"`
	PubDate int64  `gorm:"index"` // Set once at creation, immutable
	Text    string `gorm:"type:text;not null"`
	UserID  uint64 `gorm:"not null;index"`
	User    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID *uint64
	Group   *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	// Optional attached image
	BucketID  *uint64
	Bucket    *storage.Bucket `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	ImagePath string          `gorm:"type:varchar(300)"`
	ThumbPath string          `gorm:"type:varchar(300)"`
}

// Value receiver: templates call this on posts ranged over by value
func (p Post) HasImage() bool {
	return p.ImagePath != ""
}

// CanEdit is the single authorization rule for post mutation, used by
// both the edit handler and the templates
func CanEdit(user *User, post *Post) bool {
	return user != nil && user.ID != 0 && user.ID == post.UserID
}

func PostCreate(post *Post) error {
	post.PubDate = time.Now().Unix()
	return db.Instance.Create(post).Error
}

// PostUpdate changes the mutable columns only; id and pub_date stay as
// they were
func PostUpdate(post *Post, text string, groupID *uint64) error {
	return db.Instance.Model(post).Updates(map[string]interface{}{
		"text":     text,
		"group_id": groupID,
	}).Error
}

func (p *Post) SetImage(bucketID uint64, imagePath, thumbPath string) error {
	p.BucketID = &bucketID
	p.ImagePath = imagePath
	p.ThumbPath = thumbPath
	return db.Instance.Model(p).Updates(map[string]interface{}{
		"bucket_id":  bucketID,
		"image_path": imagePath,
		"thumb_path": thumbPath,
	}).Error
}

func postQuery() *gorm.DB {
	return db.Instance.
		Preload("User").
		Preload("Group").
		Order("pub_date DESC, id DESC")
}

// LatestPosts returns every post, newest first, with author and group
// attached for display
func LatestPosts() (posts []Post, err error) {
	err = postQuery().Find(&posts).Error
	return
}

// PostsByGroup returns gorm.ErrRecordNotFound when no group has the slug
func PostsByGroup(slug string) (group Group, posts []Post, err error) {
	group, err = GroupBySlug(slug)
	if err != nil {
		return
	}
	err = postQuery().Where("group_id = ?", group.ID).Find(&posts).Error
	return
}

// PostsByAuthor returns gorm.ErrRecordNotFound when the user is unknown
func PostsByAuthor(username string) (author User, posts []Post, err error) {
	author, err = UserByUsername(username)
	if err != nil {
		return
	}
	err = postQuery().Where("user_id = ?", author.ID).Find(&posts).Error
	return
}

// FeedPosts returns the posts of every author the user follows, newest
// first. Following nobody yields an empty slice, not an error.
func FeedPosts(userID uint64) (posts []Post, err error) {
	followed := db.Instance.Model(&Follow{}).Select("author_id").Where("user_id = ?", userID)
	err = postQuery().Where("user_id IN (?)", followed).Find(&posts).Error
	return
}

// PostByID returns gorm.ErrRecordNotFound for unknown ids
func PostByID(id uint64) (post Post, err error) {
	err = db.Instance.Preload("User").Preload("Group").First(&post, id).Error
	return
}

// PostByMediaPath finds the post that owns a stored image or thumbnail
func PostByMediaPath(path string) (post Post, err error) {
	err = db.Instance.First(&post, "image_path = ? OR thumb_path = ?", path, path).Error
	return
}

type PostDetail struct {
	Post            Post
	Comments        []Comment
	AuthorPostCount int64
}

// GetPost loads one post with its comments (newest first) and the
// author's total post count
func GetPost(id uint64) (detail PostDetail, err error) {
	detail.Post, err = PostByID(id)
	if err != nil {
		return
	}
	detail.Comments, err = CommentsForPost(id)
	if err != nil {
		return
	}
	detail.AuthorPostCount = detail.Post.User.PostCount()
	return
}
