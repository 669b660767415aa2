package models

import "blog/db"

// Group is a named community posts can be filed into. Deleting a
// Group detaches its posts (group_id goes NULL), it never deletes them.
type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string  `gorm:"type:varchar(200)"`
	Slug        *string `gorm:"type:varchar(200);index:uniq_slug,unique"`
	Description string  `gorm:"type:text"`
}

// SlugValue is the template-friendly form of the nullable slug
func (g *Group) SlugValue() string {
	if g.Slug == nil {
		return ""
	}
	return *g.Slug
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return
}

// GroupBySlug returns gorm.ErrRecordNotFound for unknown slugs
func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

func GroupList() (groups []Group, err error) {
	err = db.Instance.Order("title ASC").Find(&groups).Error
	return
}
