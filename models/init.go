package models

import (
	"blog/db"
	"blog/storage"
)

func Init() {
	// Buckets go first - posts carry a foreign key to them
	db.Instance.AutoMigrate(&storage.Bucket{})
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Group{})
	db.Instance.AutoMigrate(&Post{})
	db.Instance.AutoMigrate(&Comment{})
	db.Instance.AutoMigrate(&Follow{})
}
