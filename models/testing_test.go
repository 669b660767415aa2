package models

import (
	"testing"

	"blog/config"
	"blog/db"
)

// initTestDB points db.Instance at a fresh in-memory SQLite database
// with foreign keys enforced, then runs the migrations.
func initTestDB(t *testing.T) {
	t.Helper()
	config.SQLITE_FILE = "file:" + t.Name() + "?mode=memory&cache=shared"
	db.Init()
	Init()
}

func mustUser(t *testing.T, username string) User {
	t.Helper()
	user, err := UserCreate(username, username, username+"@example.com", "secret")
	if err != nil {
		t.Fatalf("UserCreate(%s): %v", username, err)
	}
	return user
}

func mustGroup(t *testing.T, title, slug string) Group {
	t.Helper()
	group := Group{Title: title, Slug: &slug, Description: "about " + title}
	if err := db.Instance.Create(&group).Error; err != nil {
		t.Fatalf("create group %s: %v", slug, err)
	}
	return group
}

func mustPost(t *testing.T, user *User, group *Group, text string) Post {
	t.Helper()
	post := Post{Text: text, UserID: user.ID}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := PostCreate(&post); err != nil {
		t.Fatalf("PostCreate: %v", err)
	}
	return post
}
