package auth

import (
	"blog/db"
	"blog/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(user *models.User) {
	s.Set(userIDKey, user.ID)
	_ = s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIDKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = s.Save()
}

func (s *Session) UserID() uint64 {
	id := s.Get(userIDKey)
	if id == nil {
		return 0
	}
	userID, ok := id.(uint64)
	if !ok {
		return 0
	}
	return userID
}

// User loads the acting user; ID stays 0 for anonymous sessions
func (s *Session) User() (user models.User) {
	id := s.UserID()
	if id == 0 {
		return
	}
	user.ID = id
	if db.Instance.First(&user).Error != nil {
		user.ID = 0
	}
	return
}
