package models

import (
	"errors"

	"blog/db"
	"blog/utils"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Name      string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(150);index:uniq_email,unique"`
	Password  string `gorm:"type:varchar(128)"`
	PassSalt  string `gorm:"type:varchar(200)"`
}

const saltSize = 60

var ErrLoginFailed = errors.New("wrong username or password")

func UserCreate(username, name, email, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Name = name
	u.Email = email
	u.SetPassword(plainTextPassword)
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(username, plainTextPassword string) (u User, err error) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, ErrLoginFailed
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, ErrLoginFailed
	}
	return u, nil
}

// UserByUsername returns gorm.ErrRecordNotFound for unknown usernames
func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}

// PostCount returns how many posts the user has authored
func (u *User) PostCount() int64 {
	var count int64
	db.Instance.Model(&Post{}).Where("user_id = ?", u.ID).Count(&count)
	return count
}
