package db

import (
	"strings"

	"blog/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// sqliteDSN makes sure foreign keys are enforced - the cascade and
// set-null rules on the models depend on it.
func sqliteDSN(file string) string {
	if strings.Contains(file, "_foreign_keys") {
		return file
	}
	if strings.Contains(file, "?") {
		return file + "&_foreign_keys=on"
	}
	return file + "?_foreign_keys=on"
}

func Init() {
	var (
		db  *gorm.DB
		err error
	)
	gormConfig := &gorm.Config{
		PrepareStmt: true,
	}
	if config.MYSQL_DSN != "" {
		db, err = gorm.Open(mysql.Open(config.MYSQL_DSN), gormConfig)
	} else if config.SQLITE_FILE != "" {
		db, err = gorm.Open(sqlite.Open(sqliteDSN(config.SQLITE_FILE)), gormConfig)
	} else {
		panic("no database configured: set MYSQL_DSN or SQLITE_FILE")
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
