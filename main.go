package main

import (
	"log"
	"strings"

	"blog/config"
	"blog/db"
	"blog/handlers"
	"blog/models"
	"blog/storage"

	"github.com/gin-gonic/autotls"
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	router := handlers.NewRouter()

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
