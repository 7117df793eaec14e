package main

import (
	"BookShelf/config"
	"BookShelf/internal/handler"
	"BookShelf/internal/repo"
	"BookShelf/internal/service"
	"BookShelf/internal/session"
	"BookShelf/internal/storage"
	"BookShelf/router"
	"BookShelf/utils"
	"log"
)

// main wires every dependency explicitly and starts the HTTP server.
func main() {
	cfg := config.Load()

	db, err := repo.NewDB(cfg)
	if err != nil {
		log.Fatal("init database fail ", err)
	}
	log.Println("init database success")

	rdb, err := repo.NewRedis(cfg)
	if err != nil {
		log.Fatal("init redis fail ", err)
	}
	log.Println("init redis success")

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatal("init storage fail ", err)
	}

	sessions := session.NewManager(cfg.JWTSecret, cfg.SessionTTL, rdb)
	users := service.NewUserService(db)
	books := service.NewBookService(db, store)
	h := handler.New(users, books, sessions)
	loginLimiter := utils.NewIPRateLimiter(cfg.LoginRate, cfg.LoginBurst)

	r := router.InitRouter(h, loginLimiter)
	r.Run(":8000")
}
