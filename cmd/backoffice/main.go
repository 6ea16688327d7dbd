package main

import (
	"log"

	"shilpgroup-io/backoffice/internal/routers"
)

func main() {
	router := routers.InitRoute()
	err := router.Run("0.0.0.0:8080")
	if err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
