package main

import (
	"log"

	"github.com/CourageAllien/revshare/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ revshare failed to start: %v", err)
	}
}
