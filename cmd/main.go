package main

import (
	"log"

	"github.com/r4mir3zzz/habit-tracker/config"
	"github.com/r4mir3zzz/habit-tracker/routes"
	"github.com/r4mir3zzz/habit-tracker/services"
	"github.com/r4mir3zzz/habit-tracker/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push disabled: %v", err)
	}
	services.InitShareEvents(config.DB, hub, push)

	r := routes.SetupRouter(config.DB, hub, push)
	r.Run(":8080")
}
