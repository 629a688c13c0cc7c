package main

import (
	"log"

	"github.com/Trupti-Varma/SAVEBITE/config"
	"github.com/Trupti-Varma/SAVEBITE/routes"
	"github.com/Trupti-Varma/SAVEBITE/services"
	"github.com/Trupti-Varma/SAVEBITE/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push disabled: %v", err)
		push = nil
	}

	services.InitEventDeps(config.DB, hub, push)
	services.InitTracker(
		services.NewGormRecordStore(config.DB),
		services.SubstringMatcher{},
		hub,
	)

	r := routes.SetupRouter(hub, push)
	r.Run(":8080")
}
