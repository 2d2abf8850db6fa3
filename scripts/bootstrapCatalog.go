package main

import (
	"log"

	"github.com/SNAndreatta/prode-master/config"
	"github.com/SNAndreatta/prode-master/database"
	"github.com/SNAndreatta/prode-master/utils"
)

// One-shot bootstrap for a fresh database: pulls the full catalog
// (countries, leagues, teams) and the upcoming fixtures so the server
// starts with data instead of waiting for the daily sync.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	log.Println("Bootstrapping catalog from the feed...")
	if err := utils.RunCatalogSync(); err != nil {
		log.Fatalf("Catalog bootstrap failed: %v", err)
	}

	log.Println("Pulling upcoming fixtures...")
	utils.RunFeedSync()

	log.Println("Bootstrap complete.")
}
