package utils

import (
	"github.com/SNAndreatta/prode-master/database"
	"github.com/SNAndreatta/prode-master/models"
	"github.com/SNAndreatta/prode-master/services"
)

// RunCatalogSync refreshes countries, leagues and teams from the feed.
// This runs on demand (admin endpoint), not on the daily cycle: the
// catalog changes a few times a season at most.
func RunCatalogSync() error {
	db := database.Database.Db
	client := NewFootballApiClient()

	feedCountries, err := client.Countries()
	if err != nil {
		return err
	}

	countries := make([]models.Country, 0, len(feedCountries))
	for _, item := range feedCountries {
		if item.Name == "" {
			continue
		}
		countries = append(countries, models.Country{
			Name: item.Name,
			Code: item.Code,
			Flag: item.Flag,
		})
	}
	if err := services.UpsertByColumns(db, countries, []string{"name"}); err != nil {
		return err
	}
	logSync("Upserted countries")

	// Leagues are refreshed per stored country; a feed failure for one
	// country skips it and moves on, like the fixture sync.
	var storedCountries []models.Country
	if err := db.Find(&storedCountries).Error; err != nil {
		return err
	}

	for _, country := range storedCountries {
		feedLeagues, err := client.Leagues(country.Name)
		if err != nil {
			logSync("Skipping leagues for " + country.Name + ": " + err.Error())
			continue
		}

		leagues := make([]models.League, 0, len(feedLeagues))
		for _, item := range feedLeagues {
			if item.League.ID == 0 {
				continue
			}
			season := 0
			for _, s := range item.Seasons {
				if s.Current {
					season = s.Year
				}
			}
			if season == 0 {
				continue
			}
			leagues = append(leagues, models.League{
				ID:          item.League.ID,
				Name:        item.League.Name,
				CountryName: item.Country.Name,
				Logo:        item.League.Logo,
				Season:      season,
			})
		}
		if err := services.UpsertByKey(db, leagues); err != nil {
			logSync("Skipping league upsert for " + country.Name + ": " + err.Error())
		}
	}
	logSync("Upserted leagues")

	var leagues []models.League
	if err := db.Find(&leagues).Error; err != nil {
		return err
	}

	for _, league := range leagues {
		feedTeams, err := client.Teams(league.ID, league.Season)
		if err != nil {
			logSync("Skipping teams for " + league.Name + ": " + err.Error())
			continue
		}

		teams := make([]models.Team, 0, len(feedTeams))
		for _, item := range feedTeams {
			if item.Team.ID == 0 {
				continue
			}
			teams = append(teams, models.Team{
				ID:       item.Team.ID,
				Name:     item.Team.Name,
				LeagueID: league.ID,
				LogoURL:  item.Team.Logo,
			})
		}
		if err := services.UpsertByKey(db, teams); err != nil {
			logSync("Skipping team upsert for " + league.Name + ": " + err.Error())
		}
	}
	logSync("Upserted teams")

	return nil
}
