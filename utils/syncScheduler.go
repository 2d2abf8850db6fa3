package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/SNAndreatta/prode-master/cache"
	"github.com/SNAndreatta/prode-master/config"
	"github.com/SNAndreatta/prode-master/database"
	"github.com/SNAndreatta/prode-master/models"
	"github.com/SNAndreatta/prode-master/services"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

const fixtureSyncJob = "fixture_sync"

// logSync logs scheduler events with timestamp
func logSync(message string) {
	log.Printf("[FIXTURE-SYNC %s] %s", time.Now().Format(time.RFC3339), message)
}

func loadLastRun(jobName string) *time.Time {
	var state models.SyncState
	if err := database.Database.Db.Where("job_name = ?", jobName).First(&state).Error; err != nil {
		return nil
	}
	return state.LastRunAt
}

func saveLastRun(jobName string, runAt time.Time) {
	var state models.SyncState
	err := database.Database.Db.Where("job_name = ?", jobName).First(&state).Error
	if err != nil {
		state = models.SyncState{JobName: jobName, LastRunAt: &runAt}
		if err := database.Database.Db.Create(&state).Error; err != nil {
			logSync("Error saving sync state: " + err.Error())
		}
		return
	}
	state.LastRunAt = &runAt
	if err := database.Database.Db.Save(&state).Error; err != nil {
		logSync("Error saving sync state: " + err.Error())
	}
}

// shouldRunToday applies the daily gate: run once per local day, after the
// configured hour. The persisted timestamp makes the gate survive process
// restarts, and the upserts keep accidental double runs harmless.
func shouldRunToday(location *time.Location, clock time.Time) bool {
	local := clock.In(location)
	if local.Hour() < config.AppConfig.SyncHour {
		return false
	}

	lastRun := loadLastRun(fixtureSyncJob)
	if lastRun == nil {
		return true
	}

	dayStart := now.New(local).BeginningOfDay()
	return lastRun.In(location).Before(dayStart)
}

// RunFeedSync pulls rounds and fixtures for every stored league. Each
// league is an independent unit of failure: a feed error logs and skips
// that league without aborting the rest of the run.
func RunFeedSync() {
	db := database.Database.Db
	client := NewFootballApiClient()

	var leagues []models.League
	if err := db.Find(&leagues).Error; err != nil {
		logSync("Error fetching leagues: " + err.Error())
		return
	}
	if len(leagues) == 0 {
		logSync("No leagues in database, nothing to sync")
		return
	}

	from := time.Now().UTC().Format("2006-01-02")
	to := time.Now().UTC().AddDate(0, 0, 30).Format("2006-01-02")
	logSync("Syncing fixtures from " + from + " to " + to)

	for _, league := range leagues {
		if err := syncLeagueRounds(client, &league); err != nil {
			logSync("Skipping rounds for league " + league.Name + ": " + err.Error())
		}
		if err := syncLeagueFixtures(client, &league, from, to); err != nil {
			logSync("Skipping fixtures for league " + league.Name + ": " + err.Error())
			continue
		}
		cache.InvalidateLeague(context.Background(), league.ID)
	}

	logSync("Feed sync completed")
}

func syncLeagueRounds(client *FootballApiClient, league *models.League) error {
	names, err := client.Rounds(league.ID, league.Season)
	if err != nil {
		return err
	}

	rounds := make([]models.Round, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		rounds = append(rounds, models.Round{
			Name:     name,
			LeagueID: league.ID,
			Season:   league.Season,
		})
	}

	if err := services.UpsertByColumns(database.Database.Db, rounds, []string{"name", "league_id", "season"}); err != nil {
		return err
	}
	logSync("Upserted " + league.Name + " rounds")
	return nil
}

func syncLeagueFixtures(client *FootballApiClient, league *models.League, from, to string) error {
	feed, err := client.Fixtures(league.ID, league.Season, from, to)
	if err != nil {
		return err
	}

	fixtures := make([]models.Fixture, 0, len(feed))
	skipped := 0
	for _, item := range feed {
		// Partial entries without the identifying fields cannot be stored.
		if item.Fixture.ID == 0 || item.League.ID == 0 || item.Teams.Home.ID == 0 || item.Teams.Away.ID == 0 {
			skipped++
			continue
		}

		fixtures = append(fixtures, models.Fixture{
			ID:            item.Fixture.ID,
			LeagueID:      item.League.ID,
			HomeID:        item.Teams.Home.ID,
			AwayID:        item.Teams.Away.ID,
			Date:          ParseFeedDate(item.Fixture.Date),
			HomeTeamScore: item.Goals.Home,
			AwayTeamScore: item.Goals.Away,
			HomePensScore: item.Score.Penalty.Home,
			AwayPensScore: item.Score.Penalty.Away,
			Status:        models.ParseFixtureStatus(item.Fixture.Status.Short),
			Round:         item.League.Round,
		})
	}

	if err := services.UpsertByKey(database.Database.Db, fixtures); err != nil {
		return err
	}

	logSync(fmt.Sprintf("%s: upserted %d fixtures, skipped %d partial entries", league.Name, len(fixtures), skipped))
	return nil
}

// InitializeSyncScheduler starts the daily feed sync. A minutely cron
// checks the gate so a missed window (process down at the scheduled hour)
// is caught up on the next tick instead of waiting a full day.
func InitializeSyncScheduler() *cron.Cron {
	logSync("Initializing feed sync scheduler...")

	location, err := time.LoadLocation(config.AppConfig.SyncTimezone)
	if err != nil {
		logSync("Invalid SYNC_TIMEZONE, falling back to UTC: " + err.Error())
		location = time.UTC
	}

	c := cron.New(cron.WithLocation(location))
	c.AddFunc("* * * * *", func() {
		if !shouldRunToday(location, time.Now()) {
			return
		}
		runAt := time.Now()
		logSync("Daily gate open, starting feed sync")
		RunFeedSync()
		saveLastRun(fixtureSyncJob, runAt)
	})
	c.Start()

	logSync(fmt.Sprintf("Feed sync scheduler started - daily after %d:00 %s", config.AppConfig.SyncHour, config.AppConfig.SyncTimezone))
	return c
}
