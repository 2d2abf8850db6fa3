package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/SNAndreatta/prode-master/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test so parallel tests stay isolated
	// while the connection pool still sees the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Country{},
		&models.League{},
		&models.Team{},
		&models.Round{},
		&models.Fixture{},
		&models.Prediction{},
		&models.Tournament{},
		&models.TournamentParticipant{},
		&models.SyncState{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedLeague(t *testing.T, db *gorm.DB, id uint, name string) models.League {
	t.Helper()
	league := models.League{ID: id, Name: name, CountryName: "Argentina", Season: 2025}
	require.NoError(t, db.Create(&league).Error)
	return league
}

func seedTeams(t *testing.T, db *gorm.DB, leagueID uint, ids ...uint) {
	t.Helper()
	for _, id := range ids {
		team := models.Team{ID: id, Name: "Team", LeagueID: leagueID}
		require.NoError(t, db.Create(&team).Error)
	}
}

type fixtureOpts struct {
	id       uint
	leagueID uint
	status   models.FixtureStatus
	date     *time.Time
	round    string
	home     *int
	away     *int
	pensHome *int
	pensAway *int
}

func seedFixture(t *testing.T, db *gorm.DB, opts fixtureOpts) models.Fixture {
	t.Helper()
	if opts.round == "" {
		opts.round = "Regular Season - 1"
	}
	fixture := models.Fixture{
		ID:            opts.id,
		LeagueID:      opts.leagueID,
		HomeID:        100,
		AwayID:        101,
		Date:          opts.date,
		Status:        opts.status,
		Round:         opts.round,
		HomeTeamScore: opts.home,
		AwayTeamScore: opts.away,
		HomePensScore: opts.pensHome,
		AwayPensScore: opts.pensAway,
	}
	require.NoError(t, db.Create(&fixture).Error)
	return fixture
}
