package services

import (
	"testing"
	"time"

	"github.com/SNAndreatta/prode-master/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureDate(d time.Duration) *time.Time {
	t := time.Now().UTC().Add(d)
	return &t
}

func TestCreatePredictionHappyPath(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	seedLeague(t, db, 1, "Liga Profesional")
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusNS, date: futureDate(time.Hour)})

	service := NewPredictionService(db)

	prediction, err := service.Create(user.ID, 10, 2, 1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, prediction.GoalsHome)
	assert.Equal(t, 1, prediction.GoalsAway)
	assert.Nil(t, prediction.Points)
}

func TestCreatePredictionFixtureNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")

	service := NewPredictionService(db)

	_, err := service.Create(user.ID, 999, 1, 0, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePredictionLockedFixture(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	seedLeague(t, db, 1, "Liga Profesional")
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusFT})
	seedFixture(t, db, fixtureOpts{id: 11, leagueID: 1, status: models.StatusNS, date: futureDate(-time.Minute)})

	service := NewPredictionService(db)

	_, err := service.Create(user.ID, 10, 1, 0, nil, nil)
	assert.ErrorIs(t, err, ErrLocked, "finished status locks")

	_, err = service.Create(user.ID, 11, 1, 0, nil, nil)
	assert.ErrorIs(t, err, ErrLocked, "past kickoff locks despite NS status")
}

func TestCreatePredictionLocksOnceClockPassesKickoff(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	seedLeague(t, db, 1, "Liga Profesional")

	kickoff := time.Now().UTC().Add(time.Hour)
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusNS, date: &kickoff})

	service := NewPredictionService(db)

	// Before kickoff the create succeeds.
	_, err := service.Create(user.ID, 10, 2, 1, nil, nil)
	require.NoError(t, err)

	_, err = service.Delete(user.ID, 10)
	require.NoError(t, err)

	// Advance the clock past kickoff: same create now fails while the feed
	// status is still NS.
	service.Now = func() time.Time { return kickoff.Add(time.Minute) }
	_, err = service.Create(user.ID, 10, 2, 1, nil, nil)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestCreatePredictionDuplicate(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	seedLeague(t, db, 1, "Liga Profesional")
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusNS, date: futureDate(time.Hour)})

	service := NewPredictionService(db)

	_, err := service.Create(user.ID, 10, 2, 1, nil, nil)
	require.NoError(t, err)

	_, err = service.Create(user.ID, 10, 0, 0, nil, nil)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreatePredictionUniqueIndexBackstop(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	seedLeague(t, db, 1, "Liga Profesional")
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusNS, date: futureDate(time.Hour)})

	// Bypass the service pre-check to simulate a concurrent create racing
	// past it; the storage constraint must still reject the second row and
	// come back classified as a duplicate.
	first := models.Prediction{UserID: user.ID, FixtureID: 10, GoalsHome: 1, GoalsAway: 0}
	require.NoError(t, db.Create(&first).Error)

	second := models.Prediction{UserID: user.ID, FixtureID: 10, GoalsHome: 2, GoalsAway: 0}
	err := translateDBError(db.Create(&second).Error)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreatePredictionValidation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	seedLeague(t, db, 1, "Liga Profesional")
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusNS, date: futureDate(time.Hour)})

	service := NewPredictionService(db)

	_, err := service.Create(user.ID, 10, -1, 0, nil, nil)
	assert.ErrorIs(t, err, ErrValidation)

	negative := -2
	_, err = service.Create(user.ID, 10, 1, 0, &negative, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePrediction(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	seedLeague(t, db, 1, "Liga Profesional")
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusNS, date: futureDate(time.Hour)})

	service := NewPredictionService(db)

	_, err := service.Update(user.ID, 10, 1, 1, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound, "update without existing prediction")

	created, err := service.Create(user.ID, 10, 2, 1, nil, nil)
	require.NoError(t, err)

	pens := 4
	updated, err := service.Update(user.ID, 10, 0, 0, &pens, &pens)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 0, updated.GoalsHome)
	assert.Equal(t, 4, *updated.PenaltiesHome)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt) || updated.UpdatedAt.Equal(created.CreatedAt))
}

func TestDeletePrediction(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	seedLeague(t, db, 1, "Liga Profesional")
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusNS, date: futureDate(time.Hour)})

	service := NewPredictionService(db)

	removed, err := service.Delete(user.ID, 10)
	require.NoError(t, err)
	assert.False(t, removed, "deleting a missing prediction is not an error")

	_, err = service.Create(user.ID, 10, 2, 1, nil, nil)
	require.NoError(t, err)

	removed, err = service.Delete(user.ID, 10)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = service.GetByUserAndFixture(user.ID, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePredictionLockedFixture(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	seedLeague(t, db, 1, "Liga Profesional")
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusFT})

	service := NewPredictionService(db)
	_, err := service.Delete(user.ID, 10)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestListForUserFilters(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	seedLeague(t, db, 1, "Liga Profesional")
	seedLeague(t, db, 2, "Premier League")

	round := models.Round{Name: "Regular Season - 1", LeagueID: 1, Season: 2025}
	require.NoError(t, db.Create(&round).Error)

	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, round: "Regular Season - 1", status: models.StatusNS, date: futureDate(time.Hour)})
	seedFixture(t, db, fixtureOpts{id: 11, leagueID: 1, round: "Regular Season - 2", status: models.StatusNS, date: futureDate(time.Hour)})
	seedFixture(t, db, fixtureOpts{id: 20, leagueID: 2, round: "Matchweek 1", status: models.StatusNS, date: futureDate(time.Hour)})

	service := NewPredictionService(db)
	for _, fixtureID := range []uint{10, 11, 20} {
		_, err := service.Create(user.ID, fixtureID, 1, 0, nil, nil)
		require.NoError(t, err)
	}

	all, err := service.ListForUser(user.ID, PredictionFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byLeague, err := service.ListForUser(user.ID, PredictionFilters{LeagueID: 1})
	require.NoError(t, err)
	assert.Len(t, byLeague, 2)

	byFixture, err := service.ListForUser(user.ID, PredictionFilters{FixtureID: 20})
	require.NoError(t, err)
	require.Len(t, byFixture, 1)
	assert.Equal(t, uint(20), byFixture[0].FixtureID)

	byRound, err := service.ListForUser(user.ID, PredictionFilters{RoundID: round.ID})
	require.NoError(t, err)
	require.Len(t, byRound, 1)
	assert.Equal(t, uint(10), byRound[0].FixtureID)

	_, err = service.ListForUser(user.ID, PredictionFilters{RoundID: 999})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	seedLeague(t, db, 1, "Liga Profesional")

	two, one := 2, 1
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusFT, home: &two, away: &one})
	seedFixture(t, db, fixtureOpts{id: 11, leagueID: 1, status: models.StatusNS, date: futureDate(time.Hour)})

	points := 3
	require.NoError(t, db.Create(&models.Prediction{UserID: user.ID, FixtureID: 10, GoalsHome: 2, GoalsAway: 1, Points: &points}).Error)
	require.NoError(t, db.Create(&models.Prediction{UserID: user.ID, FixtureID: 11, GoalsHome: 0, GoalsAway: 0}).Error)

	service := NewPredictionService(db)
	stats, err := service.Stats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalPredictions)
	assert.Equal(t, int64(1), stats.CorrectPredictions)
	assert.Equal(t, int64(3), stats.TotalPoints)
	assert.InDelta(t, 50.0, stats.AccuracyPercentage, 0.01)
}

func TestListForFixture(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedLeague(t, db, 1, "Liga Profesional")
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusNS, date: futureDate(time.Hour)})
	seedFixture(t, db, fixtureOpts{id: 11, leagueID: 1, status: models.StatusNS, date: futureDate(time.Hour)})

	service := NewPredictionService(db)
	_, err := service.Create(alice.ID, 10, 2, 1, nil, nil)
	require.NoError(t, err)
	_, err = service.Create(bob.ID, 10, 0, 0, nil, nil)
	require.NoError(t, err)
	_, err = service.Create(alice.ID, 11, 1, 1, nil, nil)
	require.NoError(t, err)

	predictions, err := service.ListForFixture(10)
	require.NoError(t, err)
	require.Len(t, predictions, 2)
	for _, prediction := range predictions {
		assert.EqualValues(t, 10, prediction.FixtureID)
	}

	predictions, err = service.ListForFixture(999)
	require.NoError(t, err)
	assert.Empty(t, predictions, "unknown fixture yields an empty list")
}

func TestListForFixtureWithUsers(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedLeague(t, db, 1, "Liga Profesional")
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusNS, date: futureDate(time.Hour)})

	service := NewPredictionService(db)
	_, err := service.Create(alice.ID, 10, 2, 1, nil, nil)
	require.NoError(t, err)
	_, err = service.Create(bob.ID, 10, 0, 3, nil, nil)
	require.NoError(t, err)

	rows, err := service.ListForFixtureWithUsers(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := make(map[string]PredictionWithUser, len(rows))
	for _, row := range rows {
		byName[row.Username] = row
	}
	require.Contains(t, byName, "alice")
	require.Contains(t, byName, "bob")
	assert.Equal(t, 2, byName["alice"].GoalsHome)
	assert.Equal(t, 3, byName["bob"].GoalsAway)
}
