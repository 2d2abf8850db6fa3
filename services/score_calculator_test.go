package services

import (
	"testing"
	"time"

	"github.com/SNAndreatta/prode-master/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAndPersistNotFound(t *testing.T) {
	db := newTestDB(t)
	calculator := NewScoreCalculator(db)

	_, err := calculator.CalculateAndPersist(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCalculateAndPersistNotReady(t *testing.T) {
	db := newTestDB(t)
	seedLeague(t, db, 1, "Liga Profesional")

	for i, status := range []models.FixtureStatus{models.StatusNS, models.Status1H, models.StatusHT, models.StatusLIVE, models.StatusPST} {
		fixture := seedFixture(t, db, fixtureOpts{id: uint(100 + i), leagueID: 1, status: status})
		calculator := NewScoreCalculator(db)
		_, err := calculator.CalculateAndPersist(fixture.ID)
		assert.ErrorIs(t, err, ErrNotReady, "status %s", status)
	}
}

// Spec scenario: fixture finishes 2-1; A predicted 2-1 (exact), B predicted
// 3-2 (same home-win outcome), C predicted 1-2 (wrong).
func TestCalculateAndPersistEndToEnd(t *testing.T) {
	db := newTestDB(t)
	seedLeague(t, db, 1, "Liga Profesional")

	two, one := 2, 1
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusFT, home: &two, away: &one})

	userA := seedUser(t, db, "alice")
	userB := seedUser(t, db, "bob")
	userC := seedUser(t, db, "carol")

	require.NoError(t, db.Create(&models.Prediction{UserID: userA.ID, FixtureID: 10, GoalsHome: 2, GoalsAway: 1}).Error)
	require.NoError(t, db.Create(&models.Prediction{UserID: userB.ID, FixtureID: 10, GoalsHome: 3, GoalsAway: 2}).Error)
	require.NoError(t, db.Create(&models.Prediction{UserID: userC.ID, FixtureID: 10, GoalsHome: 1, GoalsAway: 2}).Error)

	calculator := NewScoreCalculator(db)
	summary, err := calculator.CalculateAndPersist(10)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalPredictions)
	assert.Equal(t, 3, summary.ScoresCalculated)
	assert.Equal(t, 1, summary.ExactScores)
	assert.Equal(t, 1, summary.CorrectWinners)
	assert.Equal(t, 0, summary.PenaltyBonuses)

	expected := map[uint]int{userA.ID: 3, userB.ID: 1, userC.ID: 0}
	var predictions []models.Prediction
	require.NoError(t, db.Where("fixture_id = ?", 10).Find(&predictions).Error)
	require.Len(t, predictions, 3)
	for _, prediction := range predictions {
		require.NotNil(t, prediction.Points)
		assert.Equal(t, expected[prediction.UserID], *prediction.Points, "user %d", prediction.UserID)
	}
}

func TestCalculateAndPersistPenaltyBonus(t *testing.T) {
	db := newTestDB(t)
	seedLeague(t, db, 1, "Copa Argentina")

	one, pensFive, pensFour := 1, 5, 4
	seedFixture(t, db, fixtureOpts{
		id: 10, leagueID: 1, status: models.StatusPEN,
		home: &one, away: &one, pensHome: &pensFive, pensAway: &pensFour,
	})

	userA := seedUser(t, db, "alice")
	userB := seedUser(t, db, "bob")
	userC := seedUser(t, db, "carol")

	// Exact score and exact penalty pair: 3 + 3.
	require.NoError(t, db.Create(&models.Prediction{
		UserID: userA.ID, FixtureID: 10, GoalsHome: 1, GoalsAway: 1,
		PenaltiesHome: &pensFive, PenaltiesAway: &pensFour,
	}).Error)
	// Exact score, wrong penalty pair: 3.
	wrongPens := 3
	require.NoError(t, db.Create(&models.Prediction{
		UserID: userB.ID, FixtureID: 10, GoalsHome: 1, GoalsAway: 1,
		PenaltiesHome: &wrongPens, PenaltiesAway: &pensFour,
	}).Error)
	// Exact score, no penalty prediction: 3.
	require.NoError(t, db.Create(&models.Prediction{
		UserID: userC.ID, FixtureID: 10, GoalsHome: 1, GoalsAway: 1,
	}).Error)

	calculator := NewScoreCalculator(db)
	summary, err := calculator.CalculateAndPersist(10)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.PenaltyBonuses)

	expected := map[uint]int{userA.ID: 6, userB.ID: 3, userC.ID: 3}
	var predictions []models.Prediction
	require.NoError(t, db.Where("fixture_id = ?", 10).Find(&predictions).Error)
	for _, prediction := range predictions {
		require.NotNil(t, prediction.Points)
		assert.Equal(t, expected[prediction.UserID], *prediction.Points, "user %d", prediction.UserID)
	}
}

func TestCalculateAndPersistIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedLeague(t, db, 1, "Liga Profesional")

	two, zero := 2, 0
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusFT, home: &two, away: &zero})

	user := seedUser(t, db, "alice")
	require.NoError(t, db.Create(&models.Prediction{UserID: user.ID, FixtureID: 10, GoalsHome: 2, GoalsAway: 0}).Error)

	calculator := NewScoreCalculator(db)

	first, err := calculator.CalculateAndPersist(10)
	require.NoError(t, err)
	second, err := calculator.CalculateAndPersist(10)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	var prediction models.Prediction
	require.NoError(t, db.Where("user_id = ? AND fixture_id = ?", user.ID, 10).First(&prediction).Error)
	require.NotNil(t, prediction.Points)
	assert.Equal(t, 3, *prediction.Points, "points overwritten, not accumulated")
}

func TestCalculateAndPersistFinishedAfterExtraTime(t *testing.T) {
	db := newTestDB(t)
	seedLeague(t, db, 1, "Copa Libertadores")

	three, two := 3, 2
	date := time.Now().UTC().Add(-3 * time.Hour)
	seedFixture(t, db, fixtureOpts{id: 10, leagueID: 1, status: models.StatusAET, date: &date, home: &three, away: &two})

	user := seedUser(t, db, "alice")
	require.NoError(t, db.Create(&models.Prediction{UserID: user.ID, FixtureID: 10, GoalsHome: 1, GoalsAway: 0}).Error)

	calculator := NewScoreCalculator(db)
	summary, err := calculator.CalculateAndPersist(10)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CorrectWinners)
}
