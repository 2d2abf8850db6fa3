package services

import (
	"errors"
	"log"
	"time"

	"github.com/SNAndreatta/prode-master/models"

	"gorm.io/gorm"
)

// PredictionService mediates all prediction mutation with the fixture lock
// policy and the one-prediction-per-user-per-fixture invariant. Reads are
// never lock-checked.
type PredictionService struct {
	DB *gorm.DB

	// Now is the clock used for lock checks, overridable in tests.
	Now func() time.Time
}

func NewPredictionService(db *gorm.DB) *PredictionService {
	return &PredictionService{DB: db, Now: time.Now}
}

// PredictionFilters narrows ListForUser. Zero values mean "no filter".
// FixtureID wins over round/league filters, matching the API contract.
type PredictionFilters struct {
	RoundID   uint
	LeagueID  uint
	FixtureID uint
}

func (s *PredictionService) getFixture(fixtureID uint) (*models.Fixture, error) {
	var fixture models.Fixture
	if err := s.DB.First(&fixture, fixtureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, translateDBError(err)
	}
	return &fixture, nil
}

func validateGoals(goalsHome, goalsAway int, pensHome, pensAway *int) error {
	if goalsHome < 0 || goalsAway < 0 {
		return ErrValidation
	}
	if pensHome != nil && *pensHome < 0 {
		return ErrValidation
	}
	if pensAway != nil && *pensAway < 0 {
		return ErrValidation
	}
	return nil
}

// Create persists a new prediction for an unlocked fixture. Returns
// ErrNotFound when the fixture is absent, ErrLocked once it has started,
// and ErrDuplicate when a prediction for the pair already exists; the
// unique index catches races the pre-check misses.
func (s *PredictionService) Create(userID, fixtureID uint, goalsHome, goalsAway int, pensHome, pensAway *int) (*models.Prediction, error) {
	if err := validateGoals(goalsHome, goalsAway, pensHome, pensAway); err != nil {
		return nil, err
	}

	fixture, err := s.getFixture(fixtureID)
	if err != nil {
		return nil, err
	}
	if fixture.IsLocked(s.Now()) {
		return nil, ErrLocked
	}

	if existing, err := s.GetByUserAndFixture(userID, fixtureID); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, ErrDuplicate
	}

	prediction := models.Prediction{
		UserID:        userID,
		FixtureID:     fixtureID,
		GoalsHome:     goalsHome,
		GoalsAway:     goalsAway,
		PenaltiesHome: pensHome,
		PenaltiesAway: pensAway,
	}

	if err := s.DB.Create(&prediction).Error; err != nil {
		return nil, translateDBError(err)
	}

	log.Printf("[PREDICTION] Created for user %d on fixture %d: %d-%d", userID, fixtureID, goalsHome, goalsAway)
	return &prediction, nil
}

// Update overwrites the goal and penalty fields of an existing prediction,
// subject to the same fixture lock checks as Create.
func (s *PredictionService) Update(userID, fixtureID uint, goalsHome, goalsAway int, pensHome, pensAway *int) (*models.Prediction, error) {
	if err := validateGoals(goalsHome, goalsAway, pensHome, pensAway); err != nil {
		return nil, err
	}

	fixture, err := s.getFixture(fixtureID)
	if err != nil {
		return nil, err
	}
	if fixture.IsLocked(s.Now()) {
		return nil, ErrLocked
	}

	prediction, err := s.GetByUserAndFixture(userID, fixtureID)
	if err != nil {
		return nil, err
	}

	prediction.GoalsHome = goalsHome
	prediction.GoalsAway = goalsAway
	prediction.PenaltiesHome = pensHome
	prediction.PenaltiesAway = pensAway

	if err := s.DB.Save(prediction).Error; err != nil {
		return nil, translateDBError(err)
	}

	log.Printf("[PREDICTION] Updated for user %d on fixture %d: %d-%d", userID, fixtureID, goalsHome, goalsAway)
	return prediction, nil
}

// Delete removes a prediction while the fixture is unlocked. Returns false
// without error when no prediction existed.
func (s *PredictionService) Delete(userID, fixtureID uint) (bool, error) {
	fixture, err := s.getFixture(fixtureID)
	if err != nil {
		return false, err
	}
	if fixture.IsLocked(s.Now()) {
		return false, ErrLocked
	}

	result := s.DB.Unscoped().
		Where("user_id = ? AND fixture_id = ?", userID, fixtureID).
		Delete(&models.Prediction{})
	if result.Error != nil {
		return false, translateDBError(result.Error)
	}

	if result.RowsAffected == 0 {
		log.Printf("[PREDICTION] No prediction to delete for user %d on fixture %d", userID, fixtureID)
		return false, nil
	}

	log.Printf("[PREDICTION] Deleted for user %d on fixture %d", userID, fixtureID)
	return true, nil
}

// GetByUserAndFixture fetches the single prediction for a (user, fixture)
// pair, or ErrNotFound.
func (s *PredictionService) GetByUserAndFixture(userID, fixtureID uint) (*models.Prediction, error) {
	var prediction models.Prediction
	err := s.DB.Where("user_id = ? AND fixture_id = ?", userID, fixtureID).First(&prediction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, translateDBError(err)
	}
	return &prediction, nil
}

// ListForUser returns a user's predictions, optionally narrowed by fixture,
// round or league.
func (s *PredictionService) ListForUser(userID uint, filters PredictionFilters) ([]models.Prediction, error) {
	query := s.DB.Where("predictions.user_id = ?", userID)

	if filters.FixtureID != 0 {
		query = query.Where("predictions.fixture_id = ?", filters.FixtureID)
	} else if filters.RoundID != 0 {
		var round models.Round
		if err := s.DB.First(&round, filters.RoundID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, translateDBError(err)
		}
		query = query.
			Joins("JOIN fixtures ON fixtures.id = predictions.fixture_id").
			Where("fixtures.league_id = ? AND fixtures.round = ?", round.LeagueID, round.Name)
	} else if filters.LeagueID != 0 {
		query = query.
			Joins("JOIN fixtures ON fixtures.id = predictions.fixture_id").
			Where("fixtures.league_id = ?", filters.LeagueID)
	}

	var predictions []models.Prediction
	if err := query.Find(&predictions).Error; err != nil {
		return nil, translateDBError(err)
	}
	return predictions, nil
}

// ListForFixture returns every prediction recorded for a fixture.
func (s *PredictionService) ListForFixture(fixtureID uint) ([]models.Prediction, error) {
	var predictions []models.Prediction
	if err := s.DB.Where("fixture_id = ?", fixtureID).Find(&predictions).Error; err != nil {
		return nil, translateDBError(err)
	}
	return predictions, nil
}

// PredictionWithUser pairs a prediction with its author's username, for
// admin listings.
type PredictionWithUser struct {
	models.Prediction
	Username string `json:"username"`
}

// ListForFixtureWithUsers returns every prediction for a fixture together
// with the predicting user's name.
func (s *PredictionService) ListForFixtureWithUsers(fixtureID uint) ([]PredictionWithUser, error) {
	var rows []PredictionWithUser
	if err := s.DB.Model(&models.Prediction{}).
		Select("predictions.*, users.username AS username").
		Joins("JOIN users ON users.id = predictions.user_id").
		Where("predictions.fixture_id = ?", fixtureID).
		Scan(&rows).Error; err != nil {
		return nil, translateDBError(err)
	}
	return rows, nil
}

// PredictionStats summarizes a user's prediction record.
type PredictionStats struct {
	TotalPredictions   int64   `json:"total_predictions"`
	CorrectPredictions int64   `json:"correct_predictions"`
	AccuracyPercentage float64 `json:"accuracy_percentage"`
	TotalPoints        int64   `json:"total_points"`
}

// Stats computes aggregate prediction figures for a user. Correct means the
// exact goal pair matched on a finished fixture.
func (s *PredictionService) Stats(userID uint) (*PredictionStats, error) {
	stats := PredictionStats{}

	if err := s.DB.Model(&models.Prediction{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalPredictions).Error; err != nil {
		return nil, translateDBError(err)
	}

	if err := s.DB.Model(&models.Prediction{}).
		Joins("JOIN fixtures ON fixtures.id = predictions.fixture_id").
		Where("predictions.user_id = ?", userID).
		Where("fixtures.status IN ?", []models.FixtureStatus{models.StatusFT, models.StatusAET, models.StatusPEN}).
		Where("predictions.goals_home = fixtures.home_team_score AND predictions.goals_away = fixtures.away_team_score").
		Count(&stats.CorrectPredictions).Error; err != nil {
		return nil, translateDBError(err)
	}

	var totalPoints *int64
	if err := s.DB.Model(&models.Prediction{}).
		Where("user_id = ?", userID).
		Select("SUM(points)").
		Scan(&totalPoints).Error; err != nil {
		return nil, translateDBError(err)
	}
	if totalPoints != nil {
		stats.TotalPoints = *totalPoints
	}

	if stats.TotalPredictions > 0 {
		stats.AccuracyPercentage = float64(stats.CorrectPredictions) / float64(stats.TotalPredictions) * 100
	}

	return &stats, nil
}
