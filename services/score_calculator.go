package services

import (
	"errors"
	"log"

	"github.com/SNAndreatta/prode-master/models"

	"gorm.io/gorm"
)

// ScoreCalculator applies the scoring engine across every prediction of a
// finished fixture and persists the computed points.
type ScoreCalculator struct {
	DB     *gorm.DB
	Engine ScoringEngine

	// PenaltyBonus is added when the predicted penalty pair exactly matches
	// the fixture's penalty pair (all four values present).
	PenaltyBonus int
}

func NewScoreCalculator(db *gorm.DB) *ScoreCalculator {
	return &ScoreCalculator{DB: db, Engine: NewScoringEngine(), PenaltyBonus: 3}
}

// ScoreSummary reports the outcome of a scoring pass.
type ScoreSummary struct {
	FixtureID        uint `json:"fixture_id"`
	TotalPredictions int  `json:"total_predictions"`
	ScoresCalculated int  `json:"scores_calculated"`
	ExactScores      int  `json:"exact_scores"`
	CorrectWinners   int  `json:"correct_winners"`
	PenaltyBonuses   int  `json:"penalty_bonuses"`
}

func penaltyPairMatches(prediction *models.Prediction, fixture *models.Fixture) bool {
	if prediction.PenaltiesHome == nil || prediction.PenaltiesAway == nil {
		return false
	}
	if fixture.HomePensScore == nil || fixture.AwayPensScore == nil {
		return false
	}
	return *prediction.PenaltiesHome == *fixture.HomePensScore &&
		*prediction.PenaltiesAway == *fixture.AwayPensScore
}

// CalculateAndPersist scores every prediction for a finished fixture inside
// one transaction. Recomputation overwrites prior values, so calling it
// twice on an unchanged fixture is a no-op for the stored points.
func (c *ScoreCalculator) CalculateAndPersist(fixtureID uint) (*ScoreSummary, error) {
	var fixture models.Fixture
	if err := c.DB.First(&fixture, fixtureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, translateDBError(err)
	}

	if !fixture.Status.IsFinished() {
		return nil, ErrNotReady
	}

	var predictions []models.Prediction
	if err := c.DB.Where("fixture_id = ?", fixtureID).Find(&predictions).Error; err != nil {
		return nil, translateDBError(err)
	}

	summary := ScoreSummary{FixtureID: fixtureID, TotalPredictions: len(predictions)}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		for i := range predictions {
			prediction := &predictions[i]

			points, reason := c.Engine.Score(
				prediction.GoalsHome, prediction.GoalsAway,
				intOrZero(fixture.HomeTeamScore), intOrZero(fixture.AwayTeamScore),
			)

			switch reason {
			case ReasonExact:
				summary.ExactScores++
			case ReasonWinner:
				summary.CorrectWinners++
			}

			if penaltyPairMatches(prediction, &fixture) {
				points += c.PenaltyBonus
				summary.PenaltyBonuses++
			}

			if err := tx.Model(&models.Prediction{}).
				Where("id = ?", prediction.ID).
				Update("points", points).Error; err != nil {
				return err
			}

			summary.ScoresCalculated++
			log.Printf("[SCORING] User %d scored %d points (%s) for fixture %d", prediction.UserID, points, reason, fixtureID)
		}
		return nil
	})
	if err != nil {
		return nil, translateDBError(err)
	}

	log.Printf("[SCORING] Fixture %d: %d predictions scored (%d exact, %d winner, %d penalty bonus)",
		fixtureID, summary.ScoresCalculated, summary.ExactScores, summary.CorrectWinners, summary.PenaltyBonuses)
	return &summary, nil
}
