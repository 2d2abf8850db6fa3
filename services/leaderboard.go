package services

import (
	"sort"

	"github.com/SNAndreatta/prode-master/models"

	"gorm.io/gorm"
)

// LeaderboardService folds each tournament participant's scored predictions
// into ranked totals.
type LeaderboardService struct {
	DB *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{DB: db}
}

// Standing is one participant's row in a tournament leaderboard.
type Standing struct {
	UserID             uint   `json:"user_id"`
	Username           string `json:"username"`
	Points             int    `json:"points"`
	CorrectPredictions int    `json:"correct_predictions"`
	TotalPredictions   int    `json:"total_predictions"`
	Rank               int    `json:"rank"`
}

// Leaderboard ranks the tournament's participants by prediction points over
// the tournament's league. Unscored predictions count zero points; the
// correct-predictions column counts raw goal-pair exactness against the
// fixture result whether or not scoring has run. Ordering: points desc,
// then correct predictions desc, ties keep join order.
func (s *LeaderboardService) Leaderboard(tournament *models.Tournament) ([]Standing, error) {
	var participants []models.TournamentParticipant
	if err := s.DB.Preload("User").
		Where("tournament_id = ?", tournament.ID).
		Order("joined_at asc").
		Find(&participants).Error; err != nil {
		return nil, translateDBError(err)
	}

	standings := make([]Standing, 0, len(participants))

	for _, participant := range participants {
		var predictions []models.Prediction
		if err := s.DB.Preload("Fixture").
			Joins("JOIN fixtures ON fixtures.id = predictions.fixture_id").
			Where("predictions.user_id = ? AND fixtures.league_id = ?", participant.UserID, tournament.LeagueID).
			Find(&predictions).Error; err != nil {
			return nil, translateDBError(err)
		}

		standing := Standing{
			UserID:           participant.UserID,
			Username:         participant.User.Username,
			TotalPredictions: len(predictions),
		}

		for i := range predictions {
			prediction := &predictions[i]
			if prediction.Points != nil {
				standing.Points += *prediction.Points
			}
			if prediction.Fixture.HasResult() &&
				prediction.GoalsHome == *prediction.Fixture.HomeTeamScore &&
				prediction.GoalsAway == *prediction.Fixture.AwayTeamScore {
				standing.CorrectPredictions++
			}
		}

		standings = append(standings, standing)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return standings[i].CorrectPredictions > standings[j].CorrectPredictions
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings, nil
}
