package services

import (
	"errors"
	"log"

	"github.com/SNAndreatta/prode-master/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TournamentService owns tournament CRUD and the participant set.
type TournamentService struct {
	DB *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{DB: db}
}

// Create persists a tournament, verifying the league exists, and joins the
// creator as its first participant.
func (s *TournamentService) Create(tournament *models.Tournament) error {
	var league models.League
	if err := s.DB.First(&league, tournament.LeagueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return translateDBError(err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tournament).Error; err != nil {
			return err
		}
		participant := models.TournamentParticipant{
			TournamentID: tournament.ID,
			UserID:       tournament.CreatorID,
		}
		return tx.Create(&participant).Error
	})
	if err != nil {
		return translateDBError(err)
	}

	log.Printf("[TOURNAMENT] Created tournament %d (%s) by user %d", tournament.ID, tournament.Name, tournament.CreatorID)
	return nil
}

// GetByID fetches a tournament or ErrNotFound.
func (s *TournamentService) GetByID(tournamentID uint) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := s.DB.First(&tournament, tournamentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, translateDBError(err)
	}
	return &tournament, nil
}

// ListPublic returns public tournaments, optionally filtered by league.
func (s *TournamentService) ListPublic(leagueID uint) ([]models.Tournament, error) {
	query := s.DB.Where("is_public = ?", true)
	if leagueID != 0 {
		query = query.Where("league_id = ?", leagueID)
	}

	var tournaments []models.Tournament
	if err := query.Find(&tournaments).Error; err != nil {
		return nil, translateDBError(err)
	}
	return tournaments, nil
}

// ListByCreator returns tournaments created by a user.
func (s *TournamentService) ListByCreator(creatorID uint) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	if err := s.DB.Where("creator_id = ?", creatorID).Find(&tournaments).Error; err != nil {
		return nil, translateDBError(err)
	}
	return tournaments, nil
}

// TournamentUpdate carries optional field overrides for Update.
type TournamentUpdate struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	IsPublic        *bool   `json:"is_public"`
	MaxParticipants *int    `json:"max_participants"`
}

// Update applies a partial update; only the creator may modify a tournament.
func (s *TournamentService) Update(tournamentID, userID uint, update TournamentUpdate) (*models.Tournament, error) {
	tournament, err := s.GetByID(tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.CreatorID != userID {
		return nil, ErrValidation
	}

	if update.Name != nil {
		tournament.Name = *update.Name
	}
	if update.Description != nil {
		tournament.Description = *update.Description
	}
	if update.IsPublic != nil {
		tournament.IsPublic = *update.IsPublic
	}
	if update.MaxParticipants != nil {
		tournament.MaxParticipants = *update.MaxParticipants
	}

	if err := s.DB.Save(tournament).Error; err != nil {
		return nil, translateDBError(err)
	}
	return tournament, nil
}

// Delete removes a tournament and, through the cascade, its participants.
// Only the creator may delete.
func (s *TournamentService) Delete(tournamentID, userID uint) error {
	tournament, err := s.GetByID(tournamentID)
	if err != nil {
		return err
	}
	if tournament.CreatorID != userID {
		return ErrValidation
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tournament_id = ?", tournamentID).Delete(&models.TournamentParticipant{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Tournament{}, tournamentID).Error
	})
	if err != nil {
		return translateDBError(err)
	}

	log.Printf("[TOURNAMENT] Deleted tournament %d by user %d", tournamentID, userID)
	return nil
}

// Join adds a user to a tournament, rejecting duplicates and full rosters.
// The tournament row is locked for the duration of the transaction so two
// joins racing for the last free slot serialize on the capacity check; the
// unique participant index backstops duplicate races.
func (s *TournamentService) Join(tournamentID, userID uint) (*models.TournamentParticipant, error) {
	participant := models.TournamentParticipant{
		TournamentID: tournamentID,
		UserID:       userID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var tournament models.Tournament
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tournament, tournamentID).Error; err != nil {
			return translateDBError(err)
		}

		var existing int64
		if err := tx.Model(&models.TournamentParticipant{}).
			Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
			Count(&existing).Error; err != nil {
			return translateDBError(err)
		}
		if existing > 0 {
			return ErrDuplicate
		}

		var count int64
		if err := tx.Model(&models.TournamentParticipant{}).
			Where("tournament_id = ?", tournamentID).
			Count(&count).Error; err != nil {
			return translateDBError(err)
		}
		if count >= int64(tournament.MaxParticipants) {
			return ErrValidation
		}

		if err := tx.Create(&participant).Error; err != nil {
			return translateDBError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[TOURNAMENT] User %d joined tournament %d", userID, tournamentID)
	return &participant, nil
}

// Leave removes a user from a tournament. Returns false when the user was
// not a participant.
func (s *TournamentService) Leave(tournamentID, userID uint) (bool, error) {
	result := s.DB.Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		Delete(&models.TournamentParticipant{})
	if result.Error != nil {
		return false, translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	log.Printf("[TOURNAMENT] User %d left tournament %d", userID, tournamentID)
	return true, nil
}

// RemoveParticipant lets the creator kick a participant.
func (s *TournamentService) RemoveParticipant(tournamentID, creatorID, targetUserID uint) (bool, error) {
	tournament, err := s.GetByID(tournamentID)
	if err != nil {
		return false, err
	}
	if tournament.CreatorID != creatorID {
		return false, ErrValidation
	}
	if targetUserID == creatorID {
		return false, ErrValidation
	}

	return s.Leave(tournamentID, targetUserID)
}

// IsParticipant reports whether a user belongs to a tournament.
func (s *TournamentService) IsParticipant(tournamentID, userID uint) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.TournamentParticipant{}).
		Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		Count(&count).Error; err != nil {
		return false, translateDBError(err)
	}
	return count > 0, nil
}

// Participants lists a tournament's participant records with users loaded.
func (s *TournamentService) Participants(tournamentID uint) ([]models.TournamentParticipant, error) {
	var participants []models.TournamentParticipant
	if err := s.DB.Preload("User").
		Where("tournament_id = ?", tournamentID).
		Order("joined_at asc").
		Find(&participants).Error; err != nil {
		return nil, translateDBError(err)
	}
	return participants, nil
}

// CanViewLeaderboard enforces the visibility rule: public tournaments are
// open; private ones admit only the creator or a participant.
func (s *TournamentService) CanViewLeaderboard(tournament *models.Tournament, userID uint) (bool, error) {
	if tournament.IsPublic {
		return true, nil
	}
	if userID == 0 {
		return false, nil
	}
	if tournament.CreatorID == userID {
		return true, nil
	}
	return s.IsParticipant(tournament.ID, userID)
}
