package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
)

// VoteResult is the outcome of a cast: either the surviving vote row, or
// Removed when the call toggled an identical vote off.
type VoteResult struct {
	Vote    *models.Vote `json:"vote,omitempty"`
	Removed bool         `json:"removed,omitempty"`
}

// CastVote records, flips or removes a vote by userID on the given
// target, adjusting the target's derived vote counter by the matching
// delta in the same transaction:
//
//   - no prior vote: insert, counter ±1
//   - prior vote of the same type: delete, reverse its contribution
//   - prior vote of the opposite type: update, counter ±2
func (s *Store) CastVote(userID int, targetType string, targetID int, voteType string) (*VoteResult, error) {
	if targetType != models.TargetQuestion && targetType != models.TargetAnswer {
		return nil, fmt.Errorf("%w: unknown target type %q", ErrValidation, targetType)
	}
	if voteType != models.VoteUp && voteType != models.VoteDown {
		return nil, fmt.Errorf("%w: unknown vote type %q", ErrValidation, voteType)
	}

	var result VoteResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := targetExists(tx, targetType, targetID); err != nil {
			return err
		}

		var existing models.Vote
		err := tx.Where("user_id = ? AND target_type = ? AND target_id = ?",
			userID, targetType, targetID).First(&existing).Error

		switch {
		case err == nil && existing.VoteType == voteType:
			// Same vote - remove it (toggle off)
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			result.Removed = true
			return adjustVoteCount(tx, targetType, targetID, -contribution(voteType))

		case err == nil:
			// Different vote - flip it; the counter moves by the signed
			// difference between the new and old contributions (±2).
			delta := contribution(voteType) - contribution(existing.VoteType)
			if err := tx.Model(&existing).Update("vote_type", voteType).Error; err != nil {
				return err
			}
			existing.VoteType = voteType
			result.Vote = &existing
			return adjustVoteCount(tx, targetType, targetID, delta)

		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{
				UserID:     userID,
				TargetType: targetType,
				TargetID:   targetID,
				VoteType:   voteType,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			result.Vote = &vote
			return adjustVoteCount(tx, targetType, targetID, contribution(voteType))

		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UserVote returns the caller's vote on a target, or nil when none exists.
func (s *Store) UserVote(userID int, targetType string, targetID int) (*models.Vote, error) {
	var vote models.Vote
	err := s.db.Where("user_id = ? AND target_type = ? AND target_id = ?",
		userID, targetType, targetID).First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func contribution(voteType string) int {
	if voteType == models.VoteUp {
		return 1
	}
	return -1
}

// adjustVoteCount applies a server-side increment so concurrent votes on
// the same target never lose updates.
func adjustVoteCount(tx *gorm.DB, targetType string, targetID, delta int) error {
	switch targetType {
	case models.TargetQuestion:
		return tx.Model(&models.Question{}).Where("id = ?", targetID).
			UpdateColumn("votes", gorm.Expr("votes + ?", delta)).Error
	case models.TargetAnswer:
		return tx.Model(&models.Answer{}).Where("id = ?", targetID).
			UpdateColumn("votes", gorm.Expr("votes + ?", delta)).Error
	}
	return fmt.Errorf("%w: unknown target type %q", ErrValidation, targetType)
}

func targetExists(tx *gorm.DB, targetType string, targetID int) error {
	var count int64
	var err error
	switch targetType {
	case models.TargetQuestion:
		err = tx.Model(&models.Question{}).Where("id = ?", targetID).Count(&count).Error
	case models.TargetAnswer:
		err = tx.Model(&models.Answer{}).Where("id = ?", targetID).Count(&count).Error
	}
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s %d", ErrNotFound, targetType, targetID)
	}
	return nil
}
