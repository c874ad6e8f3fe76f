package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
)

// MaxQuestionTags caps how many tags a question may carry.
const MaxQuestionTags = 5

// Question sort orders accepted by Questions.
const (
	SortNewest     = "newest"
	SortActive     = "active"
	SortUnanswered = "unanswered"
	SortVotes      = "votes"
)

// XP awards applied inside the corresponding write transactions.
const (
	xpAskQuestion    = 10
	xpProvideAnswer  = 15
	xpAnswerAccepted = 25
)

// CreateQuestion inserts the question, resolves its tags and links them,
// all in one transaction. Existing tags get their question count bumped
// with a server-side increment; new tags start at 1. A question never
// exists with partial tag associations.
func (s *Store) CreateQuestion(question *models.Question, tagNames []string) (*models.QuestionWithDetails, error) {
	if strings.TrimSpace(question.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(question.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	names := NormalizeTagNames(tagNames)
	if len(names) > MaxQuestionTags {
		return nil, fmt.Errorf("%w: at most %d tags allowed", ErrValidation, MaxQuestionTags)
	}

	var details *models.QuestionWithDetails
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}

		for _, name := range names {
			var tag models.Tag
			err := tx.Where("name = ?", name).First(&tag).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				tag = models.Tag{Name: name, Color: randomTagColor(), QuestionCount: 1}
				if err := tx.Create(&tag).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				if err := tx.Model(&models.Tag{}).Where("id = ?", tag.ID).
					UpdateColumn("question_count", gorm.Expr("question_count + 1")).Error; err != nil {
					return err
				}
			}

			link := models.QuestionTag{QuestionID: question.ID, TagID: tag.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		if err := addXP(tx, question.AuthorID, xpAskQuestion); err != nil {
			return err
		}

		var err error
		details, err = questionByID(tx, question.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

// Questions returns a page of questions with author, tags and answer
// counts. Tags and counts are batch-fetched for the whole page rather
// than queried per question.
func (s *Store) Questions(limit, offset int, sortBy string) ([]models.QuestionWithDetails, error) {
	if limit <= 0 {
		limit = 20
	}

	query := s.db.Preload("Author").Limit(limit).Offset(offset)
	switch sortBy {
	case SortVotes:
		query = query.Order("votes desc")
	case SortActive:
		query = query.Order("updated_at desc")
	case SortUnanswered:
		query = query.Where("accepted_answer_id IS NULL").Order("created_at desc")
	default:
		query = query.Order("created_at desc")
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return []models.QuestionWithDetails{}, nil
	}

	ids := make([]int, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	tagsByQuestion, err := s.tagsForQuestions(s.db, ids)
	if err != nil {
		return nil, err
	}

	countsByQuestion, err := s.answerCounts(ids)
	if err != nil {
		return nil, err
	}

	results := make([]models.QuestionWithDetails, len(questions))
	for i, q := range questions {
		tags := tagsByQuestion[q.ID]
		if tags == nil {
			tags = []models.Tag{}
		}
		results[i] = models.QuestionWithDetails{
			Question:    q,
			Tags:        tags,
			AnswerCount: countsByQuestion[q.ID],
		}
	}
	return results, nil
}

// QuestionByID returns the full question aggregate, including the
// accepted answer with its author when one is set.
func (s *Store) QuestionByID(id int) (*models.QuestionWithDetails, error) {
	return questionByID(s.db, id)
}

func questionByID(tx *gorm.DB, id int) (*models.QuestionWithDetails, error) {
	var question models.Question
	if err := tx.Preload("Author").First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %d", ErrNotFound, id)
		}
		return nil, err
	}

	var links []models.QuestionTag
	if err := tx.Where("question_id = ?", id).Find(&links).Error; err != nil {
		return nil, err
	}
	tags := []models.Tag{}
	if len(links) > 0 {
		tagIDs := make([]int, len(links))
		for i, link := range links {
			tagIDs[i] = link.TagID
		}
		if err := tx.Where("id IN ?", tagIDs).Order("name asc").Find(&tags).Error; err != nil {
			return nil, err
		}
	}

	var answerCount int64
	if err := tx.Model(&models.Answer{}).Where("question_id = ?", id).Count(&answerCount).Error; err != nil {
		return nil, err
	}

	details := &models.QuestionWithDetails{
		Question:    question,
		Tags:        tags,
		AnswerCount: int(answerCount),
	}

	if question.AcceptedAnswerID != nil {
		var accepted models.Answer
		err := tx.Preload("Author").First(&accepted, *question.AcceptedAnswerID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			details.AcceptedAnswer = &accepted
		}
	}
	return details, nil
}

// IncrementQuestionViews bumps the view counter additively; concurrent
// increments never overwrite each other.
func (s *Store) IncrementQuestionViews(id int) error {
	return s.db.Model(&models.Question{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// AcceptAnswer marks the answer as the question's accepted one. Only the
// question's author may accept. A previously accepted answer has its
// flag cleared, so at most one answer per question stays accepted.
// Accepting the already-accepted answer is a no-op and does not re-emit
// a notification.
func (s *Store) AcceptAnswer(questionID, answerID, userID int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: question %d", ErrNotFound, questionID)
			}
			return err
		}
		if question.AuthorID != userID {
			return fmt.Errorf("%w: only the question author can accept an answer", ErrUnauthorized)
		}

		var answer models.Answer
		if err := tx.First(&answer, answerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: answer %d", ErrNotFound, answerID)
			}
			return err
		}
		if answer.QuestionID != questionID {
			return fmt.Errorf("%w: answer %d does not belong to question %d", ErrNotFound, answerID, questionID)
		}

		// Already accepted: nothing to do, and no duplicate notification.
		if question.AcceptedAnswerID != nil && *question.AcceptedAnswerID == answerID {
			return nil
		}

		// Re-acceptance clears the previous answer's flag first.
		if question.AcceptedAnswerID != nil {
			if err := tx.Model(&models.Answer{}).
				Where("id = ? AND question_id = ?", *question.AcceptedAnswerID, questionID).
				Update("is_accepted", false).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Question{}).Where("id = ?", questionID).
			Update("accepted_answer_id", answerID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Answer{}).Where("id = ?", answerID).
			Update("is_accepted", true).Error; err != nil {
			return err
		}

		if answer.AuthorID != question.AuthorID {
			if err := addXP(tx, answer.AuthorID, xpAnswerAccepted); err != nil {
				return err
			}
		}

		return emitAnswerAccepted(tx, AnswerAcceptedEvent{
			QuestionAuthorID: question.AuthorID,
			Answer:           answer,
		})
	})
}

// NormalizeTagNames trims, lowercases and dedupes tag names, dropping
// empties. Order of first appearance is preserved.
func NormalizeTagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}

func (s *Store) tagsForQuestions(tx *gorm.DB, questionIDs []int) (map[int][]models.Tag, error) {
	var links []models.QuestionTag
	if err := tx.Where("question_id IN ?", questionIDs).Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return map[int][]models.Tag{}, nil
	}

	tagIDs := make([]int, 0, len(links))
	for _, link := range links {
		tagIDs = append(tagIDs, link.TagID)
	}
	var tags []models.Tag
	if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
		return nil, err
	}
	tagByID := make(map[int]models.Tag, len(tags))
	for _, tag := range tags {
		tagByID[tag.ID] = tag
	}

	result := make(map[int][]models.Tag, len(questionIDs))
	for _, link := range links {
		if tag, ok := tagByID[link.TagID]; ok {
			result[link.QuestionID] = append(result[link.QuestionID], tag)
		}
	}
	return result, nil
}

func (s *Store) answerCounts(questionIDs []int) (map[int]int, error) {
	var rows []struct {
		QuestionID int
		Count      int
	}
	err := s.db.Model(&models.Answer{}).
		Select("question_id, count(*) as count").
		Where("question_id IN ?", questionIDs).
		Group("question_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.QuestionID] = row.Count
	}
	return counts, nil
}
