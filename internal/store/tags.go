package store

import (
	"math/rand"
	"strings"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
)

func (s *Store) Tags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("name asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

func (s *Store) PopularTags(limit int) ([]models.Tag, error) {
	if limit <= 0 {
		limit = 10
	}
	var tags []models.Tag
	if err := s.db.Order("question_count desc").Limit(limit).Find(&tags).Error; err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

func (s *Store) SearchTags(query string) ([]models.Tag, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Tag{}, nil
	}
	var tags []models.Tag
	err := s.db.Where("name ILIKE ?", "%"+query+"%").
		Order("question_count desc").
		Limit(10).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

var tagColors = []string{
	"#3B82F6", // blue
	"#10B981", // green
	"#8B5CF6", // purple
	"#F59E0B", // yellow
	"#EF4444", // red
	"#06B6D4", // cyan
	"#84CC16", // lime
	"#F97316", // orange
	"#EC4899", // pink
	"#6366F1", // indigo
}

func randomTagColor() string {
	return tagColors[rand.Intn(len(tagColors))]
}
