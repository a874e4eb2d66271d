package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

var Levels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

const (
	DefaultProficiency = 50
	DefaultColor       = "#3B82F6"
)

type Skill struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name              string             `bson:"name" json:"name"`
	Category          string             `bson:"category" json:"category"`
	Level             string             `bson:"level" json:"level"`
	Proficiency       int                `bson:"proficiency" json:"proficiency"`
	Icon              string             `bson:"icon" json:"icon"`
	Color             string             `bson:"color" json:"color"`
	Description       string             `bson:"description" json:"description"`
	YearsOfExperience int                `bson:"yearsOfExperience" json:"yearsOfExperience"`
	IsVisible         bool               `bson:"isVisible" json:"isVisible"`
	Order             int                `bson:"order" json:"order"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Lower-cased copies backing the case-insensitive unique index.
	NameKey     string `bson:"nameKey" json:"-"`
	CategoryKey string `bson:"categoryKey" json:"-"`
}

// Input carries the writable fields of a skill. Nil fields were not sent.
type Input struct {
	Name              *string `json:"name"`
	Category          *string `json:"category"`
	Level             *string `json:"level"`
	Proficiency       *int    `json:"proficiency"`
	Icon              *string `json:"icon"`
	Color             *string `json:"color"`
	Description       *string `json:"description"`
	YearsOfExperience *int    `json:"yearsOfExperience"`
	IsVisible         *bool   `json:"isVisible"`
	Order             *int    `json:"order"`
}

func New(in Input, now time.Time) *Skill {
	s := &Skill{
		ID:          primitive.NewObjectID(),
		Level:       LevelIntermediate,
		Proficiency: DefaultProficiency,
		Color:       DefaultColor,
		IsVisible:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	in.ApplyTo(s)
	return s
}

// ApplyTo copies present fields onto s and refreshes the uniqueness keys.
func (in Input) ApplyTo(s *Skill) {
	if in.Name != nil {
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		s.Category = strings.TrimSpace(*in.Category)
	}
	if in.Level != nil {
		s.Level = *in.Level
	}
	if in.Proficiency != nil {
		s.Proficiency = *in.Proficiency
	}
	if in.Icon != nil {
		s.Icon = strings.TrimSpace(*in.Icon)
	}
	if in.Color != nil {
		s.Color = strings.TrimSpace(*in.Color)
	}
	if in.Description != nil {
		s.Description = strings.TrimSpace(*in.Description)
	}
	if in.YearsOfExperience != nil {
		s.YearsOfExperience = *in.YearsOfExperience
	}
	if in.IsVisible != nil {
		s.IsVisible = *in.IsVisible
	}
	if in.Order != nil {
		s.Order = *in.Order
	}
	s.NameKey, s.CategoryKey = Key(s.Name, s.Category)
}

// Key is the case-insensitive identity of a skill.
func Key(name, category string) (string, string) {
	return strings.ToLower(strings.TrimSpace(name)), strings.ToLower(strings.TrimSpace(category))
}

// ListFilter selects skills for a listing. Category matches ignoring case.
type ListFilter struct {
	VisibleOnly bool
	Category    string
}
