package http

import (
	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/validation"
)

func skillRules(create bool) []validation.Rule {
	rules := []validation.Rule{
		validation.String("name"),
		validation.MaxLen("name", 50).WithMessage("Skill name cannot exceed 50 characters"),
		validation.String("category"),
		validation.MaxLen("category", 50).WithMessage("Category cannot exceed 50 characters"),
		validation.OneOf("level", domain.Levels...),
		validation.IntRange("proficiency", 0, 100).WithMessage("Proficiency must be between 0 and 100"),
		validation.String("icon"),
		validation.String("color"),
		validation.String("description"),
		validation.MaxLen("description", 500).WithMessage("Description cannot exceed 500 characters"),
		validation.Min("yearsOfExperience", 0).WithMessage("Years of experience cannot be negative"),
		validation.Bool("isVisible"),
		validation.Int("order"),
	}
	present := validation.Required
	if !create {
		present = validation.NonEmpty
	}
	return append(rules,
		present("name").WithMessage("Skill name is required"),
		present("category").WithMessage("Category is required"),
	)
}

var listQueryRules = []validation.Rule{
	validation.OneOf("sort", domain.SortValues()...),
}
