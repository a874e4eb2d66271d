package http

import (
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/validation"
)

func projectRules(create bool) []validation.Rule {
	rules := []validation.Rule{
		validation.String("title"),
		validation.MaxLen("title", 100).WithMessage("Title cannot exceed 100 characters"),
		validation.String("shortDescription"),
		validation.MaxLen("shortDescription", 200).WithMessage("Short description cannot exceed 200 characters"),
		validation.String("description"),
		validation.StringSlice("technologies"),
		validation.StringSlice("images"),
		validation.URL("liveUrl").WithMessage("Live URL must be a valid URL"),
		validation.URL("githubUrl").WithMessage("GitHub URL must be a valid URL"),
		validation.Bool("featured"),
		validation.Bool("isPublished"),
		validation.OneOf("category", domain.Categories...),
		validation.OneOf("status", domain.Statuses...),
		validation.IntRange("priority", 0, 100),
		validation.Date("startDate"),
		validation.Date("endDate"),
	}
	present := validation.Required
	if !create {
		present = validation.NonEmpty
	}
	return append(rules,
		present("title").WithMessage("Title is required"),
		present("shortDescription").WithMessage("Short description is required"),
		present("description").WithMessage("Description is required"),
	)
}

var listQueryRules = []validation.Rule{
	validation.OneOf("category", domain.Categories...),
	validation.OneOf("featured", "true", "false"),
}
