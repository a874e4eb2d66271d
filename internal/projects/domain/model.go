package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project categories.
const (
	CategoryWeb     = "web"
	CategoryMobile  = "mobile"
	CategoryDesktop = "desktop"
	CategoryAPI     = "api"
	CategoryData    = "data"
	CategoryOther   = "other"
)

// Project statuses.
const (
	StatusPlanning   = "planning"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusMaintained = "maintained"
	StatusArchived   = "archived"
)

var (
	Categories = []string{CategoryWeb, CategoryMobile, CategoryDesktop, CategoryAPI, CategoryData, CategoryOther}
	Statuses   = []string{StatusPlanning, StatusInProgress, StatusCompleted, StatusMaintained, StatusArchived}
)

// FeaturedLimit caps the featured listing.
const FeaturedLimit = 6

// Project is a portfolio entry. Only published projects are visible to the
// public routes.
type Project struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title            string             `bson:"title" json:"title"`
	Slug             string             `bson:"slug" json:"slug"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	Description      string             `bson:"description" json:"description"`
	Technologies     []string           `bson:"technologies" json:"technologies"`
	LiveURL          string             `bson:"liveUrl" json:"liveUrl"`
	SourceURL        string             `bson:"githubUrl" json:"githubUrl"`
	Images           []string           `bson:"images" json:"images"`
	Featured         bool               `bson:"featured" json:"featured"`
	IsPublished      bool               `bson:"isPublished" json:"isPublished"`
	Category         string             `bson:"category" json:"category"`
	Status           string             `bson:"status" json:"status"`
	Priority         int                `bson:"priority" json:"priority"`
	StartDate        *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate          *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Input carries the writable fields of a create or update request. Nil fields
// were not present in the payload.
type Input struct {
	Title            *string    `json:"title"`
	ShortDescription *string    `json:"shortDescription"`
	Description      *string    `json:"description"`
	Technologies     *[]string  `json:"technologies"`
	LiveURL          *string    `json:"liveUrl"`
	SourceURL        *string    `json:"githubUrl"`
	Images           *[]string  `json:"images"`
	Featured         *bool      `json:"featured"`
	IsPublished      *bool      `json:"isPublished"`
	Category         *string    `json:"category"`
	Status           *string    `json:"status"`
	Priority         *int       `json:"priority"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
}

// New builds a project with defaults, then applies in.
func New(in Input, now time.Time) *Project {
	p := &Project{
		ID:           primitive.NewObjectID(),
		Technologies: []string{},
		Images:       []string{},
		IsPublished:  true,
		Category:     CategoryWeb,
		Status:       StatusCompleted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	in.ApplyTo(p)
	p.Slug = SlugFor(p.Title, p.ID)
	return p
}

// ApplyTo copies every present field onto p.
func (in Input) ApplyTo(p *Project) {
	if in.Title != nil {
		p.Title = trim(*in.Title)
	}
	if in.ShortDescription != nil {
		p.ShortDescription = trim(*in.ShortDescription)
	}
	if in.Description != nil {
		p.Description = trim(*in.Description)
	}
	if in.Technologies != nil {
		p.Technologies = cleanList(*in.Technologies)
	}
	if in.LiveURL != nil {
		p.LiveURL = trim(*in.LiveURL)
	}
	if in.SourceURL != nil {
		p.SourceURL = trim(*in.SourceURL)
	}
	if in.Images != nil {
		p.Images = cleanList(*in.Images)
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.IsPublished != nil {
		p.IsPublished = *in.IsPublished
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Priority != nil {
		p.Priority = *in.Priority
	}
	if in.StartDate != nil {
		t := in.StartDate.UTC()
		p.StartDate = &t
	}
	if in.EndDate != nil {
		t := in.EndDate.UTC()
		p.EndDate = &t
	}
}

// ListFilter selects projects for a listing.
type ListFilter struct {
	PublishedOnly bool
	Category      string
	FeaturedOnly  bool
	Search        string
	Exclude       *primitive.ObjectID
}
