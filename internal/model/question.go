package model

import "time"

// Standard question categories. Any other string is a custom category filed
// under CategoryOthers.
const (
	CategoryDSAvsDev       = "DSA vs Development"
	CategoryOpenSource     = "Open Source"
	CategoryGSoC           = "GSoC"
	CategoryInternships    = "Internships"
	CategoryHigherStudies  = "Higher Studies"
	CategoryClubsAcademics = "Balancing Clubs & Academics"
	CategoryOthers         = "Others"
)

// Categories lists the standard categories in display order.
var Categories = []string{
	CategoryDSAvsDev,
	CategoryOpenSource,
	CategoryGSoC,
	CategoryInternships,
	CategoryHigherStudies,
	CategoryClubsAcademics,
	CategoryOthers,
}

// IsStandardCategory reports whether c is one of the named categories other
// than CategoryOthers.
func IsStandardCategory(c string) bool {
	for _, s := range Categories {
		if s != CategoryOthers && s == c {
			return true
		}
	}
	return false
}

// BaselineAnswer AI 生成的基准回答
type BaselineAnswer struct {
	Summary string   `json:"summary"`
	Paths   []string `json:"paths"`
}

// Question 匿名提问
type Question struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"`
	OriginalText         string          `json:"original_text"`
	NeutralText          string          `json:"neutral_text,omitempty"`
	BaselineAnswer       *BaselineAnswer `json:"baseline_answer,omitempty"`
	SuggestedTags        []string        `json:"suggested_tags"`
	Category             string          `json:"category"`
	Tags                 []string        `json:"tags"`
	AnonymousDisplayName string          `json:"anonymous_display_name"`
	UserID               string          `json:"user_id"`
	CreatedAt            time.Time       `json:"created_at"`
	Upvotes              int             `json:"upvotes"`
	IsResolved           bool            `json:"is_resolved"`
}

// Clone returns a deep copy of q.
func (q Question) Clone() Question {
	q.SuggestedTags = cloneStrings(q.SuggestedTags)
	q.Tags = cloneStrings(q.Tags)
	if q.BaselineAnswer != nil {
		b := *q.BaselineAnswer
		b.Paths = cloneStrings(b.Paths)
		q.BaselineAnswer = &b
	}
	return q
}

// QuestionInput is everything a caller supplies when posting a question.
type QuestionInput struct {
	Title                string
	OriginalText         string
	NeutralText          string
	BaselineAnswer       *BaselineAnswer
	SuggestedTags        []string
	Category             string
	Tags                 []string
	AnonymousDisplayName string
	UserID               string
}
