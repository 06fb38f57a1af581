package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/d60-Lab/peerpath/internal/assist"
	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/internal/store"
	"github.com/d60-Lab/peerpath/pkg/logger"
)

var (
	ErrInvalidEmail      = errors.New("college email required (.edu.in or .edu)")
	ErrInvalidRole       = errors.New("role must be junior, senior or alumni")
	ErrUserNotFound      = errors.New("user not found, please sign up first")
	ErrProfileIncomplete = errors.New("display name, branch and batch must not be empty")
	ErrEmptyText         = errors.New("text must not be empty")
	ErrCategoryRequired  = errors.New("please specify the topic for your question")
	ErrMentorOnly        = errors.New("only seniors and alumni can provide structured answers")
	ErrEmptyInsight      = errors.New("please provide a core insight before publishing")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrAnswerNotFound    = errors.New("answer not found")
	ErrNotEnoughAnswers  = errors.New("thread synthesis needs at least two answers")
	ErrAssistUnavailable = errors.New("ai assist unavailable")
)

// MinAnswersForSummary is the smallest thread worth summarizing.
const MinAnswersForSummary = 2

// untouched action-plan placeholders offered by the answer form
var planPlaceholders = map[string]bool{
	"Days 1-10: ":  true,
	"Days 11-20: ": true,
	"Days 21-30: ": true,
}

// ForumService 论坛业务流程：参数校验后调用 store 与 AI 助手
type ForumService interface {
	Signup(in SignupInput) (model.User, error)
	Login(email string) (model.User, error)
	GetUser(userID string) (model.User, error)
	UpdateProfile(userID string, patch model.UserPatch) (model.User, error)
	Dashboard(userID string) (Dashboard, error)

	Feed(category string) []model.Question
	Thread(questionID string) (Thread, error)
	Draft(ctx context.Context, userID, text string) (Draft, error)
	AskQuestion(ctx context.Context, userID string, in AskInput) (model.Question, error)
	PostAnswer(userID, questionID string, in AnswerInput) (model.StructuredAnswer, error)
	Comment(userID, answerID, text string) (model.Comment, error)
	ToggleUpvote(userID, answerID string) (model.StructuredAnswer, error)
	ToggleHelped(userID, answerID string) (model.StructuredAnswer, error)
	Summarize(ctx context.Context, questionID string) (*model.ThreadSummary, error)

	Mentions(userID string) []model.Mention
	MarkMentionsRead(userID string) int
}

type SignupInput struct {
	Email       string
	Role        string
	DisplayName string
	Branch      string
	Batch       string
	Interests   []string
}

// AskInput is a question as submitted. Clarification is the draft result the
// asker accepted; with UseAI and no Clarification one is requested here.
type AskInput struct {
	Title          string
	Text           string
	Category       string
	CustomCategory string
	Tags           []string
	UseAI          bool
	Clarification  *model.Clarification
}

type AnswerInput struct {
	ShortAnswer string
	Pros        []string
	Cons        []string
	ActionPlan  []string
}

// Draft is the AI pre-check of a question before posting.
type Draft struct {
	Clarification *model.Clarification `json:"clarification,omitempty"`
	Similar       []model.Question     `json:"similar"`
}

type Thread struct {
	Question model.Question           `json:"question"`
	Answers  []model.StructuredAnswer `json:"answers"`
}

type Dashboard struct {
	User           model.User      `json:"user"`
	Reputation     int             `json:"reputation"`
	Progress       float64         `json:"progress"`
	NextLevelAt    int             `json:"next_level_at"`
	UnreadMentions int             `json:"unread_mentions"`
	Mentions       []model.Mention `json:"mentions"`
}

type forumService struct {
	store     *store.Store
	assistant assist.Assistant
}

func NewForumService(s *store.Store, a assist.Assistant) ForumService {
	if a == nil {
		a = assist.Disabled{}
	}
	return &forumService{store: s, assistant: a}
}

// IsCampusEmail reports whether email belongs to a college domain.
func IsCampusEmail(email string) bool {
	e := strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(e, "@")
	if at <= 0 || at == len(e)-1 {
		return false
	}
	return strings.HasSuffix(e, ".edu.in") || strings.HasSuffix(e, ".edu")
}

func (s *forumService) Signup(in SignupInput) (model.User, error) {
	if !IsCampusEmail(in.Email) {
		return model.User{}, ErrInvalidEmail
	}
	var role model.Role
	if in.Role != "" {
		r, ok := model.ParseRole(in.Role)
		if !ok {
			return model.User{}, ErrInvalidRole
		}
		role = r
	}
	u := s.store.CreateUser(model.UserInput{
		Email:       strings.TrimSpace(in.Email),
		Role:        role,
		DisplayName: strings.TrimSpace(in.DisplayName),
		Branch:      strings.TrimSpace(in.Branch),
		Batch:       strings.TrimSpace(in.Batch),
		Interests:   in.Interests,
	})
	logger.Info("user signed up", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return u, nil
}

func (s *forumService) Login(email string) (model.User, error) {
	if !IsCampusEmail(email) {
		return model.User{}, ErrInvalidEmail
	}
	u, ok := s.store.FindUserByEmail(email)
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *forumService) GetUser(userID string) (model.User, error) {
	u, ok := s.store.GetUser(userID)
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *forumService) UpdateProfile(userID string, patch model.UserPatch) (model.User, error) {
	if patch.Email != nil && !IsCampusEmail(*patch.Email) {
		return model.User{}, ErrInvalidEmail
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return model.User{}, ErrInvalidRole
	}
	// name, branch and batch may be changed but never cleared
	for _, f := range []**string{&patch.DisplayName, &patch.Branch, &patch.Batch} {
		if *f == nil {
			continue
		}
		v := strings.TrimSpace(**f)
		if v == "" {
			return model.User{}, ErrProfileIncomplete
		}
		*f = &v
	}
	u, ok := s.store.UpdateUser(userID, patch)
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *forumService) Dashboard(userID string) (Dashboard, error) {
	u, ok := s.store.GetUser(userID)
	if !ok {
		return Dashboard{}, ErrUserNotFound
	}
	mentions := s.store.ListMentions(userID)
	unread := 0
	for _, m := range mentions {
		if !m.IsRead {
			unread++
		}
	}
	return Dashboard{
		User:           u,
		Reputation:     model.Reputation(u.Stats),
		Progress:       model.ReputationProgress(u.Stats),
		NextLevelAt:    model.ReputationNextLevel,
		UnreadMentions: unread,
		Mentions:       mentions,
	}, nil
}

// Feed lists questions newest first. An empty category or "All" returns
// everything; CategoryOthers matches every non-standard category.
func (s *forumService) Feed(category string) []model.Question {
	all := s.store.ListQuestions()
	if category == "" || strings.EqualFold(category, "all") {
		return all
	}
	out := make([]model.Question, 0, len(all))
	for _, q := range all {
		if category == model.CategoryOthers {
			if !model.IsStandardCategory(q.Category) {
				out = append(out, q)
			}
			continue
		}
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

func (s *forumService) Thread(questionID string) (Thread, error) {
	q, ok := s.store.GetQuestion(questionID)
	if !ok {
		return Thread{}, ErrQuestionNotFound
	}
	return Thread{Question: q, Answers: s.store.ListAnswers(questionID)}, nil
}

// Draft asks the assistant for a clarification and then for similar
// questions. Either part may come back empty.
func (s *forumService) Draft(ctx context.Context, userID, text string) (Draft, error) {
	if _, ok := s.store.GetUser(userID); !ok {
		return Draft{}, ErrUserNotFound
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Draft{}, ErrEmptyText
	}

	existing := s.store.ListQuestions()
	titles := make([]string, len(existing))
	for i, q := range existing {
		titles[i] = q.Title
	}

	d := Draft{Similar: []model.Question{}}
	d.Clarification = s.assistant.Clarify(ctx, text)
	seen := make(map[int]bool)
	for _, i := range s.assistant.FindSimilar(ctx, text, titles) {
		if i < 0 || i >= len(existing) || seen[i] {
			continue
		}
		seen[i] = true
		d.Similar = append(d.Similar, existing[i])
	}
	return d, nil
}

func (s *forumService) AskQuestion(ctx context.Context, userID string, in AskInput) (model.Question, error) {
	u, ok := s.store.GetUser(userID)
	if !ok {
		return model.Question{}, ErrUserNotFound
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return model.Question{}, ErrEmptyText
	}
	category := in.Category
	if category == "" {
		category = model.Categories[0]
	}
	if category == model.CategoryOthers {
		category = strings.TrimSpace(in.CustomCategory)
		if category == "" {
			return model.Question{}, ErrCategoryRequired
		}
	}

	qi := model.QuestionInput{
		Title:                strings.TrimSpace(in.Title),
		OriginalText:         text,
		Category:             category,
		Tags:                 dedupe(in.Tags),
		SuggestedTags:        []string{},
		AnonymousDisplayName: AnonymousLabel(u),
		UserID:               u.ID,
	}
	c := in.Clarification
	if c == nil && in.UseAI {
		c = s.assistant.Clarify(ctx, text)
	}
	if c != nil {
		qi.NeutralText = c.NeutralQuestion
		qi.BaselineAnswer = &model.BaselineAnswer{Summary: c.BaselineAnswer.Summary, Paths: c.BaselineAnswer.Paths}
		qi.SuggestedTags = c.SuggestedTags
		qi.Tags = dedupe(append(append([]string{}, in.Tags...), c.SuggestedTags...))
		if qi.Title == "" && c.NeutralQuestion != "" {
			qi.Title = truncate(c.NeutralQuestion)
		}
	}
	if qi.Title == "" {
		qi.Title = truncate(text)
	}

	q := s.store.CreateQuestion(qi)
	logger.Info("question posted",
		zap.String("question_id", q.ID),
		zap.String("category", q.Category),
		zap.Bool("ai_enriched", c != nil),
	)
	return q, nil
}

func (s *forumService) PostAnswer(userID, questionID string, in AnswerInput) (model.StructuredAnswer, error) {
	u, ok := s.store.GetUser(userID)
	if !ok {
		return model.StructuredAnswer{}, ErrUserNotFound
	}
	if !u.Role.IsMentor() {
		return model.StructuredAnswer{}, ErrMentorOnly
	}
	if _, ok := s.store.GetQuestion(questionID); !ok {
		return model.StructuredAnswer{}, ErrQuestionNotFound
	}
	insight := strings.TrimSpace(in.ShortAnswer)
	if insight == "" {
		return model.StructuredAnswer{}, ErrEmptyInsight
	}

	plan := make([]string, 0, len(in.ActionPlan))
	for _, step := range in.ActionPlan {
		if strings.TrimSpace(step) == "" || planPlaceholders[step] {
			continue
		}
		plan = append(plan, step)
	}

	a := s.store.CreateAnswer(model.AnswerInput{
		QuestionID:  questionID,
		UserID:      u.ID,
		UserRole:    u.Role,
		UserBranch:  u.Branch,
		ShortAnswer: insight,
		Pros:        nonBlank(in.Pros),
		Cons:        nonBlank(in.Cons),
		ActionPlan:  plan,
	})
	logger.Info("answer posted", zap.String("answer_id", a.ID), zap.String("question_id", questionID))
	return a, nil
}

func (s *forumService) Comment(userID, answerID, text string) (model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return model.Comment{}, ErrEmptyText
	}
	a, ok := s.store.GetAnswer(answerID)
	if !ok {
		return model.Comment{}, ErrAnswerNotFound
	}
	c, ok := s.store.AddComment(answerID, userID, text, a.QuestionID)
	if !ok {
		return model.Comment{}, ErrUserNotFound
	}
	return c, nil
}

func (s *forumService) ToggleUpvote(userID, answerID string) (model.StructuredAnswer, error) {
	return s.toggle(userID, answerID, s.store.ToggleUpvote)
}

func (s *forumService) ToggleHelped(userID, answerID string) (model.StructuredAnswer, error) {
	return s.toggle(userID, answerID, s.store.ToggleHelped)
}

func (s *forumService) toggle(userID, answerID string, fn func(answerID, userID string) bool) (model.StructuredAnswer, error) {
	if _, ok := s.store.GetUser(userID); !ok {
		return model.StructuredAnswer{}, ErrUserNotFound
	}
	if !fn(answerID, userID) {
		return model.StructuredAnswer{}, ErrAnswerNotFound
	}
	a, _ := s.store.GetAnswer(answerID)
	return a, nil
}

func (s *forumService) Summarize(ctx context.Context, questionID string) (*model.ThreadSummary, error) {
	q, ok := s.store.GetQuestion(questionID)
	if !ok {
		return nil, ErrQuestionNotFound
	}
	answers := s.store.ListAnswers(questionID)
	if len(answers) < MinAnswersForSummary {
		return nil, ErrNotEnoughAnswers
	}
	sum := s.assistant.SummarizeThread(ctx, q.OriginalText, answers)
	if sum == nil {
		return nil, ErrAssistUnavailable
	}
	return sum, nil
}

func (s *forumService) Mentions(userID string) []model.Mention {
	return s.store.ListMentions(userID)
}

func (s *forumService) MarkMentionsRead(userID string) int {
	return s.store.MarkMentionsRead(userID)
}
