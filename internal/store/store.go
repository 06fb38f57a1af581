// Package store holds the forum state for one process lifetime.
//
// A Store is the single source of truth for users, questions, answers,
// comments and mentions. Queries hand out copies, never pointers into the
// internal collections, and mutations derive reputation counters and mention
// records as side effects. Unknown ids never produce errors: lookups report
// ok=false and mutations become no-ops.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/peerpath/internal/model"
)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the entity id source.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

type userRec struct {
	u   model.User
	seq int64
}

type questionRec struct {
	q   model.Question
	seq int64
}

type answerRec struct {
	a   model.StructuredAnswer
	seq int64
}

type mentionRec struct {
	m   model.Mention
	seq int64
}

// Store 进程内论坛数据，所有方法并发安全
type Store struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string
	seq   int64
	rev   uint64 // bumped by every write

	users     []*userRec
	userIdx   map[string]*userRec
	questions []*questionRec
	qIdx      map[string]*questionRec
	answers   []*answerRec
	aIdx      map[string]*answerRec
	mentions  []*mentionRec
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
		userIdx: make(map[string]*userRec),
		qIdx:    make(map[string]*questionRec),
		aIdx:    make(map[string]*answerRec),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Revision changes whenever the state may have changed. Callers compare two
// values to skip redundant work.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rev
}

func (s *Store) next() int64 {
	s.seq++
	return s.seq
}

// ListQuestions returns every question, newest first. Questions created at
// the same instant are ordered by insertion, later first.
func (s *Store) ListQuestions() []model.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := append([]*questionRec(nil), s.questions...)
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.q.CreatedAt.Equal(b.q.CreatedAt) {
			return a.q.CreatedAt.After(b.q.CreatedAt)
		}
		return a.seq > b.seq
	})
	out := make([]model.Question, len(recs))
	for i, r := range recs {
		out[i] = r.q.Clone()
	}
	return out
}

// GetQuestion returns a copy of the question with the given id.
func (s *Store) GetQuestion(id string) (model.Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.qIdx[id]
	if !ok {
		return model.Question{}, false
	}
	return r.q.Clone(), true
}

// ListAnswers returns copies of a question's answers ranked by upvotes.
// Equal upvotes fall back to insertion order, later first.
func (s *Store) ListAnswers(questionID string) []model.StructuredAnswer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []*answerRec
	for _, r := range s.answers {
		if r.a.QuestionID == questionID {
			recs = append(recs, r)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.a.Upvotes != b.a.Upvotes {
			return a.a.Upvotes > b.a.Upvotes
		}
		return a.seq > b.seq
	})
	out := make([]model.StructuredAnswer, len(recs))
	for i, r := range recs {
		out[i] = r.a.Clone()
	}
	return out
}

// GetAnswer returns a copy of a single answer.
func (s *Store) GetAnswer(id string) (model.StructuredAnswer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.aIdx[id]
	if !ok {
		return model.StructuredAnswer{}, false
	}
	return r.a.Clone(), true
}

// ListMentions returns the mentions addressed to userID, newest first.
func (s *Store) ListMentions(userID string) []model.Mention {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []*mentionRec
	for _, r := range s.mentions {
		if r.m.TargetUserID == userID {
			recs = append(recs, r)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.m.CreatedAt.Equal(b.m.CreatedAt) {
			return a.m.CreatedAt.After(b.m.CreatedAt)
		}
		return a.seq > b.seq
	})
	out := make([]model.Mention, len(recs))
	for i, r := range recs {
		out[i] = r.m
	}
	return out
}

// MarkMentionsRead flags every unread mention of userID as read and returns
// how many changed.
func (s *Store) MarkMentionsRead(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.mentions {
		if r.m.TargetUserID == userID && !r.m.IsRead {
			r.m.IsRead = true
			n++
		}
	}
	if n > 0 {
		s.rev++
	}
	return n
}

// CreateUser registers a user. Email uniqueness is not enforced.
func (s *Store) CreateUser(in model.UserInput) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev++

	u := model.User{
		ID:          s.newID(),
		Email:       in.Email,
		Role:        in.Role,
		DisplayName: in.DisplayName,
		Branch:      in.Branch,
		Batch:       in.Batch,
		Interests:   in.Interests,
		CreatedAt:   s.now(),
	}
	if u.Role == "" {
		u.Role = model.RoleJunior
	}
	if u.DisplayName == "" {
		u.DisplayName = model.DefaultDisplayName
	}
	if u.Branch == "" {
		u.Branch = model.DefaultBranch
	}
	if u.Batch == "" {
		u.Batch = model.DefaultBatch
	}
	u = u.Clone()

	r := &userRec{u: u, seq: s.next()}
	s.users = append(s.users, r)
	s.userIdx[u.ID] = r
	return u.Clone()
}

// UpdateUser merges the non-nil fields of patch into the user. Stats are
// never touched.
func (s *Store) UpdateUser(id string, patch model.UserPatch) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.userIdx[id]
	if !ok {
		return model.User{}, false
	}
	s.rev++
	if patch.Email != nil {
		r.u.Email = *patch.Email
	}
	if patch.Role != nil {
		r.u.Role = *patch.Role
	}
	if patch.DisplayName != nil {
		r.u.DisplayName = *patch.DisplayName
	}
	if patch.Branch != nil {
		r.u.Branch = *patch.Branch
	}
	if patch.Batch != nil {
		r.u.Batch = *patch.Batch
	}
	if patch.Interests != nil {
		r.u.Interests = append([]string(nil), patch.Interests...)
	}
	return r.u.Clone(), true
}

// GetUser returns a copy of the user with the given id.
func (s *Store) GetUser(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.userIdx[id]
	if !ok {
		return model.User{}, false
	}
	return r.u.Clone(), true
}

// FindUserByEmail returns the earliest registered user whose email matches,
// ignoring case.
func (s *Store) FindUserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.TrimSpace(email)
	for _, r := range s.users {
		if strings.EqualFold(r.u.Email, email) {
			return r.u.Clone(), true
		}
	}
	return model.User{}, false
}

// CreateQuestion stores a new question and bumps the author's
// QuestionsAsked. An unknown author is not an error.
func (s *Store) CreateQuestion(in model.QuestionInput) model.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev++

	q := model.Question{
		ID:                   s.newID(),
		Title:                in.Title,
		OriginalText:         in.OriginalText,
		NeutralText:          in.NeutralText,
		BaselineAnswer:       in.BaselineAnswer,
		SuggestedTags:        in.SuggestedTags,
		Category:             in.Category,
		Tags:                 in.Tags,
		AnonymousDisplayName: in.AnonymousDisplayName,
		UserID:               in.UserID,
		CreatedAt:            s.now(),
	}
	q = q.Clone()

	r := &questionRec{q: q, seq: s.next()}
	s.questions = append(s.questions, r)
	s.qIdx[q.ID] = r
	if u, ok := s.userIdx[in.UserID]; ok {
		u.u.Stats.QuestionsAsked++
	}
	return q.Clone()
}

// CreateAnswer stores a new answer with zeroed counters and bumps the
// author's AnswersGiven.
func (s *Store) CreateAnswer(in model.AnswerInput) model.StructuredAnswer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev++

	a := model.StructuredAnswer{
		ID:          s.newID(),
		QuestionID:  in.QuestionID,
		UserID:      in.UserID,
		UserRole:    in.UserRole,
		UserBranch:  in.UserBranch,
		ShortAnswer: in.ShortAnswer,
		Pros:        in.Pros,
		Cons:        in.Cons,
		ActionPlan:  in.ActionPlan,
		CreatedAt:   s.now(),
	}
	a = a.Clone()

	r := &answerRec{a: a, seq: s.next()}
	s.answers = append(s.answers, r)
	s.aIdx[a.ID] = r
	if u, ok := s.userIdx[in.UserID]; ok {
		u.u.Stats.AnswersGiven++
	}
	return a.Clone()
}

// AddComment appends a comment to an answer. When the commenter is not the
// answer's author a Mention is raised for the author. ok is false when the
// answer or the commenter is unknown.
func (s *Store) AddComment(answerID, userID, text, questionID string) (model.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ar, ok := s.aIdx[answerID]
	if !ok {
		return model.Comment{}, false
	}
	ur, ok := s.userIdx[userID]
	if !ok {
		return model.Comment{}, false
	}
	s.rev++

	now := s.now()
	c := model.Comment{
		ID:        s.newID(),
		AnswerID:  answerID,
		UserID:    userID,
		UserName:  ur.u.DisplayName,
		Text:      text,
		CreatedAt: now,
	}
	ar.a.Comments = append(ar.a.Comments, c)

	if ar.a.UserID != userID {
		m := model.Mention{
			ID:           s.newID(),
			TargetUserID: ar.a.UserID,
			FromUserName: ur.u.DisplayName,
			QuestionID:   questionID,
			AnswerID:     answerID,
			Text:         model.Excerpt(text),
			CreatedAt:    now,
		}
		s.mentions = append(s.mentions, &mentionRec{m: m, seq: s.next()})
	}
	return c, true
}

// ToggleUpvote adds or removes userID's upvote on an answer and moves the
// author's TotalUpvotes with it. Returns false if the answer is unknown.
func (s *Store) ToggleUpvote(answerID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.aIdx[answerID]
	if !ok {
		return false
	}
	s.rev++
	var author *model.Stats
	if u, ok := s.userIdx[r.a.UserID]; ok {
		author = &u.u.Stats
	}

	var added bool
	r.a.UpvotedBy, added = toggle(r.a.UpvotedBy, userID)
	if added {
		r.a.Upvotes++
		if author != nil {
			author.TotalUpvotes++
		}
	} else {
		r.a.Upvotes = decr(r.a.Upvotes)
		if author != nil {
			author.TotalUpvotes = decr(author.TotalUpvotes)
		}
	}
	return true
}

// ToggleHelped is ToggleUpvote for the independent "helped" signal and the
// author's HelpedCount.
func (s *Store) ToggleHelped(answerID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.aIdx[answerID]
	if !ok {
		return false
	}
	s.rev++
	var author *model.Stats
	if u, ok := s.userIdx[r.a.UserID]; ok {
		author = &u.u.Stats
	}

	var added bool
	r.a.HelpedBy, added = toggle(r.a.HelpedBy, userID)
	if added {
		r.a.HelpedCount++
		if author != nil {
			author.HelpedCount++
		}
	} else {
		r.a.HelpedCount = decr(r.a.HelpedCount)
		if author != nil {
			author.HelpedCount = decr(author.HelpedCount)
		}
	}
	return true
}

// toggle removes id from set if present, otherwise appends it.
func toggle(set []string, id string) ([]string, bool) {
	for i, v := range set {
		if v == id {
			out := make([]string, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...), false
		}
	}
	return append(set, id), true
}

func decr(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}
