package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/peerpath/internal/assist"
	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/internal/store"
)

type fakeAssistant struct {
	clarification *model.Clarification
	similar       []int
	summary       *model.ThreadSummary

	calls []string
}

func (f *fakeAssistant) Clarify(context.Context, string) *model.Clarification {
	f.calls = append(f.calls, "clarify")
	return f.clarification
}

func (f *fakeAssistant) FindSimilar(_ context.Context, _ string, titles []string) []int {
	f.calls = append(f.calls, fmt.Sprintf("similar:%d", len(titles)))
	if f.similar == nil {
		return []int{}
	}
	return f.similar
}

func (f *fakeAssistant) SummarizeThread(context.Context, string, []model.StructuredAnswer) *model.ThreadSummary {
	f.calls = append(f.calls, "summary")
	return f.summary
}

func (f *fakeAssistant) Enabled() bool { return true }

var _ assist.Assistant = (*fakeAssistant)(nil)

func newTestService(t *testing.T, a assist.Assistant) (ForumService, *store.Store) {
	t.Helper()
	n := 0
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := store.New(
		store.WithClock(func() time.Time { return base }),
		store.WithIDGenerator(func() string { n++; return fmt.Sprintf("id%d", n) }),
	)
	return NewForumService(s, a), s
}

func TestIsCampusEmail(t *testing.T) {
	tests := map[string]bool{
		"a@aot.edu.in":      true,
		"a@mit.edu":         true,
		"  A@AOT.EDU.IN  ":  true,
		"a@gmail.com":       false,
		"@aot.edu.in":       false,
		"a@":                false,
		"plain.edu":         false,
		"a@aot.edu.in.fake": false,
		"":                  false,
	}
	for email, want := range tests {
		assert.Equal(t, want, IsCampusEmail(email), email)
	}
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newTestService(t, assist.Disabled{})

	_, err := svc.Signup(SignupInput{Email: "x@gmail.com"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Signup(SignupInput{Email: "x@aot.edu.in", Role: "professor"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	u, err := svc.Signup(SignupInput{Email: "x@aot.edu.in"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleJunior, u.Role)
	assert.Equal(t, model.DefaultDisplayName, u.DisplayName)

	got, err := svc.Login("X@AOT.edu.in")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.Login("nobody@aot.edu.in")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Login("x@gmail.com")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t, assist.Disabled{})
	u, err := svc.Signup(SignupInput{Email: "x@aot.edu.in"})
	require.NoError(t, err)

	name := "Meera"
	role := model.RoleAlumni
	got, err := svc.UpdateProfile(u.ID, model.UserPatch{DisplayName: &name, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "Meera", got.DisplayName)
	assert.Equal(t, model.RoleAlumni, got.Role)

	bad := "x@gmail.com"
	_, err = svc.UpdateProfile(u.ID, model.UserPatch{Email: &bad})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	badRole := model.Role("dean")
	_, err = svc.UpdateProfile(u.ID, model.UserPatch{Role: &badRole})
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.UpdateProfile("missing", model.UserPatch{DisplayName: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfileRejectsBlankFields(t *testing.T) {
	svc, _ := newTestService(t, assist.Disabled{})
	u, err := svc.Signup(SignupInput{Email: "j@aot.edu.in", DisplayName: "Jay", Branch: "ECE", Batch: "2027"})
	require.NoError(t, err)

	empty, blank := "", "   "
	for _, patch := range []model.UserPatch{
		{DisplayName: &empty},
		{Branch: &blank},
		{Batch: &empty},
	} {
		_, err := svc.UpdateProfile(u.ID, patch)
		assert.ErrorIs(t, err, ErrProfileIncomplete)
	}

	got, err := svc.GetUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jay", got.DisplayName)
	assert.Equal(t, "ECE", got.Branch)

	q, err := svc.AskQuestion(context.Background(), u.ID, AskInput{Text: "hi", Category: model.CategoryGSoC})
	require.NoError(t, err)
	assert.Equal(t, "27'th Batch ECE Student", q.AnonymousDisplayName)

	branch := " IT "
	got, err = svc.UpdateProfile(u.ID, model.UserPatch{Branch: &branch})
	require.NoError(t, err)
	assert.Equal(t, "IT", got.Branch)
	assert.Equal(t, " IT ", branch)
}

func TestAnonymousLabel(t *testing.T) {
	assert.Equal(t, "26'th Batch CSE Student", AnonymousLabel(model.User{Batch: "2026", Branch: "CSE"}))
	assert.Equal(t, "7'th Batch IT Student", AnonymousLabel(model.User{Batch: "7", Branch: "IT"}))
}

func TestAskQuestionDirect(t *testing.T) {
	svc, s := newTestService(t, assist.Disabled{})
	u, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in", Branch: "ECE", Batch: "2027"})

	long := strings.Repeat("a", 60)
	q, err := svc.AskQuestion(context.Background(), u.ID, AskInput{
		Text:     long,
		Category: model.CategoryGSoC,
		Tags:     []string{"gsoc", " gsoc ", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 50)+"...", q.Title)
	assert.Equal(t, "27'th Batch ECE Student", q.AnonymousDisplayName)
	assert.Equal(t, []string{"gsoc"}, q.Tags)
	assert.Empty(t, q.NeutralText)
	assert.Nil(t, q.BaselineAnswer)

	after, _ := s.GetUser(u.ID)
	assert.Equal(t, 1, after.Stats.QuestionsAsked)

	short, err := svc.AskQuestion(context.Background(), u.ID, AskInput{Text: "Short one?", Category: model.CategoryGSoC})
	require.NoError(t, err)
	assert.Equal(t, "Short one?", short.Title)
}

func TestAskQuestionValidation(t *testing.T) {
	svc, _ := newTestService(t, assist.Disabled{})
	u, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in"})
	ctx := context.Background()

	_, err := svc.AskQuestion(ctx, u.ID, AskInput{Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = svc.AskQuestion(ctx, u.ID, AskInput{Text: "hi", Category: model.CategoryOthers})
	assert.ErrorIs(t, err, ErrCategoryRequired)

	_, err = svc.AskQuestion(ctx, "ghost", AskInput{Text: "hi"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	q, err := svc.AskQuestion(ctx, u.ID, AskInput{Text: "hi", Category: model.CategoryOthers, CustomCategory: " Hackathons "})
	require.NoError(t, err)
	assert.Equal(t, "Hackathons", q.Category)
}

func TestAskQuestionWithClarification(t *testing.T) {
	svc, _ := newTestService(t, assist.Disabled{})
	u, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in"})

	c := &model.Clarification{
		NeutralQuestion: "How should a second-year student start with GSoC?",
		BaselineAnswer:  model.BaselineAnswer{Summary: "Start small", Paths: []string{"A", "B"}},
		SuggestedTags:   []string{"gsoc", "git"},
	}
	q, err := svc.AskQuestion(context.Background(), u.ID, AskInput{
		Text:          "gsoc how??",
		Category:      model.CategoryGSoC,
		Tags:          []string{"open-source", "gsoc"},
		Clarification: c,
	})
	require.NoError(t, err)
	assert.Equal(t, c.NeutralQuestion, q.NeutralText)
	assert.Equal(t, c.NeutralQuestion, q.Title)
	require.NotNil(t, q.BaselineAnswer)
	assert.Equal(t, []string{"A", "B"}, q.BaselineAnswer.Paths)
	assert.Equal(t, []string{"gsoc", "git"}, q.SuggestedTags)
	assert.Equal(t, []string{"open-source", "gsoc", "git"}, q.Tags)
}

func TestDraft(t *testing.T) {
	fa := &fakeAssistant{
		clarification: &model.Clarification{NeutralQuestion: "n"},
		similar:       []int{1, 7, -1, 1},
	}
	svc, s := newTestService(t, fa)
	u, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in"})
	ctx := context.Background()

	_, err := svc.AskQuestion(ctx, u.ID, AskInput{Text: "first", Category: model.CategoryGSoC})
	require.NoError(t, err)
	_, err = svc.AskQuestion(ctx, u.ID, AskInput{Text: "second", Category: model.CategoryGSoC})
	require.NoError(t, err)

	d, err := svc.Draft(ctx, u.ID, "third")
	require.NoError(t, err)
	assert.Equal(t, "n", d.Clarification.NeutralQuestion)
	require.Len(t, d.Similar, 1)
	// index 1 of the newest-first feed
	assert.Equal(t, "first", d.Similar[0].Title)
	assert.Equal(t, []string{"clarify", "similar:2"}, fa.calls)

	_, err = svc.Draft(ctx, u.ID, " ")
	assert.ErrorIs(t, err, ErrEmptyText)
	_, err = svc.Draft(ctx, "ghost", "x")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// drafts never write
	assert.Len(t, s.ListQuestions(), 2)
}

func TestDraftWithoutAssist(t *testing.T) {
	svc, _ := newTestService(t, nil)
	u, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in"})

	d, err := svc.Draft(context.Background(), u.ID, "anything")
	require.NoError(t, err)
	assert.Nil(t, d.Clarification)
	assert.Empty(t, d.Similar)
}

func TestPostAnswer(t *testing.T) {
	svc, s := newTestService(t, assist.Disabled{})
	ctx := context.Background()
	junior, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in"})
	senior, _ := svc.Signup(SignupInput{Email: "s@aot.edu.in", Role: "senior", Branch: "IT"})
	q, _ := svc.AskQuestion(ctx, junior.ID, AskInput{Text: "help", Category: model.CategoryGSoC})

	_, err := svc.PostAnswer(junior.ID, q.ID, AnswerInput{ShortAnswer: "x"})
	assert.ErrorIs(t, err, ErrMentorOnly)

	_, err = svc.PostAnswer(senior.ID, q.ID, AnswerInput{ShortAnswer: "  "})
	assert.ErrorIs(t, err, ErrEmptyInsight)

	_, err = svc.PostAnswer(senior.ID, "nope", AnswerInput{ShortAnswer: "x"})
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	a, err := svc.PostAnswer(senior.ID, q.ID, AnswerInput{
		ShortAnswer: "Pick one org early",
		Pros:        []string{"focus", ""},
		Cons:        []string{" "},
		ActionPlan:  []string{"Days 1-10: read the codebase", "Days 11-20: ", "", "Days 21-30: "},
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleSenior, a.UserRole)
	assert.Equal(t, "IT", a.UserBranch)
	assert.Equal(t, []string{"focus"}, a.Pros)
	assert.Empty(t, a.Cons)
	assert.Equal(t, []string{"Days 1-10: read the codebase"}, a.ActionPlan)

	after, _ := s.GetUser(senior.ID)
	assert.Equal(t, 1, after.Stats.AnswersGiven)
}

func TestCommentRaisesMention(t *testing.T) {
	svc, _ := newTestService(t, assist.Disabled{})
	ctx := context.Background()
	junior, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in", DisplayName: "Arjun"})
	senior, _ := svc.Signup(SignupInput{Email: "s@aot.edu.in", Role: "alumni"})
	q, _ := svc.AskQuestion(ctx, junior.ID, AskInput{Text: "help", Category: model.CategoryGSoC})
	a, _ := svc.PostAnswer(senior.ID, q.ID, AnswerInput{ShortAnswer: "do it"})

	_, err := svc.Comment(junior.ID, a.ID, "")
	assert.ErrorIs(t, err, ErrEmptyText)
	_, err = svc.Comment(junior.ID, "nope", "thanks")
	assert.ErrorIs(t, err, ErrAnswerNotFound)
	_, err = svc.Comment("ghost", a.ID, "thanks")
	assert.ErrorIs(t, err, ErrUserNotFound)

	c, err := svc.Comment(junior.ID, a.ID, "thanks a lot")
	require.NoError(t, err)
	assert.Equal(t, "Arjun", c.UserName)

	ms := svc.Mentions(senior.ID)
	require.Len(t, ms, 1)
	assert.Equal(t, q.ID, ms[0].QuestionID)
	assert.False(t, ms[0].IsRead)

	d, err := svc.Dashboard(senior.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, d.UnreadMentions)

	assert.Equal(t, 1, svc.MarkMentionsRead(senior.ID))
	assert.Equal(t, 0, svc.MarkMentionsRead(senior.ID))
	assert.True(t, svc.Mentions(senior.ID)[0].IsRead)
}

func TestToggles(t *testing.T) {
	svc, _ := newTestService(t, assist.Disabled{})
	ctx := context.Background()
	junior, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in"})
	senior, _ := svc.Signup(SignupInput{Email: "s@aot.edu.in", Role: "senior"})
	q, _ := svc.AskQuestion(ctx, junior.ID, AskInput{Text: "help", Category: model.CategoryGSoC})
	a, _ := svc.PostAnswer(senior.ID, q.ID, AnswerInput{ShortAnswer: "do it"})

	got, err := svc.ToggleUpvote(junior.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Upvotes)
	got, err = svc.ToggleUpvote(junior.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Upvotes)

	got, err = svc.ToggleHelped(junior.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{junior.ID}, got.HelpedBy)

	d, _ := svc.Dashboard(senior.ID)
	assert.Equal(t, 1, d.User.Stats.HelpedCount)
	assert.Equal(t, 30, d.Reputation)

	_, err = svc.ToggleUpvote(junior.ID, "nope")
	assert.ErrorIs(t, err, ErrAnswerNotFound)
	_, err = svc.ToggleHelped("ghost", a.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFeed(t *testing.T) {
	svc, _ := newTestService(t, assist.Disabled{})
	ctx := context.Background()
	u, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in"})
	_, _ = svc.AskQuestion(ctx, u.ID, AskInput{Text: "g", Category: model.CategoryGSoC})
	_, _ = svc.AskQuestion(ctx, u.ID, AskInput{Text: "h", Category: model.CategoryOthers, CustomCategory: "Hackathons"})
	_, _ = svc.AskQuestion(ctx, u.ID, AskInput{Text: "i", Category: model.CategoryInternships})

	assert.Len(t, svc.Feed(""), 3)
	assert.Len(t, svc.Feed("All"), 3)
	assert.Equal(t, "i", svc.Feed("")[0].Title)

	gsoc := svc.Feed(model.CategoryGSoC)
	require.Len(t, gsoc, 1)
	assert.Equal(t, "g", gsoc[0].Title)

	others := svc.Feed(model.CategoryOthers)
	require.Len(t, others, 1)
	assert.Equal(t, "Hackathons", others[0].Category)

	assert.Empty(t, svc.Feed(model.CategoryHigherStudies))
}

func TestSummarize(t *testing.T) {
	fa := &fakeAssistant{}
	svc, _ := newTestService(t, fa)
	ctx := context.Background()
	junior, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in"})
	senior, _ := svc.Signup(SignupInput{Email: "s@aot.edu.in", Role: "senior"})
	q, _ := svc.AskQuestion(ctx, junior.ID, AskInput{Text: "help", Category: model.CategoryGSoC})

	_, err := svc.Summarize(ctx, "nope")
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	_, _ = svc.PostAnswer(senior.ID, q.ID, AnswerInput{ShortAnswer: "one"})
	_, err = svc.Summarize(ctx, q.ID)
	assert.ErrorIs(t, err, ErrNotEnoughAnswers)
	assert.Empty(t, fa.calls)

	_, _ = svc.PostAnswer(senior.ID, q.ID, AnswerInput{ShortAnswer: "two"})
	_, err = svc.Summarize(ctx, q.ID)
	assert.ErrorIs(t, err, ErrAssistUnavailable)

	fa.summary = &model.ThreadSummary{TLDR: "t", Consensus: "c", Differences: "d"}
	sum, err := svc.Summarize(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", sum.TLDR)
}

func TestThread(t *testing.T) {
	svc, _ := newTestService(t, assist.Disabled{})
	ctx := context.Background()
	junior, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in"})
	senior, _ := svc.Signup(SignupInput{Email: "s@aot.edu.in", Role: "senior"})
	q, _ := svc.AskQuestion(ctx, junior.ID, AskInput{Text: "help", Category: model.CategoryGSoC})
	_, _ = svc.PostAnswer(senior.ID, q.ID, AnswerInput{ShortAnswer: "one"})

	th, err := svc.Thread(q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.ID, th.Question.ID)
	assert.Len(t, th.Answers, 1)

	_, err = svc.Thread("nope")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestAskQuestionUseAI(t *testing.T) {
	fa := &fakeAssistant{clarification: &model.Clarification{
		NeutralQuestion: "Is DSA or development more useful for internships?",
		SuggestedTags:   []string{"dsa"},
	}}
	svc, _ := newTestService(t, fa)
	u, _ := svc.Signup(SignupInput{Email: "j@aot.edu.in"})

	q, err := svc.AskQuestion(context.Background(), u.ID, AskInput{
		Text: "dsa or dev??", Category: model.CategoryDSAvsDev, UseAI: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"clarify"}, fa.calls)
	assert.Equal(t, fa.clarification.NeutralQuestion, q.NeutralText)
	assert.Equal(t, []string{"dsa"}, q.Tags)

	// a failed clarification still posts the question as written
	fa.clarification = nil
	q, err = svc.AskQuestion(context.Background(), u.ID, AskInput{
		Text: "second try", Category: model.CategoryDSAvsDev, UseAI: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "second try", q.Title)
	assert.Empty(t, q.NeutralText)
}
