package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/peerpath/config"
	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/internal/store"
	"github.com/d60-Lab/peerpath/pkg/database"
)

func openTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db, err := database.InitDB(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(tb.TempDir(), "peerpath.db"),
	})
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = database.Close(db) })
	return db
}

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	store.Seed(s)
	// a toggle and a read flag so non-default state is covered
	a := s.ListAnswers(s.ListQuestions()[0].ID)[0]
	require.True(t, s.ToggleUpvote(a.ID, store.SeedJuniorID))
	s.MarkMentionsRead(store.SeedSeniorID)
	return s
}

func TestSnapshotEmptyDatabase(t *testing.T) {
	repo := NewSnapshotRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Migrate(ctx))

	sn, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, sn.Empty())
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo := NewSnapshotRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Migrate(ctx))

	src := seededStore(t)
	want := src.Export()
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)

	require.Len(t, got.Users, len(want.Users))
	for i := range want.Users {
		assert.Equal(t, want.Users[i].ID, got.Users[i].ID)
		assert.Equal(t, want.Users[i].Stats, got.Users[i].Stats)
		assert.Equal(t, want.Users[i].Interests, got.Users[i].Interests)
		assert.Equal(t, want.Users[i].Role, got.Users[i].Role)
		assert.True(t, want.Users[i].CreatedAt.Equal(got.Users[i].CreatedAt))
	}

	require.Len(t, got.Questions, len(want.Questions))
	for i := range want.Questions {
		assert.Equal(t, want.Questions[i].ID, got.Questions[i].ID)
		assert.Equal(t, want.Questions[i].Tags, got.Questions[i].Tags)
		assert.Equal(t, want.Questions[i].BaselineAnswer, got.Questions[i].BaselineAnswer)
	}

	require.Len(t, got.Answers, len(want.Answers))
	for i := range want.Answers {
		w, g := want.Answers[i], got.Answers[i]
		assert.Equal(t, w.ID, g.ID)
		assert.Equal(t, w.ActionPlan, g.ActionPlan)
		assert.Equal(t, w.UpvotedBy, g.UpvotedBy)
		assert.Equal(t, w.Upvotes, g.Upvotes)
		require.Len(t, g.Comments, len(w.Comments))
		for j := range w.Comments {
			assert.Equal(t, w.Comments[j].ID, g.Comments[j].ID)
			assert.Equal(t, w.Comments[j].Text, g.Comments[j].Text)
		}
	}

	require.Len(t, got.Mentions, len(want.Mentions))
	for i := range want.Mentions {
		assert.Equal(t, want.Mentions[i].ID, got.Mentions[i].ID)
		assert.Equal(t, want.Mentions[i].IsRead, got.Mentions[i].IsRead)
	}

	// the loaded snapshot behaves like the original store
	dst := store.New()
	dst.Import(got)
	assert.Equal(t, idsOf(src.ListQuestions()), idsOf(dst.ListQuestions()))
	u, ok := dst.GetUser(store.SeedJuniorID)
	require.True(t, ok)
	assert.Equal(t, 7, u.Stats.QuestionsAsked)
}

func TestSnapshotSaveReplaces(t *testing.T) {
	repo := NewSnapshotRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Migrate(ctx))

	require.NoError(t, repo.Save(ctx, seededStore(t).Export()))

	s := store.New()
	s.CreateUser(model.UserInput{Email: "solo@aot.edu.in"})
	require.NoError(t, repo.Save(ctx, s.Export()))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Users, 1)
	assert.Equal(t, "solo@aot.edu.in", got.Users[0].Email)
	assert.Empty(t, got.Questions)
	assert.Empty(t, got.Answers)
	assert.Empty(t, got.Mentions)
}

func idsOf(qs []model.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func BenchmarkSnapshotSave(b *testing.B) {
	repo := NewSnapshotRepository(openTestDB(b))
	ctx := context.Background()
	if err := repo.Migrate(ctx); err != nil {
		b.Fatalf("migrate: %v", err)
	}

	s := store.New()
	users := make([]model.User, 200)
	for i := range users {
		users[i] = s.CreateUser(model.UserInput{Email: fmt.Sprintf("u%03d@aot.edu.in", i), Role: model.RoleSenior})
	}
	for i := 0; i < 500; i++ {
		q := s.CreateQuestion(model.QuestionInput{Title: fmt.Sprintf("q%d", i), UserID: users[i%len(users)].ID})
		a := s.CreateAnswer(model.AnswerInput{QuestionID: q.ID, UserID: users[(i+1)%len(users)].ID, ShortAnswer: "a"})
		s.AddComment(a.ID, users[i%len(users)].ID, "thanks", q.ID)
	}
	sn := s.Export()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := repo.Save(ctx, sn); err != nil {
			b.Fatalf("save: %v", err)
		}
	}
}
