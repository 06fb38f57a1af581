package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/internal/store"
)

type memSnapshots struct {
	mu    sync.Mutex
	saved store.Snapshot
	saves int
	err   error
}

func (m *memSnapshots) Migrate(context.Context) error { return nil }

func (m *memSnapshots) Save(_ context.Context, sn store.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saved = sn
	m.saves++
	return nil
}

func (m *memSnapshots) Load(context.Context) (store.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved, m.err
}

func (m *memSnapshots) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func TestFlusherSkipsUnchanged(t *testing.T) {
	s := store.New()
	repo := &memSnapshots{}
	f := NewSnapshotFlusher(s, repo, time.Hour)
	ctx := context.Background()

	s.CreateUser(model.UserInput{Email: "a@aot.edu.in"})
	require.NoError(t, f.Flush(ctx))
	require.NoError(t, f.Flush(ctx))
	assert.Equal(t, 1, repo.count())

	s.CreateUser(model.UserInput{Email: "b@aot.edu.in"})
	require.NoError(t, f.Flush(ctx))
	assert.Equal(t, 2, repo.count())
	assert.Len(t, repo.saved.Users, 2)
}

func TestFlusherRetriesAfterError(t *testing.T) {
	s := store.New()
	repo := &memSnapshots{err: errors.New("disk full")}
	f := NewSnapshotFlusher(s, repo, time.Hour)

	s.CreateUser(model.UserInput{Email: "a@aot.edu.in"})
	assert.Error(t, f.Flush(context.Background()))

	repo.err = nil
	require.NoError(t, f.Flush(context.Background()))
	assert.Equal(t, 1, repo.count())
}

func TestFlusherRestore(t *testing.T) {
	src := store.New()
	store.Seed(src)
	repo := &memSnapshots{saved: src.Export()}

	dst := store.New()
	f := NewSnapshotFlusher(dst, repo, time.Hour)
	ok, err := f.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, dst.ListQuestions(), 2)

	// nothing changed since the restore
	require.NoError(t, f.Flush(context.Background()))
	assert.Equal(t, 0, repo.count())

	empty := NewSnapshotFlusher(store.New(), &memSnapshots{}, time.Hour)
	ok, err = empty.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFlusherStartStop(t *testing.T) {
	s := store.New()
	repo := &memSnapshots{}
	f := NewSnapshotFlusher(s, repo, 10*time.Millisecond)
	stop := f.Start()

	s.CreateUser(model.UserInput{Email: "a@aot.edu.in"})
	assert.Eventually(t, func() bool { return repo.count() >= 1 }, time.Second, 5*time.Millisecond)

	s.CreateUser(model.UserInput{Email: "b@aot.edu.in"})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, stop(ctx))

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.saved.Users, 2)
}
