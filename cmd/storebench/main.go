package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/d60-Lab/peerpath/config"
	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/internal/repository"
	"github.com/d60-Lab/peerpath/internal/store"
	"github.com/d60-Lab/peerpath/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

func avg(vs []time.Duration) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range vs {
		sum += d
	}
	return sum / time.Duration(len(vs))
}

// run executes ops operations spread over conc workers and returns the
// per-operation latencies.
func run(ops, conc int, op func(i int)) ([]time.Duration, time.Duration) {
	feed := make(chan int, ops)
	for i := 0; i < ops; i++ {
		feed <- i
	}
	close(feed)

	out := make(chan time.Duration, ops)
	var wg sync.WaitGroup
	t0 := time.Now()
	for w := 0; w < conc; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range feed {
				st := time.Now()
				op(i)
				out <- time.Since(st)
			}
		}()
	}
	wg.Wait()
	total := time.Since(t0)
	close(out)

	recs := make([]time.Duration, 0, ops)
	for d := range out {
		recs = append(recs, d)
	}
	return recs, total
}

func report(name string, recs []time.Duration, total time.Duration) {
	fmt.Printf("%-12s ops=%d total=%v avg=%v p50=%v p95=%v p99=%v\n",
		name, len(recs), total, avg(recs), pct(recs, 0.50), pct(recs, 0.95), pct(recs, 0.99))
}

func main() {
	users := envInt("USERS", 1000)
	questions := envInt("QUESTIONS", 2000)
	answersPer := envInt("ANSWERS", 5)
	ops := envInt("N", 20000)
	conc := envInt("CONC", 8)

	s := store.New()
	uids := make([]string, users)
	for i := range uids {
		role := model.RoleJunior
		if i%3 == 0 {
			role = model.RoleSenior
		}
		uids[i] = s.CreateUser(model.UserInput{Email: fmt.Sprintf("u%05d@bench.edu.in", i), Role: role}).ID
	}
	qids := make([]string, questions)
	var aids []string
	for i := range qids {
		q := s.CreateQuestion(model.QuestionInput{
			Title:    fmt.Sprintf("question %d", i),
			Category: model.Categories[i%len(model.Categories)],
			UserID:   uids[i%users],
		})
		qids[i] = q.ID
		for j := 0; j < answersPer; j++ {
			a := s.CreateAnswer(model.AnswerInput{QuestionID: q.ID, UserID: uids[(i+j)%users], ShortAnswer: "bench"})
			aids = append(aids, a.ID)
		}
	}

	fmt.Printf("USERS=%d QUESTIONS=%d ANSWERS/q=%d N=%d CONC=%d\n", users, questions, answersPer, ops, conc)

	rnd := make([]int, ops)
	for i := range rnd {
		rnd[i] = rand.Intn(1 << 30)
	}

	recs, total := run(ops, conc, func(i int) {
		s.ToggleUpvote(aids[rnd[i]%len(aids)], uids[i%users])
	})
	report("upvote", recs, total)

	recs, total = run(ops, conc, func(i int) {
		s.ListAnswers(qids[rnd[i]%len(qids)])
	})
	report("list-answers", recs, total)

	recs, total = run(ops/100+1, conc, func(int) {
		s.ListQuestions()
	})
	report("feed", recs, total)

	recs, total = run(ops, conc, func(i int) {
		a := aids[rnd[i]%len(aids)]
		s.AddComment(a, uids[i%users], "bench comment", "")
	})
	report("comment", recs, total)

	// snapshot flush timing against the configured database
	cfg := must(config.Load())
	if !cfg.Database.Enabled {
		return
	}
	db := must(database.InitDB(cfg.Database))
	defer func() { _ = database.Close(db) }()
	repo := repository.NewSnapshotRepository(db)
	ctx := context.Background()
	if err := repo.Migrate(ctx); err != nil {
		panic(err)
	}
	sn := s.Export()
	t0 := time.Now()
	if err := repo.Save(ctx, sn); err != nil {
		panic(err)
	}
	fmt.Printf("snapshot save: users=%d questions=%d answers=%d mentions=%d took=%v\n",
		len(sn.Users), len(sn.Questions), len(sn.Answers), len(sn.Mentions), time.Since(t0))
}
