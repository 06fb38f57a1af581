package store

import "github.com/d60-Lab/peerpath/internal/model"

// Snapshot is a full copy of a Store's state. Every slice is in insertion
// order, oldest first.
type Snapshot struct {
	Users     []model.User
	Questions []model.Question
	Answers   []model.StructuredAnswer
	Mentions  []model.Mention
}

// Empty reports whether the snapshot holds no entities.
func (sn Snapshot) Empty() bool {
	return len(sn.Users) == 0 && len(sn.Questions) == 0 && len(sn.Answers) == 0 && len(sn.Mentions) == 0
}

// Export copies the current state.
func (s *Store) Export() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sn := Snapshot{
		Users:     make([]model.User, len(s.users)),
		Questions: make([]model.Question, len(s.questions)),
		Answers:   make([]model.StructuredAnswer, len(s.answers)),
		Mentions:  make([]model.Mention, len(s.mentions)),
	}
	for i, r := range s.users {
		sn.Users[i] = r.u.Clone()
	}
	for i, r := range s.questions {
		sn.Questions[i] = r.q.Clone()
	}
	for i, r := range s.answers {
		sn.Answers[i] = r.a.Clone()
	}
	for i, r := range s.mentions {
		sn.Mentions[i] = r.m
	}
	return sn
}

// Import replaces the whole state with sn. Insertion order follows the
// slice order of sn.
func (s *Store) Import(sn Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev++

	s.seq = 0
	s.users = make([]*userRec, 0, len(sn.Users))
	s.userIdx = make(map[string]*userRec, len(sn.Users))
	s.questions = make([]*questionRec, 0, len(sn.Questions))
	s.qIdx = make(map[string]*questionRec, len(sn.Questions))
	s.answers = make([]*answerRec, 0, len(sn.Answers))
	s.aIdx = make(map[string]*answerRec, len(sn.Answers))
	s.mentions = make([]*mentionRec, 0, len(sn.Mentions))

	for _, u := range sn.Users {
		r := &userRec{u: u.Clone(), seq: s.next()}
		s.users = append(s.users, r)
		s.userIdx[u.ID] = r
	}
	for _, q := range sn.Questions {
		r := &questionRec{q: q.Clone(), seq: s.next()}
		s.questions = append(s.questions, r)
		s.qIdx[q.ID] = r
	}
	for _, a := range sn.Answers {
		r := &answerRec{a: a.Clone(), seq: s.next()}
		s.answers = append(s.answers, r)
		s.aIdx[a.ID] = r
	}
	for _, m := range sn.Mentions {
		s.mentions = append(s.mentions, &mentionRec{m: m, seq: s.next()})
	}
}
