package store

import "github.com/d60-Lab/peerpath/internal/model"

// Demo account ids created by Seed.
const (
	SeedSeniorID = "u_senior"
	SeedAlumniID = "u_alumni"
	SeedJuniorID = "u_junior_test"
)

// Seed loads the demo campus data set into s: three users, two questions,
// one answer on each and a comment under each answer.
func Seed(s *Store) {
	s.Import(Snapshot{Users: []model.User{
		{
			ID: SeedSeniorID, Email: "senior@aot.edu.in", Role: model.RoleSenior,
			DisplayName: "Rahul Sharma", Branch: "IT", Batch: "2024",
			Interests: []string{"Web", "Product"},
			Stats:     model.Stats{QuestionsAsked: 2, AnswersGiven: 5, HelpedCount: 15, TotalUpvotes: 45},
			CreatedAt: s.now(),
		},
		{
			ID: SeedAlumniID, Email: "alumni@aot.edu.in", Role: model.RoleAlumni,
			DisplayName: "Priya Das", Branch: "CSE", Batch: "2022",
			Interests: []string{"ML", "GSoC", "Google"},
			Stats:     model.Stats{AnswersGiven: 12, HelpedCount: 42, TotalUpvotes: 120},
			CreatedAt: s.now(),
		},
		{
			ID: SeedJuniorID, Email: "junior@aot.edu.in", Role: model.RoleJunior,
			DisplayName: "Arjun Mehra", Branch: "CSE", Batch: "2026",
			Interests: []string{"Web", "App Dev"},
			Stats:     model.Stats{QuestionsAsked: 5},
			CreatedAt: s.now(),
		},
	}})

	q1 := s.CreateQuestion(model.QuestionInput{
		Title:                "How to approach GSoC in 2025?",
		OriginalText:         "I am in 2nd year CSE. I know basic C++ and some Web Dev. How should I start preparing for GSoC?",
		Category:             model.CategoryGSoC,
		Tags:                 []string{"gsoc", "open-source", "web-dev"},
		SuggestedTags:        []string{"linux", "git", "collaboration"},
		AnonymousDisplayName: "2nd Year CSE Student",
		UserID:               SeedJuniorID,
	})
	q2 := s.CreateQuestion(model.QuestionInput{
		Title:                "Balancing Academics and GDGoC?",
		OriginalText:         "I recently joined the GDGoC team, but finding it hard to manage lab records and projects. Any tips from seniors who were in the core team?",
		Category:             model.CategoryClubsAcademics,
		Tags:                 []string{"productivity", "gdgoc", "academics"},
		SuggestedTags:        []string{"time-management", "prioritization"},
		AnonymousDisplayName: "2nd Year ECE Student",
		UserID:               SeedJuniorID,
	})

	a1 := s.CreateAnswer(model.AnswerInput{
		QuestionID:  q1.ID,
		UserID:      SeedAlumniID,
		UserRole:    model.RoleAlumni,
		UserBranch:  "CSE",
		ShortAnswer: "Start contributing to small issues in mid-sized organizations now.",
		Pros:        []string{"Early exposure to codebase", "Builds relationship with mentors"},
		Cons:        []string{"Can be overwhelming initially", "Takes time away from semester exams"},
		ActionPlan:  []string{"Dec: Pick 3 orgs", "Jan: Solve 2 good-first-issues", "Feb: Draft proposal draft 1"},
	})
	a2 := s.CreateAnswer(model.AnswerInput{
		QuestionID:  q2.ID,
		UserID:      SeedSeniorID,
		UserRole:    model.RoleSenior,
		UserBranch:  "IT",
		ShortAnswer: "Use your GDGoC projects as your college semester projects wherever possible.",
		Pros:        []string{"Double impact for same effort", "Better quality project for resume"},
		Cons:        []string{"Need professors approval", "Might not align 100% with syllabus"},
		ActionPlan:  []string{"Day 1: Map GDGoC tasks to Lab topics", "Day 7: Talk to Lab instructor", "Day 30: Finalize integrated project"},
	})

	s.AddComment(a1.ID, SeedSeniorID, "Does solving documentation issues help much for GSoC?", q1.ID)
	s.AddComment(a2.ID, SeedJuniorID, "My professor is strict about sticking to the manual. What should I do?", q2.ID)
}
