package repository

import (
	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/internal/store"
)

type records struct {
	users     []model.UserRecord
	questions []model.QuestionRecord
	answers   []model.AnswerRecord
	comments  []model.CommentRecord
	mentions  []model.MentionRecord
}

func toRecords(sn store.Snapshot) records {
	rs := records{
		users:     make([]model.UserRecord, len(sn.Users)),
		questions: make([]model.QuestionRecord, len(sn.Questions)),
		answers:   make([]model.AnswerRecord, len(sn.Answers)),
		mentions:  make([]model.MentionRecord, len(sn.Mentions)),
	}
	for i, u := range sn.Users {
		rs.users[i] = model.UserRecord{
			ID: u.ID, Position: i, Email: u.Email, Role: string(u.Role),
			DisplayName: u.DisplayName, Branch: u.Branch, Batch: u.Batch,
			Interests:      u.Interests,
			QuestionsAsked: u.Stats.QuestionsAsked,
			AnswersGiven:   u.Stats.AnswersGiven,
			HelpedCount:    u.Stats.HelpedCount,
			TotalUpvotes:   u.Stats.TotalUpvotes,
			CreatedAt:      u.CreatedAt,
		}
	}
	for i, q := range sn.Questions {
		rs.questions[i] = model.QuestionRecord{
			ID: q.ID, Position: i, Title: q.Title, OriginalText: q.OriginalText,
			NeutralText: q.NeutralText, BaselineAnswer: q.BaselineAnswer,
			SuggestedTags: q.SuggestedTags, Category: q.Category, Tags: q.Tags,
			AnonymousDisplayName: q.AnonymousDisplayName, UserID: q.UserID,
			Upvotes: q.Upvotes, IsResolved: q.IsResolved, CreatedAt: q.CreatedAt,
		}
	}
	for i, a := range sn.Answers {
		rs.answers[i] = model.AnswerRecord{
			ID: a.ID, Position: i, QuestionID: a.QuestionID, UserID: a.UserID,
			UserRole: string(a.UserRole), UserBranch: a.UserBranch,
			ShortAnswer: a.ShortAnswer, Pros: a.Pros, Cons: a.Cons, ActionPlan: a.ActionPlan,
			Upvotes: a.Upvotes, UpvotedBy: a.UpvotedBy,
			HelpedCount: a.HelpedCount, HelpedBy: a.HelpedBy,
			CreatedAt: a.CreatedAt,
		}
		for j, c := range a.Comments {
			rs.comments = append(rs.comments, model.CommentRecord{
				ID: c.ID, Position: j, AnswerID: a.ID, UserID: c.UserID,
				UserName: c.UserName, Text: c.Text, CreatedAt: c.CreatedAt,
			})
		}
	}
	for i, m := range sn.Mentions {
		rs.mentions[i] = model.MentionRecord{
			ID: m.ID, Position: i, TargetUserID: m.TargetUserID,
			FromUserName: m.FromUserName, QuestionID: m.QuestionID, AnswerID: m.AnswerID,
			Text: m.Text, IsRead: m.IsRead, CreatedAt: m.CreatedAt,
		}
	}
	return rs
}

// fromRecords expects comments sorted by position within each answer.
func fromRecords(rs records) store.Snapshot {
	sn := store.Snapshot{
		Users:     make([]model.User, len(rs.users)),
		Questions: make([]model.Question, len(rs.questions)),
		Answers:   make([]model.StructuredAnswer, len(rs.answers)),
		Mentions:  make([]model.Mention, len(rs.mentions)),
	}
	for i, u := range rs.users {
		sn.Users[i] = model.User{
			ID: u.ID, Email: u.Email, Role: model.Role(u.Role),
			DisplayName: u.DisplayName, Branch: u.Branch, Batch: u.Batch,
			Interests: u.Interests,
			Stats: model.Stats{
				QuestionsAsked: u.QuestionsAsked,
				AnswersGiven:   u.AnswersGiven,
				HelpedCount:    u.HelpedCount,
				TotalUpvotes:   u.TotalUpvotes,
			},
			CreatedAt: u.CreatedAt,
		}
	}
	for i, q := range rs.questions {
		sn.Questions[i] = model.Question{
			ID: q.ID, Title: q.Title, OriginalText: q.OriginalText,
			NeutralText: q.NeutralText, BaselineAnswer: q.BaselineAnswer,
			SuggestedTags: q.SuggestedTags, Category: q.Category, Tags: q.Tags,
			AnonymousDisplayName: q.AnonymousDisplayName, UserID: q.UserID,
			Upvotes: q.Upvotes, IsResolved: q.IsResolved, CreatedAt: q.CreatedAt,
		}
	}

	byAnswer := make(map[string][]model.Comment)
	for _, c := range rs.comments {
		byAnswer[c.AnswerID] = append(byAnswer[c.AnswerID], model.Comment{
			ID: c.ID, AnswerID: c.AnswerID, UserID: c.UserID,
			UserName: c.UserName, Text: c.Text, CreatedAt: c.CreatedAt,
		})
	}
	for i, a := range rs.answers {
		comments := byAnswer[a.ID]
		if comments == nil {
			comments = []model.Comment{}
		}
		sn.Answers[i] = model.StructuredAnswer{
			ID: a.ID, QuestionID: a.QuestionID, UserID: a.UserID,
			UserRole: model.Role(a.UserRole), UserBranch: a.UserBranch,
			ShortAnswer: a.ShortAnswer, Pros: a.Pros, Cons: a.Cons, ActionPlan: a.ActionPlan,
			Upvotes: a.Upvotes, UpvotedBy: a.UpvotedBy,
			HelpedCount: a.HelpedCount, HelpedBy: a.HelpedBy,
			Comments:  comments,
			CreatedAt: a.CreatedAt,
		}
	}
	for i, m := range rs.mentions {
		sn.Mentions[i] = model.Mention{
			ID: m.ID, TargetUserID: m.TargetUserID, FromUserName: m.FromUserName,
			QuestionID: m.QuestionID, AnswerID: m.AnswerID, Text: m.Text,
			IsRead: m.IsRead, CreatedAt: m.CreatedAt,
		}
	}
	return sn
}
