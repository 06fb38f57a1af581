package model

import "time"

// StructuredAnswer 导师的结构化回答
// Upvotes == len(UpvotedBy), HelpedCount == len(HelpedBy)
type StructuredAnswer struct {
	ID          string    `json:"id"`
	QuestionID  string    `json:"question_id"`
	UserID      string    `json:"user_id"`
	UserRole    Role      `json:"user_role"`
	UserBranch  string    `json:"user_branch"`
	ShortAnswer string    `json:"short_answer"`
	Pros        []string  `json:"pros"`
	Cons        []string  `json:"cons"`
	ActionPlan  []string  `json:"action_plan"`
	Upvotes     int       `json:"upvotes"`
	UpvotedBy   []string  `json:"upvoted_by"`
	HelpedCount int       `json:"helped_count"`
	HelpedBy    []string  `json:"helped_by"`
	Comments    []Comment `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
}

// Clone returns a deep copy of a, including comments and voter sets.
func (a StructuredAnswer) Clone() StructuredAnswer {
	a.Pros = cloneStrings(a.Pros)
	a.Cons = cloneStrings(a.Cons)
	a.ActionPlan = cloneStrings(a.ActionPlan)
	a.UpvotedBy = cloneStrings(a.UpvotedBy)
	a.HelpedBy = cloneStrings(a.HelpedBy)
	comments := make([]Comment, len(a.Comments))
	copy(comments, a.Comments)
	a.Comments = comments
	return a
}

// AnswerInput is everything a mentor supplies when answering.
type AnswerInput struct {
	QuestionID  string
	UserID      string
	UserRole    Role
	UserBranch  string
	ShortAnswer string
	Pros        []string
	Cons        []string
	ActionPlan  []string
}

// Comment 回答下的评论，只追加
type Comment struct {
	ID        string    `json:"id"`
	AnswerID  string    `json:"answer_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
