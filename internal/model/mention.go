package model

import "time"

// Mention 评论他人回答时给回答作者的提醒
type Mention struct {
	ID           string    `json:"id"`
	TargetUserID string    `json:"target_user_id"`
	FromUserName string    `json:"from_user_name"`
	QuestionID   string    `json:"question_id"`
	AnswerID     string    `json:"answer_id"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	IsRead       bool      `json:"is_read"`
}

// MentionExcerptLen is the number of characters of a comment kept in a
// mention excerpt.
const MentionExcerptLen = 50

// Excerpt truncates text to MentionExcerptLen characters and appends "...".
func Excerpt(text string) string {
	r := []rune(text)
	if len(r) > MentionExcerptLen {
		r = r[:MentionExcerptLen]
	}
	return string(r) + "..."
}
