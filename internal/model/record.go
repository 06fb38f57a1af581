package model

import "time"

// 快照持久化使用的表结构。Position 记录进程内的插入顺序，加载时按它恢复。

type UserRecord struct {
	ID             string   `gorm:"primaryKey;type:varchar(64)"`
	Position       int      `gorm:"index;not null"`
	Email          string   `gorm:"type:varchar(255);index"`
	Role           string   `gorm:"type:varchar(16);not null"`
	DisplayName    string   `gorm:"type:varchar(128)"`
	Branch         string   `gorm:"type:varchar(32)"`
	Batch          string   `gorm:"type:varchar(8)"`
	Interests      []string `gorm:"serializer:json"`
	QuestionsAsked int
	AnswersGiven   int
	HelpedCount    int
	TotalUpvotes   int
	CreatedAt      time.Time
}

func (UserRecord) TableName() string { return "users" }

type QuestionRecord struct {
	ID                   string          `gorm:"primaryKey;type:varchar(64)"`
	Position             int             `gorm:"index;not null"`
	Title                string          `gorm:"type:varchar(255)"`
	OriginalText         string          `gorm:"type:text"`
	NeutralText          string          `gorm:"type:text"`
	BaselineAnswer       *BaselineAnswer `gorm:"serializer:json"`
	SuggestedTags        []string        `gorm:"serializer:json"`
	Category             string          `gorm:"type:varchar(64);index"`
	Tags                 []string        `gorm:"serializer:json"`
	AnonymousDisplayName string          `gorm:"type:varchar(128)"`
	UserID               string          `gorm:"type:varchar(64);index"`
	Upvotes              int
	IsResolved           bool
	CreatedAt            time.Time
}

func (QuestionRecord) TableName() string { return "questions" }

type AnswerRecord struct {
	ID          string   `gorm:"primaryKey;type:varchar(64)"`
	Position    int      `gorm:"index;not null"`
	QuestionID  string   `gorm:"type:varchar(64);index;not null"`
	UserID      string   `gorm:"type:varchar(64);index"`
	UserRole    string   `gorm:"type:varchar(16)"`
	UserBranch  string   `gorm:"type:varchar(32)"`
	ShortAnswer string   `gorm:"type:text"`
	Pros        []string `gorm:"serializer:json"`
	Cons        []string `gorm:"serializer:json"`
	ActionPlan  []string `gorm:"serializer:json"`
	Upvotes     int
	UpvotedBy   []string `gorm:"serializer:json"`
	HelpedCount int
	HelpedBy    []string `gorm:"serializer:json"`
	CreatedAt   time.Time
}

func (AnswerRecord) TableName() string { return "answers" }

// CommentRecord 评论单独成表，Position 为在所属回答内的顺序
type CommentRecord struct {
	ID        string `gorm:"primaryKey;type:varchar(64)"`
	Position  int    `gorm:"not null"`
	AnswerID  string `gorm:"type:varchar(64);index;not null"`
	UserID    string `gorm:"type:varchar(64)"`
	UserName  string `gorm:"type:varchar(128)"`
	Text      string `gorm:"type:text"`
	CreatedAt time.Time
}

func (CommentRecord) TableName() string { return "comments" }

type MentionRecord struct {
	ID           string `gorm:"primaryKey;type:varchar(64)"`
	Position     int    `gorm:"index;not null"`
	TargetUserID string `gorm:"type:varchar(64);index;not null"`
	FromUserName string `gorm:"type:varchar(128)"`
	QuestionID   string `gorm:"type:varchar(64)"`
	AnswerID     string `gorm:"type:varchar(64)"`
	Text         string `gorm:"type:varchar(255)"`
	IsRead       bool
	CreatedAt    time.Time
}

func (MentionRecord) TableName() string { return "mentions" }
