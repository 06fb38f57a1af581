package model

import (
	"strings"
	"time"
)

// Role 用户角色，只有 senior/alumni 可以发布结构化回答
type Role string

const (
	RoleJunior Role = "junior"
	RoleSenior Role = "senior"
	RoleAlumni Role = "alumni"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleJunior, RoleSenior, RoleAlumni:
		return true
	}
	return false
}

// IsMentor reports whether r may post structured answers.
func (r Role) IsMentor() bool { return r == RoleSenior || r == RoleAlumni }

// ParseRole maps a free string onto a Role; ok is false for unknown input.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Stats 由 store 的写操作维护，外部只读
type Stats struct {
	QuestionsAsked int `json:"questions_asked"`
	AnswersGiven   int `json:"answers_given"`
	HelpedCount    int `json:"helped_count"`
	TotalUpvotes   int `json:"total_upvotes"`
}

// User 用户
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	DisplayName string    `json:"display_name"`
	Branch      string    `json:"branch"`
	Batch       string    `json:"batch"`
	Interests   []string  `json:"interests"`
	Stats       Stats     `json:"stats"`
	CreatedAt   time.Time `json:"created_at"`
}

// Clone returns a copy that shares no slices with u.
func (u User) Clone() User {
	u.Interests = cloneStrings(u.Interests)
	return u
}

// Defaults applied by CreateUser when a field is left empty.
const (
	DefaultDisplayName = "Anonymous User"
	DefaultBranch      = "CSE"
	DefaultBatch       = "2026"
)

// UserInput carries the signup fields; empty values fall back to defaults.
type UserInput struct {
	Email       string
	Role        Role
	DisplayName string
	Branch      string
	Batch       string
	Interests   []string
}

// UserPatch is a partial profile update; nil fields are left untouched.
type UserPatch struct {
	Email       *string
	Role        *Role
	DisplayName *string
	Branch      *string
	Batch       *string
	Interests   []string
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
