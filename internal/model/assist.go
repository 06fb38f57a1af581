package model

// Clarification is the AI rewrite of a raw question.
type Clarification struct {
	NeutralQuestion string         `json:"neutralQuestion"`
	BaselineAnswer  BaselineAnswer `json:"baselineAnswer"`
	SuggestedTags   []string       `json:"suggestedTags"`
}

// ThreadSummary is the AI synthesis of a thread with two or more answers.
type ThreadSummary struct {
	TLDR        string `json:"tldr"`
	Consensus   string `json:"consensus"`
	Differences string `json:"differences"`
}
