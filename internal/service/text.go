package service

import (
	"fmt"
	"strings"

	"github.com/d60-Lab/peerpath/internal/model"
)

const titleLen = 50

// AnonymousLabel is the public author label of a question, e.g.
// "26'th Batch CSE Student".
func AnonymousLabel(u model.User) string {
	batch := u.Batch
	if r := []rune(batch); len(r) > 2 {
		batch = string(r[len(r)-2:])
	}
	return fmt.Sprintf("%s'th Batch %s Student", batch, u.Branch)
}

// truncate keeps the first titleLen characters of s, marking a cut with "...".
func truncate(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= titleLen {
		return string(r)
	}
	return string(r[:titleLen]) + "..."
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
