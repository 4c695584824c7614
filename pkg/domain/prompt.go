package domain

import "time"

type PromptKind string

const (
	PromptKindText  PromptKind = "text"
	PromptKindImage PromptKind = "image"
)

// Prompt is a persisted generation record. Label holds the task type for
// text prompts and the style for image prompts.
type Prompt struct {
	ID        int64      `bun:",pk,autoincrement"`
	Kind      PromptKind `bun:"kind"`
	Text      string     `bun:"text"`
	Label     string     `bun:"label"`
	Model     string     `bun:"model"`
	Provider  string     `bun:"provider"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:now()"`
}
