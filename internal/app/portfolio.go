package app

import "time"

type PortfolioRequest struct {
	Now   *time.Time
	Owner string
}

type PortfolioEntry struct {
	ShortID     string    `json:"short_id" yaml:"short_id"`
	Title       string    `json:"title" yaml:"title"`
	Client      string    `json:"client" yaml:"client"`
	CompletedAt time.Time `json:"completed_at" yaml:"completed_at"`
	Messages    int       `json:"messages" yaml:"messages"`
	XP          int       `json:"xp" yaml:"xp"`
	Brief       string    `json:"brief,omitempty" yaml:"brief,omitempty"`
}

type Portfolio struct {
	Owner       string           `json:"owner,omitempty" yaml:"owner,omitempty"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Level       int              `json:"level" yaml:"level"`
	XP          int              `json:"xp" yaml:"xp"`
	Entries     []PortfolioEntry `json:"projects" yaml:"projects"`
}
