package models

import "time"

// NewsCategory - категория сообщения ленты
type NewsCategory string

const (
	NewsCategoryUrgent   NewsCategory = "URGENT"
	NewsCategoryUpdate   NewsCategory = "UPDATE"
	NewsCategoryAdvisory NewsCategory = "ADVISORY"
)

type NewsUpdate struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Timestamp string       `json:"timestamp"`
	Category  NewsCategory `json:"category"`
	Content   string       `json:"content"`
}

// NewsFeedSnapshot - текущее состояние ленты оповещений
type NewsFeedSnapshot struct {
	Items      []NewsUpdate `json:"items"`
	Loading    bool         `json:"loading"`
	FetchedAt  time.Time    `json:"fetched_at"`
	Generation uint64       `json:"generation"`
}
