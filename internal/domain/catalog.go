package domain

import "strings"

// Service represents a bookable salon service
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // minutes
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// NormalizeCategory приводит название категории к каноническому виду
func NormalizeCategory(name string) string {
	return strings.TrimSpace(name)
}

// NormalizePhone оставляет в номере только цифры и ведущий '+'
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
