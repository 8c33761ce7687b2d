package entities

// GameType discriminates between truth questions and dare challenges
type GameType string

const (
	GameTypeTruth GameType = "truth"
	GameTypeDare  GameType = "dare"
)

// Default bucket keys substituted for records that omit the field
const (
	DefaultCategory   = "general"
	DefaultDifficulty = "medium"
)

// Standard difficulty levels, listed in presentation order
var StandardDifficulties = []string{"easy", "medium", "hard"}

// Health statuses derived from data availability
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"
)

// Truth represents a truth question
type Truth struct {
	ID       int    `json:"id"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// Dare represents a dare challenge
type Dare struct {
	ID         int    `json:"id"`
	Content    string `json:"content"`
	Difficulty string `json:"difficulty"`
}

// GameItem is a truth or dare tagged with its type. Category is set only
// for truths, Difficulty only for dares.
type GameItem struct {
	ID         int      `json:"id"`
	Type       GameType `json:"type"`
	Content    string   `json:"content"`
	Category   string   `json:"category,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
}

// ContentStats describes the loaded corpus: totals plus per-bucket counts.
// The sum of Categories values always equals TotalTruths, and the sum of
// Difficulties values always equals TotalDares.
type ContentStats struct {
	TotalTruths  int            `json:"total_truths"`
	TotalDares   int            `json:"total_dares"`
	Categories   map[string]int `json:"categories"`
	Difficulties map[string]int `json:"difficulties"`
}

// HealthData holds the counts reported by the health endpoint
type HealthData struct {
	TotalTruths      int `json:"total_truths"`
	TotalDares       int `json:"total_dares"`
	TruthCategories  int `json:"truth_categories"`
	DareDifficulties int `json:"dare_difficulties"`
}

// HealthStatus is the health probe payload. It is always renderable; a
// failed internal check is reported through Status and Error rather than
// as an error return.
type HealthStatus struct {
	Status       string         `json:"status"`
	Timestamp    string         `json:"timestamp"`
	Data         HealthData     `json:"data"`
	Categories   map[string]int `json:"categories"`
	Difficulties map[string]int `json:"difficulties"`
	Error        string         `json:"error,omitempty"`
}

// KindStats summarizes one record kind inside GameStats
type KindStats struct {
	Total     int            `json:"total"`
	Counts    map[string]int `json:"counts"`
	Available []string       `json:"available"`
}

// GameStats merges truth and dare statistics into one view
type GameStats struct {
	Truths     KindStats `json:"truths"`
	Dares      KindStats `json:"dares"`
	TotalItems int       `json:"total_items"`
}
