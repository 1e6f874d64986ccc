package models

import (
	"encoding/json"
	"time"
)

// Resume is an uploaded resume file and its server-side processing state.
// IsProcessed flips to true asynchronously after an analyze trigger; the
// client only observes the transition by re-fetching the list.
type Resume struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	OriginalFilename string          `json:"original_filename"`
	FilePath         string          `json:"file_path"`
	FileType         string          `json:"file_type"`
	FileSize         int64           `json:"file_size"`
	ExtractedText    string          `json:"extracted_text"`
	AnalysisResults  json.RawMessage `json:"analysis_results,omitempty"`
	IsProcessed      bool            `json:"is_processed"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Pagination is the list envelope metadata the API attaches to collections.
type Pagination struct {
	Limit int `json:"limit"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

// ResumeList is the response shape of GET /api/resume.
type ResumeList struct {
	Resumes    []Resume   `json:"resumes"`
	Pagination Pagination `json:"pagination"`
}
