package domain

import "strconv"

// Display fallbacks for movies with missing fields
const (
	FallbackTitle = "Untitled"
	FallbackYear  = "N/A"
	FallbackGenre = "Unknown"
)

// Movie is a single catalog entry. The ID is assigned by the remote store on
// creation, is empty before creation, and never changes afterwards.
type Movie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year"`
	Genre string `json:"genre"`
}

// DisplayTitle returns the title, or a placeholder when missing
func (m Movie) DisplayTitle() string {
	if m.Title == "" {
		return FallbackTitle
	}
	return m.Title
}

// DisplayYear returns the year as text, or "N/A" when absent
func (m Movie) DisplayYear() string {
	if m.Year <= 0 {
		return FallbackYear
	}
	return strconv.Itoa(m.Year)
}

// DisplayGenre returns the genre, or "Unknown" when absent
func (m Movie) DisplayGenre() string {
	if m.Genre == "" {
		return FallbackGenre
	}
	return m.Genre
}

// Draft holds unsaved field values collected from the user prior to
// submission. Title and Year are required; Genre may be empty.
type Draft struct {
	Title string `json:"title"`
	Genre string `json:"genre"`
	Year  int    `json:"year"`
}

// FieldPatch is a partial update for an existing movie. Nil fields are
// omitted from the request body and left untouched server-side.
type FieldPatch struct {
	Title *string `json:"title,omitempty"`
	Year  *int    `json:"year,omitempty"`
	Genre *string `json:"genre,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p FieldPatch) IsEmpty() bool {
	return p.Title == nil && p.Year == nil && p.Genre == nil
}
