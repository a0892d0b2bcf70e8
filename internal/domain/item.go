package domain

import (
	"slices"
	"time"
)

// TitleMaxRunes is the prompt prefix length used as an item title.
const TitleMaxRunes = 20

// GalleryItem is a single generated image in the gallery or a user's
// private history.
type GalleryItem struct {
	ID         string
	Title      string
	ImageURLs  []string
	LikedBy    []string
	Views      int
	Date       string
	Timestamp  int64
	Prompt     string
	AuthorID   string
	AuthorName string
	IsPublic   bool
}

// NewGalleryItem builds a fresh item for a successful generation.
// The ID is derived from the creation time; the title is the prompt
// truncated to TitleMaxRunes runes.
func NewGalleryItem(id string, now time.Time, prompt, imageURL, authorID, authorName string, isPublic bool) GalleryItem {
	return GalleryItem{
		ID:         id,
		Title:      TitleFromPrompt(prompt),
		ImageURLs:  []string{imageURL},
		LikedBy:    []string{},
		Views:      0,
		Date:       now.Format("2006-01-02"),
		Timestamp:  now.UnixMilli(),
		Prompt:     prompt,
		AuthorID:   authorID,
		AuthorName: authorName,
		IsPublic:   isPublic,
	}
}

// TitleFromPrompt truncates a prompt to the display title.
func TitleFromPrompt(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= TitleMaxRunes {
		return prompt
	}
	return string(runes[:TitleMaxRunes]) + "..."
}

// LikedByUser reports whether userID is in the item's liking set.
func (i *GalleryItem) LikedByUser(userID string) bool {
	return slices.Contains(i.LikedBy, userID)
}

// ToggleLike flips userID's membership in the liking set and reports
// whether the like is present after the call. The set never holds
// duplicates.
func (i *GalleryItem) ToggleLike(userID string) bool {
	if idx := slices.Index(i.LikedBy, userID); idx >= 0 {
		i.LikedBy = slices.Delete(i.LikedBy, idx, idx+1)
		return false
	}
	i.LikedBy = append(i.LikedBy, userID)
	return true
}
