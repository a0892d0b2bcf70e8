package domain

import (
	"testing"
	"time"
)

func TestTitleFromPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{name: "short prompt unchanged", prompt: "a cat", want: "a cat"},
		{name: "exactly twenty runes", prompt: "12345678901234567890", want: "12345678901234567890"},
		{name: "long prompt truncated", prompt: "a very long prompt about cats", want: "a very long prompt a..."},
		{name: "multibyte runes counted as one", prompt: "水墨画风格的中国山水，远山如黛，近水含烟，意境深远", want: "水墨画风格的中国山水，远山如黛，近水含烟..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TitleFromPrompt(tt.prompt); got != tt.want {
				t.Errorf("TitleFromPrompt(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestGalleryItem_ToggleLike(t *testing.T) {
	t.Parallel()

	item := NewGalleryItem("1", time.Now(), "a cat", "data:image/png;base64,x", "alice", "Alice", true)

	// Odd number of toggles leaves the like present, even removes it.
	for i := 1; i <= 5; i++ {
		liked := item.ToggleLike("bob")
		wantLiked := i%2 == 1
		if liked != wantLiked {
			t.Fatalf("toggle %d: liked = %v, want %v", i, liked, wantLiked)
		}
		if item.LikedByUser("bob") != wantLiked {
			t.Fatalf("toggle %d: membership = %v, want %v", i, item.LikedByUser("bob"), wantLiked)
		}
	}
}

func TestGalleryItem_ToggleLike_NoDuplicates(t *testing.T) {
	t.Parallel()

	item := NewGalleryItem("1", time.Now(), "a cat", "img", "alice", "Alice", true)

	item.ToggleLike("bob")
	item.ToggleLike("carol")
	item.ToggleLike("bob")
	item.ToggleLike("bob")

	seen := map[string]int{}
	for _, id := range item.LikedBy {
		seen[id]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Fatalf("user %s appears %d times in likedBy", id, n)
		}
	}
	if !item.LikedByUser("bob") || !item.LikedByUser("carol") {
		t.Fatalf("expected bob and carol in likedBy, got %v", item.LikedBy)
	}
}

func TestNewGalleryItem_Defaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	item := NewGalleryItem("42", now, "a cat", "img", "alice", "Alice", false)

	if item.Views != 0 {
		t.Errorf("views = %d, want 0", item.Views)
	}
	if len(item.LikedBy) != 0 {
		t.Errorf("likedBy = %v, want empty", item.LikedBy)
	}
	if item.Date != "2026-03-14" {
		t.Errorf("date = %q, want 2026-03-14", item.Date)
	}
	if item.Timestamp != now.UnixMilli() {
		t.Errorf("timestamp = %d, want %d", item.Timestamp, now.UnixMilli())
	}
	if item.IsPublic {
		t.Error("expected private item")
	}
	if len(item.ImageURLs) != 1 || item.ImageURLs[0] != "img" {
		t.Errorf("imageURLs = %v", item.ImageURLs)
	}
}

func TestUserIDFromUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		want     string
	}{
		{name: "lowercase passthrough", username: "alice", want: "alice"},
		{name: "uppercase folded", username: "Alice", want: "alice"},
		{name: "spaces become underscores", username: "Ada Lovelace", want: "ada_lovelace"},
		{name: "each space replaced", username: "a  b", want: "a__b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := UserIDFromUsername(tt.username); got != tt.want {
				t.Errorf("UserIDFromUsername(%q) = %q, want %q", tt.username, got, tt.want)
			}
		})
	}
}
