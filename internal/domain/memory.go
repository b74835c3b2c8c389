package domain

import "time"

// Memory is a scrapbook note: text, an image URL, or both.
// Rows are immutable once written.
type Memory struct {
	ID        int64
	TenantID  TenantID
	Content   *string
	ImageURL  *string
	CreatedAt time.Time
}

// DisplayText returns the memory text, or a fallback label for image-only memories.
func (m Memory) DisplayText() string {
	if m.Content != nil && *m.Content != "" {
		return *m.Content
	}
	return "Image Memory"
}

// HasImage reports whether an image URL is attached.
func (m Memory) HasImage() bool {
	return m.ImageURL != nil && *m.ImageURL != ""
}
