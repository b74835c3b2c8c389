package domain

// DateIdea is a categorized suggestion for a date.
// Completed is carried for forward compatibility; nothing flips it yet.
type DateIdea struct {
	ID        int64
	TenantID  TenantID
	Idea      string
	Category  string
	Completed bool
}

// StatusLabel is the human-readable completion state.
func (d DateIdea) StatusLabel() string {
	if d.Completed {
		return "Done"
	}
	return "To Do"
}
