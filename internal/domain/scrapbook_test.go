package domain

import "testing"

func TestMemory_DisplayText(t *testing.T) {
	t.Parallel()

	text := "first trip to the lake"
	empty := ""
	url := "https://cdn.example.com/lake.png"

	tests := []struct {
		name string
		m    Memory
		want string
	}{
		{name: "text", m: Memory{Content: &text}, want: text},
		{name: "image only", m: Memory{ImageURL: &url}, want: "Image Memory"},
		{name: "empty text", m: Memory{Content: &empty, ImageURL: &url}, want: "Image Memory"},
		{name: "nothing", m: Memory{}, want: "Image Memory"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.m.DisplayText(); got != tt.want {
				t.Errorf("DisplayText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateIdea_StatusLabel(t *testing.T) {
	t.Parallel()

	if got := (DateIdea{}).StatusLabel(); got != "To Do" {
		t.Errorf("StatusLabel() = %q, want %q", got, "To Do")
	}
	if got := (DateIdea{Completed: true}).StatusLabel(); got != "Done" {
		t.Errorf("StatusLabel() = %q, want %q", got, "Done")
	}
}

func TestCountdown_Upcoming(t *testing.T) {
	t.Parallel()

	tests := []struct {
		days int
		want bool
	}{
		{days: 1, want: true},
		{days: 0, want: false},
		{days: -3, want: false},
	}
	for _, tt := range tests {
		if got := (Countdown{Days: tt.days}).Upcoming(); got != tt.want {
			t.Errorf("Countdown{Days: %d}.Upcoming() = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestParseTenantID(t *testing.T) {
	t.Parallel()

	id, err := ParseTenantID("1093948572634521600")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != TenantID(1093948572634521600) {
		t.Errorf("got %d", id)
	}
	if id.String() != "1093948572634521600" {
		t.Errorf("String() = %q", id.String())
	}

	for _, bad := range []string{"", "abc", "12x", "99999999999999999999"} {
		if _, err := ParseTenantID(bad); err == nil {
			t.Errorf("ParseTenantID(%q) expected error", bad)
		}
	}
}
