package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidBadgeID(t *testing.T) {
	valid := []string{"E01", "1017", "BADGE0042", "a1b2c3"}
	invalid := []string{"", "ab", "has space", "badge-42", "0123456789012345678901"}
	for _, id := range valid {
		if !IsValidBadgeID(id) {
			t.Errorf("IsValidBadgeID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidBadgeID(id) {
			t.Errorf("IsValidBadgeID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-10"); !ok {
		t.Error("IsValidDate(2025-02-10) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "10-02-2025", "2025-02-30", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	if _, ok := IsValidClock("09:35:00"); !ok {
		t.Error("IsValidClock(09:35:00) = false, want true")
	}
	for _, s := range []string{"24:00:00", "9:35", "09:35", ""} {
		if _, ok := IsValidClock(s); ok {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsValidWallClock(t *testing.T) {
	ts, ok := IsValidWallClock("2025-02-10 07:55:00")
	if !ok {
		t.Fatal("IsValidWallClock(2025-02-10 07:55:00) = false, want true")
	}
	if ts.Hour() != 7 || ts.Minute() != 55 {
		t.Errorf("parsed wrong time: %v", ts)
	}
	for _, s := range []string{"2025-02-10T07:55:00Z", "2025-02-10", "07:55:00", ""} {
		if _, ok := IsValidWallClock(s); ok {
			t.Errorf("IsValidWallClock(%q) = true, want false", s)
		}
	}
}
