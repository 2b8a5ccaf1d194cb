package util

import "testing"

func TestMentionsProduct(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		product string
		want    bool
	}{
		{"exact case-insensitive", "Loving my new iPhone 14 so far", "iphone 14", true},
		{"model suffix is fine", "the iphone 14 pro camera is great", "iPhone 14", true},
		{"longer model number rejected", "iphone 145 is not a thing", "iPhone 14", false},
		{"different model rejected", "iphone 17 rumors", "iPhone 14", false},
		{"name without digits", "Sony WH-1000XM5 vs AirPods Max", "airpods max", true},
		{"missing name", "a generic phone review", "pixel 8", false},
		{"extra whitespace", "Galaxy   S24  is fast", "galaxy s24", true},
		{"empty product", "anything", "  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MentionsProduct(tt.text, tt.product); got != tt.want {
				t.Errorf("MentionsProduct(%q, %q) mismatch: got %v, want %v", tt.text, tt.product, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("héllo world", 5); got != "héllo" {
		t.Errorf("Truncate mismatch: got %q, want %q", got, "héllo")
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate mismatch: got %q, want %q", got, "short")
	}
}

func TestHashModStable(t *testing.T) {
	a := HashMod("pixel 8_3", 20)
	b := HashMod("pixel 8_3", 20)
	if a != b {
		t.Errorf("HashMod not stable: %d vs %d", a, b)
	}
	if a < 0 || a >= 20 {
		t.Errorf("HashMod out of range: %d", a)
	}
}
