package cache

import (
	"testing"
)

func TestFeedKey(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		expected string
	}{
		{"first page", 1, 10, "feed:global:p1:s10"},
		{"later page", 3, 25, "feed:global:p3:s25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FeedKey(tt.page, tt.size); got != tt.expected {
				t.Errorf("FeedKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRedis_NamespaceKey(t *testing.T) {
	store := &Redis{}

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"simple key", "test", "yatube:test"},
		{"key with colon", "feed:global", "yatube:feed:global"},
		{"empty key", "", "yatube:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := store.namespaceKey(tt.key)
			if result != tt.expected {
				t.Errorf("namespaceKey() = %v, want %v", result, tt.expected)
			}
		})
	}
}
