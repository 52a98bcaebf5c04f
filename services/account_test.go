package services

import "testing"

func TestClassifyAccount(t *testing.T) {
	tests := []struct {
		account string
		want    AccountKind
	}{
		{"a@b.com", AccountEmail},
		{"user@example.org", AccountEmail},
		{"@", AccountEmail},
		{"weird@", AccountEmail},
		{"13800000000", AccountPhone},
		{"+8613800000000", AccountPhone},
		{"not-an-email", AccountPhone},
		{"", AccountPhone},
	}

	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			if got := ClassifyAccount(tt.account); got != tt.want {
				t.Errorf("ClassifyAccount(%q) = %v, want %v", tt.account, got, tt.want)
			}
		})
	}
}
