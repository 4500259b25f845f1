package calculator

import (
	"testing"
)

func TestEqualShares(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		friends  []string
		wantErr  bool
		wantEach int64
		wantMine int64
	}{
		{
			name:     "three people divide evenly",
			total:    3000,
			friends:  []string{"A", "B"},
			wantEach: 1000,
			wantMine: 1000,
		},
		{
			name:     "remainder stays with the creator",
			total:    1000,
			friends:  []string{"A", "B"},
			wantEach: 333,
			wantMine: 334,
		},
		{
			name:    "zero total should error",
			total:   0,
			friends: []string{"A"},
			wantErr: true,
		},
		{
			name:    "no friends should error",
			total:   100,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := EqualShares(tt.total, tt.friends)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EqualShares() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(shares) != len(tt.friends) {
				t.Fatalf("got %d shares, want %d", len(shares), len(tt.friends))
			}
			for i, s := range shares {
				if s.UserID != tt.friends[i] {
					t.Errorf("share %d user = %s, want %s", i, s.UserID, tt.friends[i])
				}
				if s.Amount != tt.wantEach {
					t.Errorf("share %d amount = %d, want %d", i, s.Amount, tt.wantEach)
				}
			}
			if got := CreatorShare(tt.total, shares); got != tt.wantMine {
				t.Errorf("CreatorShare() = %d, want %d", got, tt.wantMine)
			}
		})
	}
}

func TestValidateShares(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		shares  []Share
		wantErr bool
	}{
		{"valid shares", 3000, []Share{{"A", 1000}, {"B", 1000}}, false},
		{"zero share is allowed", 3000, []Share{{"A", 0}}, false},
		{"negative share", 3000, []Share{{"A", -1}}, true},
		{"duplicate participant", 3000, []Share{{"A", 1}, {"A", 2}}, true},
		{"missing participant id", 3000, []Share{{"", 1}}, true},
		{"empty participant set", 3000, nil, true},
		{"non-positive total", 0, []Share{{"A", 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShares(tt.total, tt.shares)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShares() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
