package pipeline

import "testing"

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr string
	}{
		{"", Skip, ""},
		{"skip", Skip, ""},
		{"right", UntilRight, ""},
		{"left", Skip, "unknown mod `left`"},
	}

	for _, tc := range tests {
		got, err := ParsePolicy(tc.in)
		if tc.wantErr != "" {
			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("ParsePolicy(%q) error = %v, want %q", tc.in, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePolicy(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if tc.in != "" && got.String() != tc.in {
			t.Errorf("String() = %q, want %q", got.String(), tc.in)
		}
	}
}

func TestPolicy_Next(t *testing.T) {
	tests := []struct {
		policy  Policy
		correct bool
		want    int
	}{
		{Skip, true, 4},
		{Skip, false, 4},
		{UntilRight, true, 4},
		{UntilRight, false, 3},
	}

	for _, tc := range tests {
		if got := tc.policy.Next(3, tc.correct); got != tc.want {
			t.Errorf("%v.Next(3, %v) = %d, want %d", tc.policy, tc.correct, got, tc.want)
		}
	}
}
