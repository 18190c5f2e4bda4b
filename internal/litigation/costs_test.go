package litigation

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"30000000", 30_000_000},
		{"30,000,000", 30_000_000},
		{" 1,000 ", 1_000},
		{"", 0},
		{"abc", 0},
		{"12억", 0},
		{"-500", 0},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestComputeCosts(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		stamp   int64
		service int64
	}{
		{"tier 1 upper bound", 10_000_000, 50_000, 52_000},
		{"tier 2", 50_000_000, 230_000, 78_000},
		{"tier 2 upper bound", 100_000_000, 455_000, 78_000},
		{"tier 3", 200_000_000, 855_000, 78_000},
		{"floor to lower hundred", 1_234_567, 6_100, 52_000},
		{"minimum stamp enforced", 100_000, 1_000, 52_000},
		{"service fee small tier boundary", 30_000_000, 140_000, 52_000},
		{"service fee large tier past boundary", 30_000_001, 140_000, 78_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCosts(tt.amount)
			if got.Principal != tt.amount {
				t.Fatalf("principal = %d, want %d", got.Principal, tt.amount)
			}
			if got.StampDuty != tt.stamp {
				t.Fatalf("stamp duty = %d, want %d", got.StampDuty, tt.stamp)
			}
			if got.ServiceFee != tt.service {
				t.Fatalf("service fee = %d, want %d", got.ServiceFee, tt.service)
			}
		})
	}
}

func TestComputeCostsZeroAndInvalid(t *testing.T) {
	for _, raw := range []string{"0", "abc", "", "-1"} {
		got := ComputeCostsInput(raw)
		if got != (CostBreakdown{}) {
			t.Errorf("ComputeCostsInput(%q) = %+v, want all-zero", raw, got)
		}
	}
}
