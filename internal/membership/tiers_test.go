package membership

import "testing"

func TestTierForSpending(t *testing.T) {
	cases := []struct {
		spending float64
		want     string
	}{
		{0, TierIron},
		{999_999, TierIron},
		{1_000_000, TierSilver},
		{4_999_999, TierSilver},
		{5_000_000, TierGold},
		{9_999_999, TierGold},
		{10_000_000, TierDiamond},
		{25_000_000, TierDiamond},
	}

	for _, tc := range cases {
		if got := TierForSpending(tc.spending); got != tc.want {
			t.Errorf("TierForSpending(%.0f) = %s, want %s", tc.spending, got, tc.want)
		}
	}
}

func TestNextThreshold(t *testing.T) {
	next := NextThreshold(TierGold)
	if next == nil || next.Tier != TierDiamond || next.MinSpending != 10_000_000 {
		t.Errorf("got %+v, want the diamond rung", next)
	}

	if NextThreshold(TierDiamond) != nil {
		t.Error("diamond has no next rung")
	}

	if NextThreshold("Bronze") != nil {
		t.Error("unknown tier has no next rung")
	}
}
