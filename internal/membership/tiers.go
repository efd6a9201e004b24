package membership

// Tier names as the backend spells them.
const (
	TierIron    = "Iron"
	TierSilver  = "Silver"
	TierGold    = "Gold"
	TierDiamond = "Diamond"
)

// Threshold is one rung of the spending ladder, in VND.
type Threshold struct {
	Tier        string
	MinSpending float64
}

// Ladder is the tier ladder in ascending order. It mirrors the backend's
// fixed thresholds so clients can show progress without a round trip.
var Ladder = []Threshold{
	{TierIron, 0},
	{TierSilver, 1_000_000},
	{TierGold, 5_000_000},
	{TierDiamond, 10_000_000},
}

// TierForSpending maps a lifetime spending total to its tier.
func TierForSpending(total float64) string {
	tier := TierIron
	for _, rung := range Ladder {
		if total >= rung.MinSpending {
			tier = rung.Tier
		}
	}
	return tier
}

// NextThreshold returns the next rung above the given tier, or nil at the
// top of the ladder.
func NextThreshold(tier string) *Threshold {
	for i, rung := range Ladder {
		if rung.Tier == tier && i+1 < len(Ladder) {
			next := Ladder[i+1]
			return &next
		}
	}
	return nil
}
