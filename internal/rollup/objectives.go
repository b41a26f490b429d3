package rollup

import "lifedash/internal/domain"

// KeyResultProgress derives a key result's progress percentage from its
// baseline, target and current value, clamped to [0,100]. A target equal to
// the baseline would divide by zero and is defined as 0.
func KeyResultProgress(baseline, target, current float64) int {
	if target == baseline {
		return 0
	}
	pct := (current - baseline) / (target - baseline) * 100
	return RoundPercent(Clamp(pct, 0, 100))
}

// ObjectiveProgress is the rounded mean progress over an objective's key
// results, 0 when it has none. Status is user-set and never derived from it.
func ObjectiveProgress(keyResults []domain.KeyResult) int {
	if len(keyResults) == 0 {
		return 0
	}
	sum := 0
	for _, kr := range keyResults {
		sum += kr.ProgressPercentage
	}
	return RoundPercent(float64(sum) / float64(len(keyResults)))
}

// GroupKeyResults joins key results to their objectives by membership of the
// loaded objective id set, mirroring the client-side join of the views
func GroupKeyResults(objectives []domain.Objective, keyResults []domain.KeyResult) map[uint][]domain.KeyResult {
	ids := make(map[uint]bool, len(objectives))
	for _, o := range objectives {
		ids[o.ID] = true
	}
	grouped := make(map[uint][]domain.KeyResult)
	for _, kr := range keyResults {
		if ids[kr.ObjectiveID] {
			grouped[kr.ObjectiveID] = append(grouped[kr.ObjectiveID], kr)
		}
	}
	return grouped
}

// AtRisk returns the objectives flagged at_risk. The flag is a user decision;
// no automatic status transition happens here.
func AtRisk(objectives []domain.Objective) []domain.Objective {
	out := []domain.Objective{}
	for _, o := range objectives {
		if o.Status == domain.ObjectiveAtRisk {
			out = append(out, o)
		}
	}
	return out
}
