package trip

import (
	"math"

	"github.com/julianstephens/smartpack/internal/models"
)

// CalculateProgress counts items across the selected modules only; data kept
// for deselected modules is ignored.
func CalculateProgress(s models.TripState) models.Progress {
	var p models.Progress
	for _, key := range s.SelectedModules {
		total, checked := count(s.PackingData[key])
		p.TotalItems += total
		p.CheckedItems += checked
	}
	p.Percentage = percent(p.CheckedItems, p.TotalItems)
	return p
}

// ModuleProgress is CalculateProgress for a single module's checklist.
func ModuleProgress(s models.TripState, key string) models.Progress {
	total, checked := count(s.PackingData[key])
	return models.Progress{
		TotalItems:   total,
		CheckedItems: checked,
		Percentage:   percent(checked, total),
	}
}

// IsComplete reports whether at least one item is selected and all are checked.
func IsComplete(p models.Progress) bool {
	return p.TotalItems > 0 && p.CheckedItems == p.TotalItems
}

func count(items []models.PackingItem) (total, checked int) {
	for _, item := range items {
		total++
		if item.Checked {
			checked++
		}
	}
	return total, checked
}

func percent(checked, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(checked) / float64(total) * 100))
}
