package service

import "foodexpress/pkg/models"

type orderTotals struct {
	ItemsSubtotal        float64
	TotalPreparationTime int
}

// calculateTotals sums price*quantity and preparation time over the ordered
// lines. A line whose item id is missing from the catalog result contributes
// nothing; unknown ids are skipped rather than rejected.
func calculateTotals(lines []models.OrderLine, catalog []models.Item) orderTotals {
	byID := make(map[int64]models.Item, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}

	var totals orderTotals
	for _, line := range lines {
		item, ok := byID[line.ItemID]
		if !ok {
			continue
		}
		totals.ItemsSubtotal += item.Price * float64(line.Quantity)
		totals.TotalPreparationTime += item.PreparationTime
	}
	return totals
}
