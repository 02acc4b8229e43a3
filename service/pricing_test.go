package service

import (
	"testing"

	"foodexpress/pkg/models"
)

func TestCalculateTotals(t *testing.T) {
	catalog := []models.Item{
		{ID: 1, Price: 10.0, PreparationTime: 5},
		{ID: 2, Price: 3.5, PreparationTime: 12},
	}
	lines := []models.OrderLine{
		{ItemID: 1, Quantity: 2},
		{ItemID: 2, Quantity: 4},
	}

	totals := calculateTotals(lines, catalog)

	if totals.ItemsSubtotal != 34.0 {
		t.Errorf("ItemsSubtotal = %v, want 34.0", totals.ItemsSubtotal)
	}
	if totals.TotalPreparationTime != 17 {
		t.Errorf("TotalPreparationTime = %d, want 17", totals.TotalPreparationTime)
	}
}

func TestCalculateTotals_UnknownItemContributesNothing(t *testing.T) {
	catalog := []models.Item{{ID: 1, Price: 10.0, PreparationTime: 5}}
	lines := []models.OrderLine{
		{ItemID: 1, Quantity: 2},
		{ItemID: 99, Quantity: 3},
	}

	totals := calculateTotals(lines, catalog)

	if totals.ItemsSubtotal != 20.0 {
		t.Errorf("ItemsSubtotal = %v, want 20.0", totals.ItemsSubtotal)
	}
	if totals.TotalPreparationTime != 5 {
		t.Errorf("TotalPreparationTime = %d, want 5", totals.TotalPreparationTime)
	}
}

func TestCalculateTotals_PreparationTimeNotScaledByQuantity(t *testing.T) {
	catalog := []models.Item{{ID: 1, Price: 1.0, PreparationTime: 7}}
	lines := []models.OrderLine{{ItemID: 1, Quantity: 10}}

	totals := calculateTotals(lines, catalog)

	// The kitchen preps lines in parallel batches, so one line counts once.
	if totals.TotalPreparationTime != 7 {
		t.Errorf("TotalPreparationTime = %d, want 7", totals.TotalPreparationTime)
	}
}

func TestCalculateTotals_EmptyOrder(t *testing.T) {
	totals := calculateTotals(nil, nil)
	if totals.ItemsSubtotal != 0 || totals.TotalPreparationTime != 0 {
		t.Errorf("expected zero totals, got %+v", totals)
	}
}
