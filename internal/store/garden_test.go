package store

import (
	"testing"
	"time"
)

func TestGardenPlotsStartEmpty(t *testing.T) {
	s := openTestStore(t)

	plots, err := s.GardenPlots()
	if err != nil {
		t.Fatalf("GardenPlots: %v", err)
	}
	if len(plots) != GardenPlotCount {
		t.Fatalf("len(plots) = %d, want %d", len(plots), GardenPlotCount)
	}
	for i, p := range plots {
		if p.ID != i+1 {
			t.Errorf("plot %d ID = %d, want %d", i, p.ID, i+1)
		}
		if p.Plant != "" {
			t.Errorf("plot %d starts with plant %q, want empty", p.ID, p.Plant)
		}
	}
}

func TestPlantWaterHarvestRoundTrip(t *testing.T) {
	s := openTestStore(t)
	planted := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	watered := planted.Add(90 * time.Minute)

	if _, err := s.GardenPlots(); err != nil {
		t.Fatalf("GardenPlots: %v", err)
	}
	if err := s.PlantSeed(2, "Berry Bush", planted); err != nil {
		t.Fatalf("PlantSeed: %v", err)
	}
	if err := s.WaterPlot(2, watered); err != nil {
		t.Fatalf("WaterPlot: %v", err)
	}

	plots, err := s.GardenPlots()
	if err != nil {
		t.Fatalf("GardenPlots: %v", err)
	}
	got := plots[1]
	if got.Plant != "Berry Bush" {
		t.Errorf("Plant = %q, want Berry Bush", got.Plant)
	}
	if !got.PlantedAt.Equal(planted) {
		t.Errorf("PlantedAt = %v, want %v", got.PlantedAt, planted)
	}
	if !got.WateredAt.Equal(watered) {
		t.Errorf("WateredAt = %v, want %v", got.WateredAt, watered)
	}

	if err := s.ClearPlot(2); err != nil {
		t.Fatalf("ClearPlot: %v", err)
	}
	plots, err = s.GardenPlots()
	if err != nil {
		t.Fatalf("GardenPlots: %v", err)
	}
	if plots[1].Plant != "" {
		t.Errorf("Plant after clear = %q, want empty", plots[1].Plant)
	}
}

func TestPlantSeedRejectsOccupiedPlot(t *testing.T) {
	s := openTestStore(t)
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	if _, err := s.GardenPlots(); err != nil {
		t.Fatalf("GardenPlots: %v", err)
	}
	if err := s.PlantSeed(1, "Berry Bush", now); err != nil {
		t.Fatalf("PlantSeed: %v", err)
	}
	if err := s.PlantSeed(1, "Berry Bush", now); err == nil {
		t.Error("planting over an occupied plot did not error")
	}
}

func TestSeedItemIsNotConsumable(t *testing.T) {
	if _, _, ok := ItemEffect("seed"); ok {
		t.Error("ItemEffect(seed) reported consumable, want false")
	}
	if _, _, ok := ItemEffect("berry"); !ok {
		t.Error("ItemEffect(berry) reported not consumable, want true")
	}
}
