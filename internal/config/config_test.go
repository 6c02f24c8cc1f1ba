package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Workers != 1 {
		t.Fatalf("got Workers=%d, want 1", cfg.Workers)
	}
	if cfg.EpsPlane != 1e-5 {
		t.Fatalf("got EpsPlane=%v, want 1e-5", cfg.EpsPlane)
	}
	if cfg.EpsInside != 1e-4 {
		t.Fatalf("got EpsInside=%v, want 1e-4", cfg.EpsInside)
	}
	if cfg.EpsArea != 1e-6 {
		t.Fatalf("got EpsArea=%v, want 1e-6", cfg.EpsArea)
	}
	if cfg.EpsDeterminant != 1e-10 {
		t.Fatalf("got EpsDeterminant=%v, want 1e-10", cfg.EpsDeterminant)
	}
}
