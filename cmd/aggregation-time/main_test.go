package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewScheme(t *testing.T) {
	tests := []struct {
		name                   string
		curve, variant, hasher string
		wantErr                bool
	}{
		{"Default", "bls12-381", "min-pk", "blake2b", false},
		{"377MinSig", "bls12-377", "min-sig", "sha256", false},
		{"Shake", "bls12-381", "min-sig", "shake256", false},
		{"UnknownCurve", "bn254", "min-pk", "blake2b", true},
		{"UnknownVariant", "bls12-381", "tiny", "blake2b", true},
		{"UnknownHasher", "bls12-381", "min-pk", "md5", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newScheme(tt.curve, tt.variant, tt.hasher)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScenarios(t *testing.T) {
	s, err := newScheme("bls12-381", "min-pk", "blake2b")
	if err != nil {
		t.Fatal(err)
	}

	different, err := runDifferentMessages(context.Background(), s, 4, 12)
	if err != nil {
		t.Fatalf("different messages: %v", err)
	}
	if len(different.Phases) != 8 {
		t.Errorf("different messages recorded %d phases, want 8", len(different.Phases))
	}

	same, err := runSameMessage(s, 4, 12)
	if err != nil {
		t.Fatalf("same message: %v", err)
	}
	if len(same.Phases) != 7 {
		t.Errorf("same message recorded %d phases, want 7", len(same.Phases))
	}

	r := &Report{Curve: "bls12-381", Variant: "min-pk", Messages: 4, Scenarios: []Scenario{*different, *same}}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"name":"verification messages"`) {
		t.Errorf("report is missing a phase: %s", data)
	}

	path := filepath.Join(t.TempDir(), "chart.html")
	if err := writeChart(path, r); err != nil {
		t.Fatal(err)
	}
	html, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "same message") {
		t.Error("chart does not mention the same-message scenario")
	}
}
