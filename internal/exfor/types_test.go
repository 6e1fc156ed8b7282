// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package exfor

import (
	"encoding/json"
	"testing"
)

// --- field-name aliasing ---

func TestSectionUnmarshalAliases(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			"archive keys",
			`{"Targ": "Mo-94", "ZT": 42, "AT": 94, "MT": 102, "MF": 3,
			  "SectID": 5001, "PenSectID": 4001, "LibName": "JEFF-3.1",
			  "EvalID": 101, "DATE": "2005-05-01", "AUTH": "JEFF team"}`,
		},
		{
			"snake_case variant",
			`{"target": "Mo-94", "z": 42, "a": 94, "mt": 102, "mf": 3,
			  "sect_id": 5001, "pen_sect_id": 4001, "lib_name": "JEFF-3.1",
			  "eval_id": 101, "date": "2005-05-01", "auth": "JEFF team"}`,
		},
		{
			"mixed spellings",
			`{"Targ": "Mo-94", "z": 42, "AT": 94, "mt": 102, "MF": 3,
			  "sect_id": 5001, "PenSectID": 4001, "lib_name": "JEFF-3.1",
			  "EvalID": 101, "date": "2005-05-01", "AUTH": "JEFF team"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Section
			if err := json.Unmarshal([]byte(tt.body), &s); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if s.Target != "Mo-94" || s.Z != 42 || s.A != 94 {
				t.Errorf("nuclide = %s Z=%d A=%d", s.Target, s.Z, s.A)
			}
			if s.MT != 102 || s.MF != 3 {
				t.Errorf("MT/MF = %d/%d", s.MT, s.MF)
			}
			if s.SectID != 5001 || s.PenSectID != 4001 {
				t.Errorf("SectID/PenSectID = %d/%d", s.SectID, s.PenSectID)
			}
			if s.LibName != "JEFF-3.1" || s.EvalID != 101 {
				t.Errorf("LibName = %q, EvalID = %d", s.LibName, s.EvalID)
			}
			if s.Date != "2005-05-01" || s.Author != "JEFF team" {
				t.Errorf("Date = %q, Author = %q", s.Date, s.Author)
			}
		})
	}
}

func TestSectionCanonicalKeyWinsOverAlias(t *testing.T) {
	body := `{"Targ": "Mo-94", "target": "Zr-92"}`
	var s Section
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s.Target != "Mo-94" {
		t.Errorf("Target = %q, want canonical key to win", s.Target)
	}
}

func TestPointUnmarshalAliases(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		wantE, wantSig  float64
		wantUncertainty float64
	}{
		{"archive keys", `{"E": 1000.0, "Sig": 10.0}`, 1000.0, 10.0, 0},
		{"with uncertainty", `{"E": 1000.0, "Sig": 10.0, "dSig": 0.5}`, 1000.0, 10.0, 0.5},
		{"long-form keys", `{"energy": 2000.0, "cross_section": 8.0, "uncertainty": 0.25}`, 2000.0, 8.0, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p CrossSectionPoint
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if p.Energy != tt.wantE || p.CrossSection != tt.wantSig {
				t.Errorf("point = (%g, %g), want (%g, %g)", p.Energy, p.CrossSection, tt.wantE, tt.wantSig)
			}
			if p.Uncertainty != tt.wantUncertainty {
				t.Errorf("Uncertainty = %g, want %g", p.Uncertainty, tt.wantUncertainty)
			}
		})
	}
}

func TestDatasetUnmarshalAliases(t *testing.T) {
	body := `{"id": "ds-1", "file": "jeff31.e4", "data_type": "evaluated",
	  "library": "JEFF-3.1", "target": "Mo-94", "mat": 4225, "mf": 3, "mt": 102,
	  "reaction": "n,g", "default_interpolation": "lin-lin", "n_pts": 2,
	  "points": [{"E": 1000.0, "Sig": 10.0}, {"E": 2000.0, "Sig": 8.0}]}`

	var d CrossSectionDataset
	if err := json.Unmarshal([]byte(body), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if d.Library != "JEFF-3.1" || d.Target != "Mo-94" || d.Reaction != "n,g" {
		t.Errorf("dataset = %s %s %s", d.Library, d.Target, d.Reaction)
	}
	if d.MAT != 4225 || d.MF != 3 || d.MT != 102 {
		t.Errorf("MAT/MF/MT = %d/%d/%d", d.MAT, d.MF, d.MT)
	}
	if d.DefaultInterpolation != "lin-lin" || d.NPts != 2 {
		t.Errorf("interpolation = %q, nPts = %d", d.DefaultInterpolation, d.NPts)
	}
	if len(d.Points) != 2 || d.Points[1].Energy != 2000.0 {
		t.Errorf("points = %+v", d.Points)
	}
}

// --- unit conversion at the acquisition boundary ---

func TestEnergiesMeV(t *testing.T) {
	d := CrossSectionDataset{Points: []CrossSectionPoint{
		{Energy: 1000.0, CrossSection: 10.0},
		{Energy: 2000.0, CrossSection: 8.0},
		{Energy: 2.5e7, CrossSection: 0.1},
	}}

	energies := d.EnergiesMeV()
	want := []float64{0.001, 0.002, 25.0}
	for i, w := range want {
		if energies[i] != w {
			t.Errorf("energies[%d] = %g MeV, want %g", i, energies[i], w)
		}
	}

	sigmas := d.CrossSections()
	if sigmas[0] != 10.0 || sigmas[1] != 8.0 || sigmas[2] != 0.1 {
		t.Errorf("cross sections = %v", sigmas)
	}
}

func TestEnergiesMeVEmpty(t *testing.T) {
	var d CrossSectionDataset
	if got := d.EnergiesMeV(); len(got) != 0 {
		t.Errorf("EnergiesMeV() on empty dataset = %v", got)
	}
}
