// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package exfor

import "encoding/json"

// The archive has shipped the same logical field under different key
// spellings across web-service versions. Each alias table below maps a
// canonical JSON key (the struct tag) to the alternate spellings that must
// decode into the same attribute. canonicalize rewrites a raw object so the
// plain decoder only ever sees canonical keys.

var sectionAliases = map[string][]string{
	"Targ":      {"target"},
	"ZT":        {"z"},
	"AT":        {"a"},
	"NSUB":      {"nsub"},
	"MT":        {"mt"},
	"MF":        {"mf"},
	"R":         {"r"},
	"RC":        {"rc"},
	"EvalID":    {"eval_id"},
	"SectID":    {"sect_id"},
	"PenSectID": {"pen_sect_id"},
	"LibID":     {"lib_id"},
	"LibName":   {"lib_name"},
	"DATE":      {"date"},
	"AUTH":      {"auth"},
}

var pointAliases = map[string][]string{
	"E":    {"energy"},
	"Sig":  {"cross_section", "sig"},
	"dSig": {"uncertainty", "dsig"},
}

var datasetAliases = map[string][]string{
	"FILE":                 {"file"},
	"dataType":             {"data_type"},
	"LIBRARY":              {"library"},
	"TARGET":               {"target"},
	"TEMP":                 {"temp"},
	"NSUB":                 {"nsub"},
	"MAT":                  {"mat"},
	"MF":                   {"mf"},
	"MT":                   {"mt"},
	"REACTION":             {"reaction"},
	"COLUMNS":              {"columns"},
	"defaultInterpolation": {"default_interpolation"},
	"nPts":                 {"n_pts"},
	"pts":                  {"points"},
}

// canonicalize rewrites alias keys in a raw JSON object to their canonical
// spelling. A canonical key already present wins over any alias.
func canonicalize(data []byte, aliases map[string][]string) ([]byte, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for canonical, alts := range aliases {
		if _, ok := raw[canonical]; ok {
			continue
		}
		for _, alt := range alts {
			if v, ok := raw[alt]; ok {
				raw[canonical] = v
				delete(raw, alt)
				break
			}
		}
	}
	return json.Marshal(raw)
}

// Section is a candidate measurement record returned by the listing
// endpoint. Sections are read-only; they exist only while a lookup selects
// one of them.
type Section struct {
	Target    string `json:"Targ"`
	Z         int    `json:"ZT"`
	A         int    `json:"AT"`
	NSub      int    `json:"NSUB"`
	MT        int    `json:"MT"`
	MF        int    `json:"MF"`
	R         string `json:"R"`
	RC        string `json:"RC"`
	EvalID    int    `json:"EvalID"`
	SectID    int    `json:"SectID"`
	PenSectID int    `json:"PenSectID"`
	LibID     int    `json:"LibID"`
	LibName   string `json:"LibName"`
	Date      string `json:"DATE"`
	Author    string `json:"AUTH"`
}

func (s *Section) UnmarshalJSON(data []byte) error {
	canon, err := canonicalize(data, sectionAliases)
	if err != nil {
		return err
	}
	type plain Section
	var p plain
	if err := json.Unmarshal(canon, &p); err != nil {
		return err
	}
	*s = Section(p)
	return nil
}

// CrossSectionPoint is one sample: energy in eV as delivered by the archive
// and cross section in barns. Uncertainty is zero when the archive omits it.
type CrossSectionPoint struct {
	Energy       float64 `json:"E"`
	CrossSection float64 `json:"Sig"`
	Uncertainty  float64 `json:"dSig,omitempty"`
}

func (p *CrossSectionPoint) UnmarshalJSON(data []byte) error {
	canon, err := canonicalize(data, pointAliases)
	if err != nil {
		return err
	}
	type plain CrossSectionPoint
	var pp plain
	if err := json.Unmarshal(canon, &pp); err != nil {
		return err
	}
	*p = CrossSectionPoint(pp)
	return nil
}

// CrossSectionDataset is the resolved point series for one section. Points
// arrive energy-ascending and are never re-sorted. DefaultInterpolation is
// informational only; integration downstream is always trapezoidal.
type CrossSectionDataset struct {
	ID                   string              `json:"id"`
	File                 string              `json:"FILE"`
	DataType             string              `json:"dataType"`
	Library              string              `json:"LIBRARY"`
	Target               string              `json:"TARGET"`
	Temp                 float64             `json:"TEMP"`
	NSub                 int                 `json:"NSUB"`
	MAT                  int                 `json:"MAT"`
	MF                   int                 `json:"MF"`
	MT                   int                 `json:"MT"`
	Reaction             string              `json:"REACTION"`
	Columns              []string            `json:"COLUMNS"`
	DefaultInterpolation string              `json:"defaultInterpolation"`
	NPts                 int                 `json:"nPts"`
	Points               []CrossSectionPoint `json:"pts"`
}

func (d *CrossSectionDataset) UnmarshalJSON(data []byte) error {
	canon, err := canonicalize(data, datasetAliases)
	if err != nil {
		return err
	}
	type plain CrossSectionDataset
	var p plain
	if err := json.Unmarshal(canon, &p); err != nil {
		return err
	}
	*d = CrossSectionDataset(p)
	return nil
}

// eVToMeV scales archive energies (eV) to the MeV the integrator expects.
const eVToMeV = 1e-6

// EnergiesMeV returns the energy grid converted from eV to MeV.
func (d *CrossSectionDataset) EnergiesMeV() []float64 {
	energies := make([]float64, len(d.Points))
	for i, p := range d.Points {
		energies[i] = p.Energy * eVToMeV
	}
	return energies
}

// CrossSections returns the cross-section values in barns, in point order.
func (d *CrossSectionDataset) CrossSections() []float64 {
	sigmas := make([]float64, len(d.Points))
	for i, p := range d.Points {
		sigmas[i] = p.CrossSection
	}
	return sigmas
}

// listResponse is the e4list envelope.
type listResponse struct {
	Format   string    `json:"format"`
	Now      string    `json:"now"`
	Program  string    `json:"program"`
	Req      int       `json:"req"`
	Sections []Section `json:"sections"`
}

// CrossSectionResponse is the e4sig envelope.
type CrossSectionResponse struct {
	Format   string                `json:"format"`
	Now      string                `json:"now"`
	Program  string                `json:"program"`
	Datasets []CrossSectionDataset `json:"datasets"`
}
