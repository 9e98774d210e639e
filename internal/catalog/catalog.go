// Package catalog loads the tabulated standards data this engine depends
// on (alloy compositions, pitting temperatures, galvanic series
// potentials, chloride thresholds, response-surface coefficients) into
// typed, immutable in-memory catalogs. Data comes from CSV files under
// the configured data directory, loaded once at startup; there is no
// hard-coded fallback table. A missing or malformed required column fails
// the whole load; a malformed individual row is skipped and logged.
package catalog

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CatalogLoadError is fatal: the process must not start with a partially
// constructed catalog.
type CatalogLoadError struct {
	File   string
	Reason string
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("CatalogLoad: %s: %s", e.File, e.Reason)
}

// Kind identifies this error's kind.
func (e *CatalogLoadError) Kind() string { return "CatalogLoad" }

// MaterialComposition is the one composition record definition,
// referenced everywhere in this module.
type MaterialComposition struct {
	CommonName string
	UNS        string
	CrPct      float64
	NiPct      float64
	MoPct      float64
	NPct       float64
	FeBalance  bool
	DensityKgM3 float64
	GradeType  string
	NElectrons int
	Source     string
}

// CPTRecord is one row of the ASTM G48 critical pitting/crevice
// temperature table.
type CPTRecord struct {
	Material     string
	UNS          string
	CPT_C        float64
	CCT_C        float64
	TestSolution string
	Source       string
	Notes        string
}

// GalvanicSeriesRecord is one row of the ASTM G82 galvanic series table.
type GalvanicSeriesRecord struct {
	Material       string
	E_SCE_V        float64
	E_SHE_V        float64
	ActivityCategory string
	Source         string
	Notes          string
}

// ChlorideThresholdRecord is one row of the ISO 18070 chloride threshold
// table, referenced at 25 C and a reference pH.
type ChlorideThresholdRecord struct {
	Material        string
	UNS             string
	Threshold25CMgL float64
	PH              float64
	TemperatureC    float64
	Source          string
	Notes           string
	ResistanceCategory string
}

// TemperatureCoefficientRecord is one row of the grade-family exponential
// decay constant table used in Cl_thr(T) = Cl_thr(25)*exp(-k*(T-25)).
type TemperatureCoefficientRecord struct {
	GradeType        string
	TempCoefficientPerC float64
	Source           string
	Notes            string
	Formula          string
}

// ORRDiffusionLimitRecord is one (condition, temperature) -> diffusion
// limited current density row.
type ORRDiffusionLimitRecord struct {
	Condition    string
	TemperatureC float64
	Electrolyte  string
	ILimAm2      float64
	ILimMACm2    float64
	Source       string
	Notes        string
}

// ResponseSurfaceCoeffs holds the six fitted polynomial coefficients for
// one (material, reaction) pair, plus the pH range used for interpolation.
type ResponseSurfaceCoeffs struct {
	Material string
	Reaction string
	P00, P10, P01, P20, P11, P02 float64
	PHMin, PHMax float64
}

// Catalog is the immutable, fully loaded set of tabulated data this engine
// needs. Zero value is not valid; use Load.
type Catalog struct {
	Compositions        map[string]MaterialComposition
	CPT                 map[string]CPTRecord
	GalvanicSeries      map[string]GalvanicSeriesRecord
	ChlorideThresholds  map[string]ChlorideThresholdRecord
	TemperatureCoeffs   map[string]TemperatureCoefficientRecord
	ORRDiffusionLimits  []ORRDiffusionLimitRecord
	ResponseSurfaces    map[string]ResponseSurfaceCoeffs // key: normalizeKey(material)+"/"+reaction
}

// normalizeKey makes lookup case- and separator-insensitive
// ("Carbon Steel" == "carbon_steel").
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// Load builds a Catalog from the CSV files in dir. Loading twice produces
// the same catalog bytewise (the files are read-only and deterministically
// parsed).
func Load(dir string) (*Catalog, error) {
	c := &Catalog{
		Compositions:       map[string]MaterialComposition{},
		CPT:                map[string]CPTRecord{},
		GalvanicSeries:     map[string]GalvanicSeriesRecord{},
		ChlorideThresholds: map[string]ChlorideThresholdRecord{},
		TemperatureCoeffs:  map[string]TemperatureCoefficientRecord{},
		ResponseSurfaces:   map[string]ResponseSurfaceCoeffs{},
	}

	if err := loadCompositions(filepath.Join(dir, "materials_compositions.csv"), c); err != nil {
		return nil, err
	}
	if err := loadCPT(filepath.Join(dir, "astm_g48_cpt_data.csv"), c); err != nil {
		return nil, err
	}
	if err := loadGalvanicSeries(filepath.Join(dir, "astm_g82_galvanic_series.csv"), c); err != nil {
		return nil, err
	}
	if err := loadChlorideThresholds(filepath.Join(dir, "iso18070_chloride_thresholds.csv"), c); err != nil {
		return nil, err
	}
	if err := loadTemperatureCoefficients(filepath.Join(dir, "iso18070_temperature_coefficients.csv"), c); err != nil {
		return nil, err
	}
	if err := loadORRDiffusionLimits(filepath.Join(dir, "orr_diffusion_limits.csv"), c); err != nil {
		return nil, err
	}
	if err := loadResponseSurfaceCoeffs(dir, c); err != nil {
		return nil, err
	}
	return c, nil
}

func openCSV(path string) (*csv.Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &CatalogLoadError{File: path, Reason: err.Error()}
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r, f, nil
}

func requireHeader(path string, header, want []string) error {
	if len(header) < len(want) {
		return &CatalogLoadError{File: path, Reason: fmt.Sprintf("expected columns %v, got %v", want, header)}
	}
	for i, w := range want {
		if !strings.EqualFold(strings.TrimSpace(header[i]), w) {
			return &CatalogLoadError{File: path, Reason: fmt.Sprintf("column %d: expected %q, got %q", i, w, header[i])}
		}
	}
	return nil
}

func parseFloat(path string, rowNum int, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("%s row %d: bad float %q: %w", path, rowNum, field, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s row %d: non-finite value %q", path, rowNum, field)
	}
	return v, nil
}

func parseInt(path string, rowNum int, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%s row %d: bad int %q: %w", path, rowNum, field, err)
	}
	return v, nil
}

func parseBool(field string) bool {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}

func loadCompositions(path string, c *Catalog) error {
	r, f, err := openCSV(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header, err := r.Read()
	if err != nil {
		return &CatalogLoadError{File: path, Reason: err.Error()}
	}
	want := []string{"common_name", "UNS", "Cr", "Ni", "Mo", "N", "Fe_bal", "density_kg_m3", "grade_type", "n_electrons", "source"}
	if err := requireHeader(path, header, want); err != nil {
		return err
	}

	rowNum := 1
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		rowNum++
		if len(row) < len(want) {
			log.Printf("catalog: %s row %d: skipping, too few columns", path, rowNum)
			continue
		}
		cr, err1 := parseFloat(path, rowNum, row[2])
		ni, err2 := parseFloat(path, rowNum, row[3])
		mo, err3 := parseFloat(path, rowNum, row[4])
		n, err4 := parseFloat(path, rowNum, row[5])
		density, err5 := parseFloat(path, rowNum, row[7])
		nElec, err6 := parseInt(path, rowNum, row[9])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil || err6 != nil {
			log.Printf("catalog: %s row %d: skipping malformed row", path, rowNum)
			continue
		}
		rec := MaterialComposition{
			CommonName:  row[0],
			UNS:         row[1],
			CrPct:       cr,
			NiPct:       ni,
			MoPct:       mo,
			NPct:        n,
			FeBalance:   parseBool(row[6]),
			DensityKgM3: density,
			GradeType:   row[8],
			NElectrons:  nElec,
			Source:      row[10],
		}
		if strings.TrimSpace(rec.Source) == "" {
			log.Printf("catalog: %s row %d: skipping, empty source citation", path, rowNum)
			continue
		}
		c.Compositions[normalizeKey(rec.CommonName)] = rec
		if rec.UNS != "" {
			c.Compositions[normalizeKey(rec.UNS)] = rec
		}
	}
	return nil
}

func loadCPT(path string, c *Catalog) error {
	r, f, err := openCSV(path)
	if err != nil {
		return err
	}
	defer f.Close()
	header, err := r.Read()
	if err != nil {
		return &CatalogLoadError{File: path, Reason: err.Error()}
	}
	want := []string{"material", "UNS", "CPT_C", "CCT_C", "test_solution", "source", "notes"}
	if err := requireHeader(path, header, want); err != nil {
		return err
	}
	rowNum := 1
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		rowNum++
		if len(row) < len(want) {
			log.Printf("catalog: %s row %d: skipping, too few columns", path, rowNum)
			continue
		}
		cpt, err1 := parseFloat(path, rowNum, row[2])
		cct, err2 := parseFloat(path, rowNum, row[3])
		if err1 != nil || err2 != nil {
			log.Printf("catalog: %s row %d: skipping malformed row", path, rowNum)
			continue
		}
		rec := CPTRecord{Material: row[0], UNS: row[1], CPT_C: cpt, CCT_C: cct, TestSolution: row[4], Source: row[5], Notes: row[6]}
		c.CPT[normalizeKey(rec.Material)] = rec
	}
	return nil
}

func loadGalvanicSeries(path string, c *Catalog) error {
	r, f, err := openCSV(path)
	if err != nil {
		return err
	}
	defer f.Close()
	header, err := r.Read()
	if err != nil {
		return &CatalogLoadError{File: path, Reason: err.Error()}
	}
	want := []string{"material", "E_SCE_V", "E_SHE_V", "activity_category", "source", "notes"}
	if err := requireHeader(path, header, want); err != nil {
		return err
	}
	rowNum := 1
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		rowNum++
		if len(row) < len(want) {
			log.Printf("catalog: %s row %d: skipping, too few columns", path, rowNum)
			continue
		}
		esce, err1 := parseFloat(path, rowNum, row[1])
		eshe, err2 := parseFloat(path, rowNum, row[2])
		if err1 != nil || err2 != nil {
			log.Printf("catalog: %s row %d: skipping malformed row", path, rowNum)
			continue
		}
		rec := GalvanicSeriesRecord{Material: row[0], E_SCE_V: esce, E_SHE_V: eshe, ActivityCategory: row[3], Source: row[4], Notes: row[5]}
		c.GalvanicSeries[normalizeKey(rec.Material)] = rec
	}
	return nil
}

func loadChlorideThresholds(path string, c *Catalog) error {
	r, f, err := openCSV(path)
	if err != nil {
		return err
	}
	defer f.Close()
	header, err := r.Read()
	if err != nil {
		return &CatalogLoadError{File: path, Reason: err.Error()}
	}
	want := []string{"material", "UNS", "threshold_25C_mg_L", "pH", "temperature_C", "source", "notes", "resistance_category"}
	if err := requireHeader(path, header, want); err != nil {
		return err
	}
	rowNum := 1
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		rowNum++
		if len(row) < len(want) {
			log.Printf("catalog: %s row %d: skipping, too few columns", path, rowNum)
			continue
		}
		thr, err1 := parseFloat(path, rowNum, row[2])
		ph, err2 := parseFloat(path, rowNum, row[3])
		t, err3 := parseFloat(path, rowNum, row[4])
		if err1 != nil || err2 != nil || err3 != nil {
			log.Printf("catalog: %s row %d: skipping malformed row", path, rowNum)
			continue
		}
		rec := ChlorideThresholdRecord{
			Material: row[0], UNS: row[1], Threshold25CMgL: thr, PH: ph, TemperatureC: t,
			Source: row[5], Notes: row[6], ResistanceCategory: row[7],
		}
		c.ChlorideThresholds[normalizeKey(rec.Material)] = rec
	}
	return nil
}

func loadTemperatureCoefficients(path string, c *Catalog) error {
	r, f, err := openCSV(path)
	if err != nil {
		return err
	}
	defer f.Close()
	header, err := r.Read()
	if err != nil {
		return &CatalogLoadError{File: path, Reason: err.Error()}
	}
	want := []string{"grade_type", "temp_coefficient_per_C", "source", "notes", "formula"}
	if err := requireHeader(path, header, want); err != nil {
		return err
	}
	rowNum := 1
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		rowNum++
		if len(row) < len(want) {
			log.Printf("catalog: %s row %d: skipping, too few columns", path, rowNum)
			continue
		}
		k, err1 := parseFloat(path, rowNum, row[1])
		if err1 != nil {
			log.Printf("catalog: %s row %d: skipping malformed row", path, rowNum)
			continue
		}
		rec := TemperatureCoefficientRecord{GradeType: row[0], TempCoefficientPerC: k, Source: row[2], Notes: row[3], Formula: row[4]}
		c.TemperatureCoeffs[normalizeKey(rec.GradeType)] = rec
	}
	return nil
}

func loadORRDiffusionLimits(path string, c *Catalog) error {
	r, f, err := openCSV(path)
	if err != nil {
		return err
	}
	defer f.Close()
	header, err := r.Read()
	if err != nil {
		return &CatalogLoadError{File: path, Reason: err.Error()}
	}
	want := []string{"condition", "temperature_C", "electrolyte", "i_lim_A_m2", "i_lim_mA_cm2", "source", "notes"}
	if err := requireHeader(path, header, want); err != nil {
		return err
	}
	rowNum := 1
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		rowNum++
		if len(row) < len(want) {
			log.Printf("catalog: %s row %d: skipping, too few columns", path, rowNum)
			continue
		}
		t, err1 := parseFloat(path, rowNum, row[1])
		ilimAm2, err2 := parseFloat(path, rowNum, row[3])
		ilimMACm2, err3 := parseFloat(path, rowNum, row[4])
		if err1 != nil || err2 != nil || err3 != nil {
			log.Printf("catalog: %s row %d: skipping malformed row", path, rowNum)
			continue
		}
		c.ORRDiffusionLimits = append(c.ORRDiffusionLimits, ORRDiffusionLimitRecord{
			Condition: row[0], TemperatureC: t, Electrolyte: row[2],
			ILimAm2: ilimAm2, ILimMACm2: ilimMACm2, Source: row[5], Notes: row[6],
		})
	}
	return nil
}

// loadResponseSurfaceCoeffs loads every {material}{reaction}Coeffs.csv file
// in dir. Unlike the other loaders, the set of filenames is not fixed
// up-front; this walks the directory for files matching the pattern.
func loadResponseSurfaceCoeffs(dir string, c *Catalog) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &CatalogLoadError{File: dir, Reason: err.Error()}
	}
	found := 0
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, "Coeffs.csv") {
			continue
		}
		found++
		path := filepath.Join(dir, name)
		material, reaction, ok := splitCoeffsFilename(name)
		if !ok {
			log.Printf("catalog: %s: could not parse material/reaction from filename, skipping", path)
			continue
		}
		rec, err := loadOneCoeffsFile(path, material, reaction)
		if err != nil {
			return err
		}
		c.ResponseSurfaces[normalizeKey(material)+"/"+reaction] = rec
	}
	if found == 0 {
		return &CatalogLoadError{File: dir, Reason: "no *Coeffs.csv response-surface files found"}
	}
	return nil
}

// splitCoeffsFilename parses "SS316ORRCoeffs.csv" into ("SS316", "ORR").
// The known reaction suffixes are fixed; material is whatever precedes
// the first matching suffix.
func splitCoeffsFilename(name string) (material, reaction string, ok bool) {
	base := strings.TrimSuffix(name, "Coeffs.csv")
	suffixes := []string{"ORR", "HER", "Oxidation", "Passivation", "Pitting"}
	for _, suf := range suffixes {
		if strings.HasSuffix(base, suf) {
			return strings.TrimSuffix(base, suf), suf, true
		}
	}
	return "", "", false
}

func loadOneCoeffsFile(path, material, reaction string) (ResponseSurfaceCoeffs, error) {
	r, f, err := openCSV(path)
	if err != nil {
		return ResponseSurfaceCoeffs{}, err
	}
	defer f.Close()

	if _, err := r.Read(); err != nil {
		return ResponseSurfaceCoeffs{}, &CatalogLoadError{File: path, Reason: err.Error()}
	}
	row, err := r.Read()
	if err != nil {
		return ResponseSurfaceCoeffs{}, &CatalogLoadError{File: path, Reason: err.Error()}
	}
	// single data row, six floats: p00,p10,p01,p20,p11,p02[,pH_min,pH_max]
	if len(row) < 6 {
		return ResponseSurfaceCoeffs{}, &CatalogLoadError{File: path, Reason: fmt.Sprintf("expected at least 6 coefficient columns, got %d", len(row))}
	}
	vals := make([]float64, 0, 8)
	for i, field := range row {
		v, err := parseFloat(path, 2, field)
		if err != nil {
			return ResponseSurfaceCoeffs{}, &CatalogLoadError{File: path, Reason: fmt.Sprintf("column %d: %v", i, err)}
		}
		vals = append(vals, v)
	}
	rec := ResponseSurfaceCoeffs{
		Material: material, Reaction: reaction,
		P00: vals[0], P10: vals[1], P01: vals[2], P20: vals[3], P11: vals[4], P02: vals[5],
		PHMin: 0, PHMax: 14,
	}
	if len(vals) >= 8 {
		rec.PHMin, rec.PHMax = vals[6], vals[7]
	}
	return rec, nil
}

// LookupComposition resolves a material name (after alias resolution by
// the caller) to its composition record.
func (c *Catalog) LookupComposition(key string) (MaterialComposition, bool) {
	rec, ok := c.Compositions[normalizeKey(key)]
	return rec, ok
}

// LookupCPT resolves a material to its CPT/CCT record.
func (c *Catalog) LookupCPT(key string) (CPTRecord, bool) {
	rec, ok := c.CPT[normalizeKey(key)]
	return rec, ok
}

// LookupGalvanicSeries resolves a material to its galvanic series record.
func (c *Catalog) LookupGalvanicSeries(key string) (GalvanicSeriesRecord, bool) {
	rec, ok := c.GalvanicSeries[normalizeKey(key)]
	return rec, ok
}

// LookupChlorideThreshold resolves a material to its chloride threshold
// record.
func (c *Catalog) LookupChlorideThreshold(key string) (ChlorideThresholdRecord, bool) {
	rec, ok := c.ChlorideThresholds[normalizeKey(key)]
	return rec, ok
}

// LookupTemperatureCoefficient resolves a grade family to its exponential
// decay constant.
func (c *Catalog) LookupTemperatureCoefficient(gradeType string) (TemperatureCoefficientRecord, bool) {
	rec, ok := c.TemperatureCoeffs[normalizeKey(gradeType)]
	return rec, ok
}

// LookupResponseSurface resolves a (material, reaction) pair to its
// fitted polynomial coefficients.
func (c *Catalog) LookupResponseSurface(material, reaction string) (ResponseSurfaceCoeffs, bool) {
	rec, ok := c.ResponseSurfaces[normalizeKey(material)+"/"+reaction]
	return rec, ok
}

// NearestORRDiffusionLimit returns the catalog row whose temperature is
// closest to tC, for extrapolation outside exact tabulated points.
func (c *Catalog) NearestORRDiffusionLimit(electrolyte string, tC float64) (ORRDiffusionLimitRecord, bool) {
	var best ORRDiffusionLimitRecord
	bestDelta := math.Inf(1)
	found := false
	for _, rec := range c.ORRDiffusionLimits {
		if !strings.EqualFold(rec.Electrolyte, electrolyte) {
			continue
		}
		delta := math.Abs(rec.TemperatureC - tC)
		if delta < bestDelta {
			bestDelta = delta
			best = rec
			found = true
		}
	}
	return best, found
}

// NormalizeKey exposes the catalog's key-normalization rule to other
// packages that need to compare material identifiers the same way.
func NormalizeKey(s string) string {
	return normalizeKey(s)
}
