package transport

import (
	"encoding/json"
	"net/http"

	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/tools"
)

// Env carries the server's one-shot-loaded catalog to every tool
// handler.
type Env struct {
	Catalog *catalog.Catalog
}

type toolEntry struct {
	schema map[string]string
	handle func(env *Env, w http.ResponseWriter, r *http.Request)
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}

func simpleHandler[In any, Out any](call func(*Env, In) (Out, error)) func(*Env, http.ResponseWriter, *http.Request) {
	return func(env *Env, w http.ResponseWriter, r *http.Request) {
		in, err := decode[In](r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorEnvelope{Kind: "InputValidation", Message: "invalid JSON body: " + err.Error()})
			return
		}
		out, err := call(env, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

var registry = map[string]toolEntry{
	"assess_galvanic": {
		schema: map[string]string{
			"anode_id": "string", "cathode_id": "string", "temperature_c": "number",
			"ph": "number", "chloride_mg_l": "number", "area_ratio_cathode_over_anode": "number",
			"dissolved_oxygen_mg_l": "number|null", "velocity_m_s": "number|null",
			"pipe_diameter_m": "number|null", "pipe_length_m": "number|null",
		},
		handle: simpleHandler(func(env *Env, in tools.AssessGalvanicInput) (tools.AssessGalvanicOutput, error) {
			return tools.AssessGalvanic(env.Catalog, in)
		}),
	},
	"assess_localized": {
		schema: map[string]string{
			"material_id": "string", "temperature_c": "number", "chloride_mg_l": "number",
			"ph": "number", "dissolved_oxygen_mg_l": "number|null",
		},
		handle: simpleHandler(func(env *Env, in tools.AssessLocalizedInput) (tools.AssessLocalizedOutput, error) {
			return tools.AssessLocalized(env.Catalog, in)
		}),
	},
	"calculate_pren": {
		schema: map[string]string{
			"material_id": "string (optional, overrides composition fields below)",
			"cr_pct": "number", "mo_pct": "number", "n_pct": "number", "grade_type": "string",
		},
		handle: simpleHandler(func(env *Env, in tools.CalculatePRENInput) (tools.CalculatePRENOutput, error) {
			return tools.CalculatePREN(env.Catalog, in)
		}),
	},
	"generate_pourbaix": {
		schema: map[string]string{
			"element": "string", "temperature_c": "number", "soluble_concentration_m": "number",
			"ph_min": "number", "ph_max": "number", "e_min": "number", "e_max": "number",
			"grid_points": "integer", "point_ph": "number|null", "point_e": "number|null",
		},
		handle: simpleHandler(func(env *Env, in tools.GeneratePourbaixInput) (tools.GeneratePourbaixOutput, error) {
			return tools.GeneratePourbaix(in)
		}),
	},
	"predict_co2_h2s": {
		schema: map[string]string{"...": "the 18-parameter NORSOK M-506 signature"},
		handle: simpleHandler(func(env *Env, in tools.PredictCO2H2SInput) (tools.PredictCO2H2SOutput, error) {
			return tools.PredictCO2H2S(in)
		}),
	},
	"predict_aerated_chloride": {
		schema: map[string]string{
			"material_id": "string", "temperature_c": "number", "chloride_mg_l": "number",
			"ph": "number", "dissolved_oxygen_mg_l": "number|null", "velocity_m_s": "number|null",
			"pipe_diameter_m": "number|null", "pipe_length_m": "number|null",
		},
		handle: simpleHandler(func(env *Env, in tools.PredictAeratedChlorideInput) (tools.PredictAeratedChlorideOutput, error) {
			return tools.PredictAeratedChloride(env.Catalog, in)
		}),
	},
	"get_material_properties": {
		schema: map[string]string{"material_id": "string"},
		handle: simpleHandler(func(env *Env, in tools.GetMaterialPropertiesInput) (tools.GetMaterialPropertiesOutput, error) {
			return tools.GetMaterialProperties(env.Catalog, in)
		}),
	},
	"do_to_eh": {
		schema: map[string]string{"do_mg_l": "number", "ph": "number", "temperature_c": "number"},
		handle: simpleHandler(func(env *Env, in tools.DOToEhInput) (tools.DOToEhOutput, error) {
			return tools.DOToEh(in), nil
		}),
	},
	"eh_to_do": {
		schema: map[string]string{"eh_volts_she": "number", "ph": "number", "temperature_c": "number"},
		handle: simpleHandler(func(env *Env, in tools.EhToDOInput) (tools.EhToDOOutput, error) {
			return tools.EhToDO(in), nil
		}),
	},
	"orp_to_eh": {
		schema: map[string]string{"orp_mv": "number", "ref": "string (SHE|SCE|AgAgCl)"},
		handle: simpleHandler(func(env *Env, in tools.ORPToEhInput) (tools.ORPToEhOutput, error) {
			return tools.ORPToEh(in), nil
		}),
	},
	"eh_to_orp": {
		schema: map[string]string{"eh_volts_she": "number", "ref": "string (SHE|SCE|AgAgCl)"},
		handle: simpleHandler(func(env *Env, in tools.EhToORPInput) (tools.EhToORPOutput, error) {
			return tools.EhToORP(in), nil
		}),
	},
	"screen_materials": {
		schema: map[string]string{
			"environment": "{description, temperature_c, chloride_mg_l, ph, dissolved_oxygen_mg_l}",
			"candidates":  "[string]", "application": "string",
		},
		handle: simpleHandler(func(env *Env, in tools.ScreenMaterialsInput) (tools.ScreenMaterialsOutput, error) {
			return tools.ScreenMaterials(env.Catalog, in), nil
		}),
	},
	"generate_assessment_report": {
		schema: map[string]string{
			"project": "string", "author": "string", "title": "string",
			"galvanic": "assess_galvanic result, optional", "localized": "assess_localized result, optional",
		},
		handle: simpleHandler(func(env *Env, in tools.GenerateAssessmentReportInput) (tools.GenerateAssessmentReportOutput, error) {
			return tools.GenerateAssessmentReport(in)
		}),
	},
}
