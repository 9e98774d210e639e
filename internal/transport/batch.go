package transport

import (
	"net/http"

	"corrosion-engine/internal/tools"
)

// handleScreenMaterialsBatch accepts a multipart-form .xlsx upload under
// field "file" and returns the per-row screening results plus a
// downloadable results workbook.
func handleScreenMaterialsBatch(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorEnvelope{Kind: "InputValidation", Message: "invalid multipart upload: " + err.Error()})
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorEnvelope{Kind: "InputValidation", Message: "missing file field: " + err.Error()})
			return
		}
		defer file.Close()

		out, err := tools.ScreenMaterialsBatch(env.Catalog, file)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}
