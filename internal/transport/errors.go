package transport

import (
	"encoding/json"
	"log"
	"net/http"

	"corrosion-engine/internal/errs"
)

var errLog = log.New(log.Writer(), "transport: ", log.LstdFlags)

// ErrorEnvelope is the JSON error shape returned on a failed tool call;
// callers distinguish error kinds rather than a single 400/500 split.
type ErrorEnvelope struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func statusForKind(kind string) int {
	switch kind {
	case errs.InputValidation:
		return http.StatusBadRequest
	case errs.OutOfValidatedRegion:
		return http.StatusUnprocessableEntity
	case errs.Tier2Unavailable:
		return http.StatusUnprocessableEntity
	case errs.SolverNonConvergence:
		return http.StatusInternalServerError
	case errs.CatalogLoad:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		errLog.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	kind := errs.Classify(err)
	status := statusForKind(kind)
	if status >= http.StatusInternalServerError {
		errLog.Printf("kind=%s err=%v", kind, err)
	} else {
		errLog.Printf("kind=%s err=%v (client error)", kind, err)
	}
	writeJSON(w, status, ErrorEnvelope{Kind: kind, Message: err.Error()})
}
