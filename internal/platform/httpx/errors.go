package httpx

import "net/http"

// RespondError is the fallback for errors no handler branch claims.
// Sentinel mapping lives in each domain handler; whatever reaches this
// point is unexpected, so the detail is withheld from the response.
func RespondError(w http.ResponseWriter, _ error) {
	Problem(w, http.StatusInternalServerError, "Internal Error", "")
}
