package handlers

import (
	"net/http"

	"github.com/CODINGDONG1211/Lifestyleapp/models"
)

// Exercises handles GET /api/exercises: the reference exercise catalog,
// optionally filtered by a name query.
func Exercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.SearchCatalog(r.URL.Query().Get("query")))
}
