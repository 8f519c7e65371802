package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/fitment"
)

// Handler carries the store access every endpoint needs. It is constructed
// once in main and injected; there is no package-level database state.
type Handler struct {
	DB        *database.DB
	Store     *fitment.Store
	Ledger    *fitment.Ledger
	JWTSecret string
}

func New(db *database.DB, jwtSecret string) *Handler {
	store := fitment.NewStore(db.DB)
	return &Handler{
		DB:        db,
		Store:     store,
		Ledger:    fitment.NewLedger(db.DB, store),
		JWTSecret: jwtSecret,
	}
}

// idParam parses the :id path parameter as an integer id. On failure it has
// already written the 400 response.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
