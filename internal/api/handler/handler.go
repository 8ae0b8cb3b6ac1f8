package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"casechain/backend/internal/lifecycle"
	"casechain/backend/internal/query"
	"casechain/backend/internal/reporthub"
	"casechain/backend/internal/reward"
)

// Handler binds the lifecycle engine and its collaborators to HTTP routes.
type Handler struct {
	Lifecycle *lifecycle.Service
	Query     *query.Service
	Rewards   *reward.Ledger
	Hub       *reporthub.Hub

	// Users maps username to login credential for the role portals. Token
	// issuance is otherwise an external concern; no user database exists.
	Users map[string]Credential

	// JWTSecret signs and verifies portal tokens.
	JWTSecret []byte
}

func NewHandler(lc *lifecycle.Service, q *query.Service, ledger *reward.Ledger, hub *reporthub.Hub, users map[string]Credential, secret []byte) *Handler {
	return &Handler{
		Lifecycle: lc,
		Query:     q,
		Rewards:   ledger,
		Hub:       hub,
		Users:     users,
		JWTSecret: secret,
	}
}

// writeError maps engine error kinds to HTTP statuses, keeping the
// {error, message} response shape of every portal.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "message": err.Error()})
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid transition", "message": err.Error()})
	case errors.Is(err, lifecycle.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{"error": "Already processed", "message": err.Error()})
	case errors.Is(err, lifecycle.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden", "message": err.Error()})
	case errors.Is(err, lifecycle.ErrPreconditionFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Precondition failed", "message": err.Error()})
	case errors.Is(err, reward.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient funds", "message": err.Error()})
	case errors.Is(err, lifecycle.ErrValidation), errors.Is(err, reward.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error", "message": err.Error()})
	}
}
