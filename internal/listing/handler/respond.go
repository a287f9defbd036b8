package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/listings/listings-api/internal/listing"
	"github.com/listings/listings-api/pkg/logger"
	"github.com/listings/listings-api/pkg/metrics"
)

// Operation labels used in logs and metrics.
const (
	opCreate = "create"
	opList   = "list"
	opGet    = "get"
	opUpdate = "update"
	opDelete = "delete"
)

// The transport status always matches the "status" field of the envelope.

func record(op string, status int) {
	metrics.Requests.WithLabelValues(op, strconv.Itoa(status)).Inc()
}

func respondJSON(c *gin.Context, op string, v any) {
	record(op, http.StatusOK)
	c.JSON(http.StatusOK, v)
}

func respondMessage(c *gin.Context, op, msg string, extra gin.H) {
	body := gin.H{"status": http.StatusOK, "message": msg}
	for k, v := range extra {
		body[k] = v
	}
	record(op, http.StatusOK)
	c.JSON(http.StatusOK, body)
}

// respondError maps err onto the error envelope. Anything that is not a
// validation, id or not-found error is a store fault and answers 500.
func respondError(c *gin.Context, op string, err error) {
	var (
		status int
		msg    string
		verr   *listing.ValidationError
	)
	switch {
	case errors.As(err, &verr):
		status, msg = http.StatusBadRequest, verr.Message
	case errors.Is(err, listing.ErrInvalidID):
		status, msg = http.StatusBadRequest, fmt.Sprintf("'%s' is not a valid listing id", c.Param("id"))
	case errors.Is(err, listing.ErrNotFound):
		status, msg = http.StatusNotFound, fmt.Sprintf("No item with ID field %s", c.Param("id"))
	default:
		status, msg = http.StatusInternalServerError, "internal server error"
		logger.Errorw("listing store failure", "operation", op, "id", c.Param("id"), "error", err)
		_ = c.Error(err)
	}
	record(op, status)
	c.JSON(status, gin.H{"status": status, "error": msg})
}
