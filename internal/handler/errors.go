package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"field-sales/internal/logger/sl"
	"field-sales/internal/models"

	"github.com/gin-gonic/gin"
)

// writeError переводит доменную ошибку в HTTP-ответ.
func writeError(c *gin.Context, err error) {
	var (
		vErr     *models.ValidationError
		stockErr *models.StockError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
	case errors.Is(err, models.ErrDuplicateItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrDuplicateItem.Error()})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error(), "available": stockErr.Available})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		slog.ErrorContext(c.Request.Context(), "ошибка обработки запроса",
			slog.String("path", c.FullPath()), sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error, please retry"})
	}
}

// bindJSON читает тело запроса; при ошибке сам отвечает 400.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			writeError(c, vErr)
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// queryID - обязательный числовой параметр запроса.
func queryID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		writeError(c, &models.ValidationError{Field: name})
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(c, &models.ValidationError{Field: name, Reason: "not a number"})
		return 0, false
	}
	return id, true
}

func queryString(c *gin.Context, name string) (string, bool) {
	v := c.Query(name)
	if v == "" {
		writeError(c, &models.ValidationError{Field: name})
		return "", false
	}
	return v, true
}
