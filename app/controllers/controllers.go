// Package controllers holds the HTTP handlers for the dashboard API. Each
// controller is a thin translation layer: bind and validate input, call the
// service, map errors onto the response envelope.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/bizdesk/pkg/ctx"
	"github.com/shashiranjanraj/bizdesk/pkg/logger"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// respondErr maps service-layer errors onto HTTP responses.
func respondErr(c *ctx.Context, err error) {
	var ve *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.NotFound()
	case errors.As(err, &ve):
		c.ValidationError(ve.Fields)
	default:
		logger.WithCtx(c.Context()).Error("request failed", "path", c.Path(), "error", err)
		c.Error(http.StatusInternalServerError, "Internal server error")
	}
}

// paramID parses the {id} path parameter. On failure it writes a 400 and
// returns false.
func paramID(c *ctx.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
