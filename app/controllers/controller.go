// Package controllers translates HTTP onto the service layer. Every
// handler binds/validates input, calls one service method and writes
// the JSON envelope.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/chitralaya/chitralaya/app/services/apperr"
	"github.com/chitralaya/chitralaya/pkg/ctx"
	"github.com/chitralaya/chitralaya/pkg/logger"
	"github.com/chitralaya/chitralaya/pkg/middleware"
	"github.com/chitralaya/chitralaya/pkg/reqid"
	"github.com/chitralaya/chitralaya/pkg/response"
)

// fail maps a service error onto the HTTP envelope. Server faults are
// logged with the request id; their details never reach the client.
func fail(c *ctx.Context, err error) {
	appErr := apperr.From(err)

	if appErr.Kind == apperr.KindServer || appErr.Kind == apperr.KindGateway {
		logger.Error("request failed",
			"request_id", reqid.FromCtx(c.Request.Context()),
			"path", c.Request.URL.Path,
			"error", appErr,
		)
	}

	if appErr.Kind == apperr.KindValidation && appErr.Fields != nil {
		response.ValidationError(c.Writer, appErr.Fields)
		return
	}

	c.Error(appErr.Status(), appErr.Message)
}

// pathID parses the {id} route parameter. Non-numeric ids read as 404,
// matching how missing records are reported.
func pathID(c *ctx.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.Error(http.StatusNotFound, "Not found")
		return 0, false
	}
	return uint(id), true
}

// currentUserID reads the id the auth middleware stored.
func currentUserID(c *ctx.Context) uint {
	return middleware.UserID(c.Request)
}
