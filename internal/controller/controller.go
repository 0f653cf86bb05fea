package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
)

// respondError maps a service error onto its taxonomy status and a JSON body.
func respondError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respondError(c, apperr.Invalidf("Invalid %s format", name))
		return 0, false
	}
	return uint(id), true
}
