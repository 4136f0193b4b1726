package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	overridedomain "github.com/revendahq/revenda/internal/override/domain"
)

func (s *Server) UpsertOverride(c *gin.Context) {
	var req overridedomain.UpsertOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ContractID = strings.TrimSpace(c.Param("id"))

	resp, err := s.overrideSvc.Upsert(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListOverrides(c *gin.Context) {
	resp, err := s.overrideSvc.ListByContract(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteOverride(c *gin.Context) {
	year, err := strconv.Atoi(strings.TrimSpace(c.Param("year")))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	month, err := strconv.Atoi(strings.TrimSpace(c.Param("month")))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.overrideSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id")), year, month); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
