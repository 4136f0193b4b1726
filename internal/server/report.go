package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetFinancialReport(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}

	resp, err := s.reportSvc.Financial(c.Request.Context(), year)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetContractProjection(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}

	resp, err := s.reportSvc.ContractProjection(c.Request.Context(), strings.TrimSpace(c.Param("id")), year)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func yearParam(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Query("year"))
	if raw == "" {
		AbortWithError(c, newValidationError("year", "invalid_year", "year is required"))
		return 0, false
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		AbortWithError(c, newValidationError("year", "invalid_year", "year must be numeric"))
		return 0, false
	}
	return year, true
}
