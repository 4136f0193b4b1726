package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	adjustmentdomain "github.com/revendahq/revenda/internal/adjustment/domain"
)

func (s *Server) CreateAdjustment(c *gin.Context) {
	var req adjustmentdomain.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ContractID = strings.TrimSpace(c.Param("id"))

	resp, err := s.adjustmentSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListAdjustments(c *gin.Context) {
	resp, err := s.adjustmentSvc.ListByContract(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
