package server

import (
	"github.com/gin-gonic/gin"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
)

func (s *Server) CreateBrand(c *gin.Context) {
	var req branddomain.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	brand, err := s.brandSvc.CreateBrand(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, brand)
}

func (s *Server) ListBrands(c *gin.Context) {
	brands, err := s.brandSvc.ListBrands(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, brands)
}

func (s *Server) GetBrand(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	brand, err := s.brandSvc.GetBrand(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, brand)
}

// CreateCostTemplate appends a new pricing revision; earlier templates
// stay untouched so existing capitalizations keep their source row.
func (s *Server) CreateCostTemplate(c *gin.Context) {
	brandID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req branddomain.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.BrandID = brandID

	tpl, err := s.brandSvc.CreateTemplate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, tpl)
}

func (s *Server) ListCostTemplates(c *gin.Context) {
	brandID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	tpls, err := s.brandSvc.ListTemplates(c.Request.Context(), brandID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, tpls)
}

func (s *Server) CurrentCostTemplate(c *gin.Context) {
	brandID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	tpl, err := s.brandSvc.CurrentTemplate(c.Request.Context(), brandID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, tpl)
}
