package handler

import (
	"net/http"

	"biztime-backend/internal/httperr"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type IndustryHandler struct {
	industries *repository.IndustryRepository
	companies  *repository.CompanyRepository
}

func NewIndustryHandler(industries *repository.IndustryRepository, companies *repository.CompanyRepository) *IndustryHandler {
	return &IndustryHandler{industries: industries, companies: companies}
}

// List returns one row per company association. An empty industries table is
// a 404, an all-or-nothing check rather than a per-row one.
func (h *IndustryHandler) List(c *gin.Context) {
	industries, err := h.industries.ListWithCompanies()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if len(industries) == 0 {
		httperr.Respond(c, httperr.NotFound("Could not find any industries"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"industries": industries})
}

func (h *IndustryHandler) Create(c *gin.Context) {
	var payload struct {
		Code     string `json:"code"`
		Industry string `json:"industry"`
	}
	if err := c.BindJSON(&payload); err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid payload"))
		return
	}

	industry := models.Industry{Code: payload.Code, Industry: payload.Industry}
	if err := h.industries.Create(&industry); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"industry": industry})
}

// Associate links a company to an industry after checking both sides exist,
// naming whichever one is missing.
func (h *IndustryHandler) Associate(c *gin.Context) {
	companyCode := c.Param("companyCode")
	industryCode := c.Param("industryCode")

	companyExists, err := h.companies.Exists(companyCode)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if !companyExists {
		httperr.Respond(c, httperr.NotFound("Company with code %s not found", companyCode))
		return
	}

	industryExists, err := h.industries.Exists(industryCode)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if !industryExists {
		httperr.Respond(c, httperr.NotFound("Industry with code %s not found", industryCode))
		return
	}

	association, err := h.industries.Associate(companyCode, industryCode)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"association": association})
}
