package handler

import (
	"errors"
	"net/http"

	"biztime-backend/internal/httperr"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type CompanyHandler struct {
	companies *repository.CompanyRepository
}

func NewCompanyHandler(companies *repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.List()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	code := c.Param("code")

	company, industries, err := h.companies.GetWithIndustries(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Respond(c, httperr.NotFound("No company with code %s could be found.", code))
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": gin.H{
		"code":        company.Code,
		"name":        company.Name,
		"description": company.Description,
		"industries":  industries,
	}})
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&payload); err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid payload"))
		return
	}

	// The code is a strict lowercase slug of the name; a duplicate slug
	// fails at the store as a primary key violation.
	company := models.Company{
		Code:        slug.Make(payload.Name),
		Name:        payload.Name,
		Description: payload.Description,
	}
	if err := h.companies.Create(&company); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"company": company})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	code := c.Param("code")

	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&payload); err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid payload"))
		return
	}

	rows, err := h.companies.Update(code, payload.Name, payload.Description)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if rows == 0 {
		httperr.Respond(c, httperr.NotFound("Can't update company with code of %s", code))
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": models.Company{
		Code:        code,
		Name:        payload.Name,
		Description: payload.Description,
	}})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	code := c.Param("code")

	rows, err := h.companies.Delete(code)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if rows == 0 {
		httperr.Respond(c, httperr.NotFound("Can't delete company with code of %s", code))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
