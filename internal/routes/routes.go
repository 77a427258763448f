package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "biztime-backend/internal/handlers"
	"biztime-backend/internal/httperr"
	"biztime-backend/internal/repository"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	companyRepo := repository.NewCompanyRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	industryRepo := repository.NewIndustryRepository(db)

	companyHandler := handler.NewCompanyHandler(companyRepo)
	invoiceHandler := handler.NewInvoiceHandler(invoiceRepo)
	industryHandler := handler.NewIndustryHandler(industryRepo, companyRepo)

	companies := r.Group("/companies")
	{
		companies.GET("", companyHandler.List)
		companies.GET("/:code", companyHandler.Get)
		companies.POST("", companyHandler.Create)
		companies.PATCH("/:code", companyHandler.Update)
		companies.DELETE("/:code", companyHandler.Delete)
	}

	invoices := r.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("", invoiceHandler.Create)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.PATCH("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	industries := r.Group("/industries")
	{
		industries.GET("", industryHandler.List)
		industries.POST("", industryHandler.Create)
		industries.POST("/companies/:companyCode/industries/:industryCode", industryHandler.Associate)
	}

	r.NoRoute(func(c *gin.Context) {
		httperr.Respond(c, httperr.NotFound("Not Found"))
	})
}
