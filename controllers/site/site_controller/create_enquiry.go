package site_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
	"github.com/sjmedialabs/kkengineering-sub000/services"
)

// CreateEnquiry godoc
// @Summary Submit an enquiry
// @Description Captures a lead from the contact form or product enquiry modal. The auto-reply and admin notification go out on a best-effort basis after the row is written; a mail failure never fails the request.
// @Tags Public
// @Accept json
// @Produce json
// @Param enquiry body models.EnquiryRequest true "Enquiry details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/enquiries [post]
func CreateEnquiry(c *gin.Context) {
	var req models.EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Type == "" {
		req.Type = models.EnquiryTypeGeneral
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	enquiry := models.Enquiry{
		Type:              req.Type,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Company:           req.Company,
		ProductName:       req.ProductName,
		ProductCategory:   req.ProductCategory,
		SelectedProductID: req.SelectedProductID,
		Message:           req.Message,
		Status:            models.EnquiryStatusPending,
	}

	if err := repository.Get().CreateEnquiry(ctx, &enquiry); err != nil {
		log.Printf("[ERROR] Failed to store enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit enquiry"))
		return
	}

	go services.GetMailer().SendEnquiryEmails(enquiry)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Enquiry submitted successfully", enquiry))
}
