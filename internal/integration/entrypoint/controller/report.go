package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campus-pos/backend/internal/application/usecase/report"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
	"github.com/campus-pos/backend/internal/integration/entrypoint/dto"
)

// ReportController handles sales report endpoints.
type ReportController struct {
	dailySalesUseCase *report.DailySalesUseCase
	location          *time.Location
}

// NewReportController creates a new report controller instance. The location
// is used to default the date parameter to today's local date.
func NewReportController(dailySalesUseCase *report.DailySalesUseCase, location *time.Location) *ReportController {
	if location == nil {
		location = time.Local
	}
	return &ReportController{
		dailySalesUseCase: dailySalesUseCase,
		location:          location,
	}
}

// DailySales handles GET /reports/daily-sales requests (admin only). The
// optional date query parameter defaults to today.
func (c *ReportController) DailySales(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		date = time.Now().In(c.location).Format("2006-01-02")
	}

	output, err := c.dailySalesUseCase.Execute(ctx.Request.Context(), report.DailySalesInput{
		Date: date,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySalesResponse(output.Report))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
