package api

import (
	"errors"
	"net/http"

	"lgh_sales/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const textContentType = "text/plain; charset=utf-8"

// reportsHandler holds the sales service and implements HTTP handlers for report operations.
type reportsHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(salesService *sales.Service, logger *zap.Logger) *reportsHandler {
	return &reportsHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleCreateReport handles the POST /reports endpoint.
func (h *reportsHandler) handleCreateReport(ctx *gin.Context) {
	var req sales.Input
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	report, err := h.salesService.CreateReport(req)
	if err != nil {
		var fieldErr *sales.FieldError
		switch {
		case errors.As(err, &fieldErr):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Error(), "field": fieldErr.Field})
		case errors.Is(err, sales.ErrZeroPurchasePrice):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "field": "purchase_price"})
		case errors.Is(err, sales.ErrAmountOutOfRange):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to create report", zap.String("address", req.Address), zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create report"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, report)
}

func (h *reportsHandler) handleGetReport(ctx *gin.Context) {
	report, ok := h.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, report)
}

func (h *reportsHandler) handleGetReportText(ctx *gin.Context) {
	report, ok := h.lookup(ctx)
	if !ok {
		return
	}
	ctx.Data(http.StatusOK, textContentType, []byte(report.Text))
}

func (h *reportsHandler) handleListReports(ctx *gin.Context) {
	reports, err := h.salesService.ListReports()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reports"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"results": reports, "quantity": len(reports)})
}

func (h *reportsHandler) handleExample(ctx *gin.Context) {
	text, err := sales.Render(sales.ExampleSale())
	if err != nil {
		h.logger.Error("failed to render example sale", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render example"})
		return
	}
	ctx.Data(http.StatusOK, textContentType, []byte(text))
}

func (h *reportsHandler) lookup(ctx *gin.Context) (*sales.Report, bool) {
	report, err := h.salesService.GetReport(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, sales.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return nil, false
	}
	return report, true
}
