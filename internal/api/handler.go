package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/findash/internal/domain/dto"
	"github.com/guttosm/findash/internal/service"
)

// Handler provides HTTP handlers for the stock-data endpoints.
//
// Responsibilities:
//   - Validate incoming JSON request bodies
//   - Call the service layer for history fetching and shaping
//   - Map service errors to the API's two-case taxonomy (404 vs 500)
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.StockService): Service dependency performing fetch and shaping.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// Root handles GET / and reports the service banner.
//
// Root godoc
// @Summary      Service banner
// @Description  Liveness message identifying the API
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Financial Dashboard API"})
}

// GetStockData handles POST /api/stock-data requests.
//
// Request body:
//   - ticker (string, required): Stock ticker symbol (e.g., "AAPL").
//   - start_date (string, required): Range start in YYYY-MM-DD format.
//   - end_date (string, required): Range end in YYYY-MM-DD format.
//
// Responses:
//   - 200 OK: StockDataResponse with candlestick series and KPI summary.
//   - 400 Bad Request: Malformed body or invalid date format.
//   - 404 Not Found: Provider has no rows for the ticker/date range.
//   - 500 Internal Server Error: Provider or shaping failure.
//
// GetStockData godoc
// @Summary      Get candlestick series and KPIs for a ticker
// @Description  Fetches daily history for the ticker over the date range and returns candlesticks plus summary indicators
// @Tags         stock-data
// @Accept       json
// @Produce      json
// @Param        request  body      dto.StockDataRequest  true  "Ticker and date range"
// @Success      200      {object}  dto.StockDataResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse      "Not Found"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/stock-data [post]
func (h *Handler) GetStockData(c *gin.Context) {
	var req dto.StockDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	// Binding already enforced the layout; these cannot fail.
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	resp, err := h.svc.GetStockData(c.Request.Context(), req.Ticker, start, end)
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			detail := fmt.Sprintf("No data found for ticker '%s' in the specified date range", req.Ticker)
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: detail})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
