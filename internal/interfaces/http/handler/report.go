package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	reportapp "github.com/retailops/backend/internal/application/report"
	"github.com/retailops/backend/internal/domain/report"
	"github.com/retailops/backend/internal/domain/shared"
)

// ReportHandler handles the server-side aggregation endpoints. Every
// report runs over complete entity snapshots; filters narrow the window,
// not the fetch depth.
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ForecastRowResponse is the wire shape of a forecast row. CoverageDays
// is omitted when the velocity is zero and coverage is unbounded, since
// +Inf has no JSON representation.
type ForecastRowResponse struct {
	ProductID            string   `json:"productId"`
	ProductName          string   `json:"productName"`
	AvgDailySales        float64  `json:"avgDailySales"`
	TrendFactor          float64  `json:"trendFactor"`
	EffectiveDailyDemand float64  `json:"effectiveDailyDemand"`
	ForecastDemand       float64  `json:"forecastDemand"`
	SafetyStock          float64  `json:"safetyStock"`
	TargetStock          float64  `json:"targetStock"`
	CurrentStock         float64  `json:"currentStock"`
	ProductionNeed       float64  `json:"productionNeed"`
	CoverageDays         *float64 `json:"coverageDays,omitempty"`
	HasRecentSales       bool     `json:"hasRecentSales"`
}

func toForecastRowResponse(row report.ForecastRow) ForecastRowResponse {
	resp := ForecastRowResponse{
		ProductID:            row.ProductID.String(),
		ProductName:          row.ProductName,
		AvgDailySales:        row.AvgDailySales,
		TrendFactor:          row.TrendFactor,
		EffectiveDailyDemand: row.EffectiveDailyDemand,
		ForecastDemand:       row.ForecastDemand,
		SafetyStock:          row.SafetyStock,
		TargetStock:          row.TargetStock,
		CurrentStock:         row.CurrentStock,
		ProductionNeed:       row.ProductionNeed,
		HasRecentSales:       row.HasRecentSales,
	}
	if !math.IsInf(row.CoverageDays, 0) && !math.IsNaN(row.CoverageDays) {
		coverage := row.CoverageDays
		resp.CoverageDays = &coverage
	}
	return resp
}

// Debts godoc
// @Summary      Debt ledger report
// @Description  Per (district, store) running balance of goods issued on credit minus payments received, largest debtor first
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start day (yyyy-MM-dd, inclusive)"
// @Param        to query string false "End day (yyyy-MM-dd, inclusive)"
// @Param        districtId query string false "District filter" format(uuid)
// @Param        storeId query string false "Store filter" format(uuid)
// @Success      200 {object} dto.Response{data=[]report.DebtRow}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/debts [get]
func (h *ReportHandler) Debts(c *gin.Context) {
	filter, err := h.debtFilter(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	rows, err := h.reportService.Debts(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithTotal(c, rows, int64(len(rows)))
}

// ExportDebtsPDF godoc
// @Summary      Printable debt ledger
// @Description  Renders the debt report as a PDF document. Returns 501 when printing is disabled by configuration.
// @Tags         reports
// @Produce      application/pdf
// @Param        from query string false "Start day (yyyy-MM-dd, inclusive)"
// @Param        to query string false "End day (yyyy-MM-dd, inclusive)"
// @Param        districtId query string false "District filter" format(uuid)
// @Param        storeId query string false "Store filter" format(uuid)
// @Success      200 {file} binary
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      501 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/debts/export.pdf [get]
func (h *ReportHandler) ExportDebtsPDF(c *gin.Context) {
	filter, err := h.debtFilter(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	pdf, err := h.reportService.ExportDebtsPDF(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="debts.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Production godoc
// @Summary      Production reconciliation report
// @Description  Per (date, product) comparison of produced quantity against net outflow. Movements on days without registered production are not shown.
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start day (yyyy-MM-dd, inclusive)"
// @Param        to query string false "End day (yyyy-MM-dd, inclusive)"
// @Success      200 {object} dto.Response{data=[]report.ProductionRow}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/production [get]
func (h *ReportHandler) Production(c *gin.Context) {
	var filter report.ProductionFilter
	var err error
	if filter.From, err = parseDayQuery(c, "from"); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if filter.To, err = parseDayQuery(c, "to"); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	rows, err := h.reportService.Production(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithTotal(c, rows, int64(len(rows)))
}

// Stock godoc
// @Summary      Stock balance report
// @Description  As-of-date inventory balance per (store, product) accumulated from the movement ledger
// @Tags         reports
// @Produce      json
// @Param        onDate query string false "Cutoff day (yyyy-MM-dd, end of day inclusive; defaults to today)"
// @Param        storeId query string false "Store filter" format(uuid)
// @Success      200 {object} dto.Response{data=[]report.StockRow}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/stock [get]
func (h *ReportHandler) Stock(c *gin.Context) {
	var filter report.StockFilter
	var err error
	if filter.AsOf, err = parseDayQuery(c, "onDate"); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if filter.StoreID, err = parseUUIDQuery(c, "storeId"); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	rows, err := h.reportService.Stock(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithTotal(c, rows, int64(len(rows)))
}

// Finance godoc
// @Summary      Financial summary report
// @Description  District and store rollups for a period. mode=pnl (default) prices cost and profit; mode=revenue reports revenue-only figures with return and bonus rates.
// @Tags         reports
// @Produce      json
// @Param        mode query string false "Report mode" Enums(pnl, revenue) default(pnl)
// @Param        from query string false "Start day (yyyy-MM-dd, inclusive)"
// @Param        to query string false "End day (yyyy-MM-dd, inclusive)"
// @Param        districtId query string false "District filter" format(uuid)
// @Param        storeId query string false "Store filter" format(uuid)
// @Success      200 {object} dto.Response{data=report.FinanceReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/finance [get]
func (h *ReportHandler) Finance(c *gin.Context) {
	filter, err := h.financeFilter(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	switch c.DefaultQuery("mode", "pnl") {
	case "pnl":
		rows, err := h.reportService.Finance(c.Request.Context(), filter)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, rows)
	case "revenue":
		rows, err := h.reportService.Revenue(c.Request.Context(), filter)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, rows)
	default:
		h.BadRequest(c, "mode must be pnl or revenue")
	}
}

// Forecast godoc
// @Summary      Demand forecast report
// @Description  Suggested production per product from recent sales velocity and a half-window trend. Products with comfortable coverage and no demand signal are hidden.
// @Tags         reports
// @Produce      json
// @Param        horizonDays query int false "Sales history window" Enums(7, 14, 30) default(14)
// @Param        planDays query int false "Days of demand to plan for" default(7)
// @Param        safetyDays query int false "Days of safety stock" default(2)
// @Param        storeId query string false "Store filter (network-wide when absent)" format(uuid)
// @Success      200 {object} dto.Response{data=[]ForecastRowResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/forecast [get]
func (h *ReportHandler) Forecast(c *gin.Context) {
	opts, err := h.forecastOptions(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	rows, err := h.reportService.Forecast(c.Request.Context(), opts)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	out := make([]ForecastRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toForecastRowResponse(row))
	}
	h.SuccessWithTotal(c, out, int64(len(out)))
}

// Anomalies godoc
// @Summary      Anomaly report
// @Description  Stores whose return, bonus or exchange rates breach fixed thresholds, and store-product pairs with excessive quality signals
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start day (yyyy-MM-dd, inclusive)"
// @Param        to query string false "End day (yyyy-MM-dd, inclusive)"
// @Param        districtId query string false "District filter" format(uuid)
// @Param        storeId query string false "Store filter" format(uuid)
// @Success      200 {object} dto.Response{data=report.AnomalyReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/anomalies [get]
func (h *ReportHandler) Anomalies(c *gin.Context) {
	var filter report.AnomalyFilter
	period, err := parsePeriodFilter(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	filter.From, filter.To = period.From, period.To
	filter.DistrictID, filter.StoreID = period.DistrictID, period.StoreID

	result, err := h.reportService.Anomalies(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// PlanVsActual godoc
// @Summary      Plan vs actual report
// @Description  Revenue plans compared against realized revenue over each plan's own period
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start day (yyyy-MM-dd, inclusive)"
// @Param        to query string false "End day (yyyy-MM-dd, inclusive)"
// @Param        districtId query string false "District filter" format(uuid)
// @Success      200 {object} dto.Response{data=[]report.PlanRow}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/plan-vs-actual [get]
func (h *ReportHandler) PlanVsActual(c *gin.Context) {
	var filter report.PlanFilter
	var err error
	if filter.From, err = parseDayQuery(c, "from"); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if filter.To, err = parseDayQuery(c, "to"); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if filter.DistrictID, err = parseUUIDQuery(c, "districtId"); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	rows, err := h.reportService.PlanVsActual(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithTotal(c, rows, int64(len(rows)))
}

func (h *ReportHandler) debtFilter(c *gin.Context) (report.DebtFilter, error) {
	var filter report.DebtFilter
	period, err := parsePeriodFilter(c)
	if err != nil {
		return filter, err
	}
	filter.From, filter.To = period.From, period.To
	filter.DistrictID, filter.StoreID = period.DistrictID, period.StoreID
	return filter, nil
}

func (h *ReportHandler) financeFilter(c *gin.Context) (report.FinanceFilter, error) {
	var filter report.FinanceFilter
	period, err := parsePeriodFilter(c)
	if err != nil {
		return filter, err
	}
	filter.From, filter.To = period.From, period.To
	filter.DistrictID, filter.StoreID = period.DistrictID, period.StoreID
	return filter, nil
}

func (h *ReportHandler) forecastOptions(c *gin.Context) (report.ForecastOptions, error) {
	var opts report.ForecastOptions
	var err error

	if opts.HorizonDays, err = parseIntQuery(c, "horizonDays"); err != nil {
		return opts, err
	}
	switch opts.HorizonDays {
	case 0, 7, 14, 30:
	default:
		return opts, shared.NewDomainError("INVALID_INPUT", "horizonDays must be 7, 14 or 30")
	}

	if opts.PlanDays, err = parseIntQuery(c, "planDays"); err != nil {
		return opts, err
	}
	if opts.PlanDays < 0 {
		return opts, shared.NewDomainError("INVALID_INPUT", "planDays must be positive")
	}
	if opts.SafetyDays, err = parseIntQuery(c, "safetyDays"); err != nil {
		return opts, err
	}
	if opts.SafetyDays < 0 {
		return opts, shared.NewDomainError("INVALID_INPUT", "safetyDays must be positive")
	}
	if opts.StoreID, err = parseUUIDQuery(c, "storeId"); err != nil {
		return opts, err
	}
	opts.AsOf = time.Now().UTC()
	return opts, nil
}

// parseIntQuery parses an optional integer query parameter; absent means
// zero, letting the options type apply its defaults.
func parseIntQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, shared.NewDomainError("INVALID_INPUT", name+" must be an integer")
	}
	return value, nil
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/debts", h.Debts)
		reports.GET("/debts/export.pdf", h.ExportDebtsPDF)
		reports.GET("/production", h.Production)
		reports.GET("/stock", h.Stock)
		reports.GET("/finance", h.Finance)
		reports.GET("/forecast", h.Forecast)
		reports.GET("/anomalies", h.Anomalies)
		reports.GET("/plan-vs-actual", h.PlanVsActual)
	}
}
