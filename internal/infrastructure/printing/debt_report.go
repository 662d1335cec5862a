package printing

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retailops/backend/internal/domain/report"
)

// debtReportTemplate lays out the receivables table. Styles are inlined
// so the document renders identically on any Chrome instance.
var debtReportTemplate = template.Must(template.New("debt_report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Store Debts</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; color: #1a1a1a; }
  h1 { font-size: 18px; margin-bottom: 2px; }
  .meta { color: #666; margin-bottom: 14px; }
  table { width: 100%; border-collapse: collapse; }
  th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; }
  th { background: #f0f0f0; }
  td.num, th.num { text-align: right; }
  tr.total td { font-weight: bold; background: #fafafa; }
  tr.negative td.balance { color: #0a7d32; }
</style>
</head>
<body>
<h1>Store Debts</h1>
<div class="meta">Generated {{.GeneratedAt}}</div>
<table>
<thead>
<tr>
  <th>#</th>
  <th>District</th>
  <th>Store</th>
  <th class="num">Credit</th>
  <th class="num">Payments</th>
  <th class="num">Balance</th>
</tr>
</thead>
<tbody>
{{range .Rows}}<tr{{if .Negative}} class="negative"{{end}}>
  <td>{{.Index}}</td>
  <td>{{.District}}</td>
  <td>{{.Store}}</td>
  <td class="num">{{.Credit}}</td>
  <td class="num">{{.Payments}}</td>
  <td class="num balance">{{.Balance}}</td>
</tr>
{{end}}<tr class="total">
  <td colspan="3">Total</td>
  <td class="num">{{.TotalCredit}}</td>
  <td class="num">{{.TotalPayments}}</td>
  <td class="num">{{.TotalBalance}}</td>
</tr>
</tbody>
</table>
</body>
</html>`))

type debtReportRow struct {
	Index    int
	District string
	Store    string
	Credit   string
	Payments string
	Balance  string
	Negative bool
}

type debtReportData struct {
	GeneratedAt   string
	Rows          []debtReportRow
	TotalCredit   string
	TotalPayments string
	TotalBalance  string
}

// DebtReportRenderer turns debt report rows into a printable PDF document.
type DebtReportRenderer struct {
	renderer PDFRenderer
}

// NewDebtReportRenderer creates a new DebtReportRenderer
func NewDebtReportRenderer(renderer PDFRenderer) *DebtReportRenderer {
	return &DebtReportRenderer{renderer: renderer}
}

// RenderDebtReport builds the debts HTML table and renders it to PDF.
func (r *DebtReportRenderer) RenderDebtReport(ctx context.Context, rows []report.DebtRow, generatedAt time.Time) ([]byte, error) {
	html, err := buildDebtReportHTML(rows, generatedAt)
	if err != nil {
		return nil, err
	}

	result, err := r.renderer.Render(ctx, &RenderRequest{
		HTML:    html,
		Title:   "Store Debts",
		Margins: DefaultMargins(),
	})
	if err != nil {
		return nil, err
	}
	return result.PDFData, nil
}

// Close releases the underlying browser resources.
func (r *DebtReportRenderer) Close() error {
	return r.renderer.Close()
}

func buildDebtReportHTML(rows []report.DebtRow, generatedAt time.Time) (string, error) {
	data := debtReportData{
		GeneratedAt: generatedAt.UTC().Format("2006-01-02 15:04 UTC"),
		Rows:        make([]debtReportRow, 0, len(rows)),
	}

	totalCredit := decimal.Zero
	totalPayments := decimal.Zero
	totalBalance := decimal.Zero

	for i, row := range rows {
		data.Rows = append(data.Rows, debtReportRow{
			Index:    i + 1,
			District: row.DistrictName,
			Store:    row.StoreName,
			Credit:   row.CreditAmount.StringFixed(2),
			Payments: row.Payments.StringFixed(2),
			Balance:  row.Balance.StringFixed(2),
			Negative: row.Balance.IsNegative(),
		})
		totalCredit = totalCredit.Add(row.CreditAmount)
		totalPayments = totalPayments.Add(row.Payments)
		totalBalance = totalBalance.Add(row.Balance)
	}

	data.TotalCredit = totalCredit.StringFixed(2)
	data.TotalPayments = totalPayments.StringFixed(2)
	data.TotalBalance = totalBalance.StringFixed(2)

	var buf bytes.Buffer
	if err := debtReportTemplate.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "debt report template failed", err)
	}
	return buf.String(), nil
}
