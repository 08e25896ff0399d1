package service

import (
	"fmt"
	"time"

	"github.com/artenepo/inventory-manager/internal/shop/query"
	"github.com/artenepo/inventory-manager/internal/shop/repository"
)

const dateLayout = "2006-01-02"

// analyticsWindowDays is the trailing window of the analytics view.
const analyticsWindowDays = 30

// ReportService runs the stateless sold-item aggregations. The product
// filter arrives product-scoped and is projected onto items here.
type ReportService struct {
	reports *repository.ReportRepository
	clock   Clock
}

func NewReportService(reports *repository.ReportRepository, clock Clock) *ReportService {
	return &ReportService{reports: reports, clock: clock}
}

// DailyReport is the payload of the per-date sold report.
type DailyReport struct {
	Date        string                `json:"date"`
	Items       []repository.DailyRow `json:"items"`
	Dates       []string              `json:"dates"`
	TotalProfit float64               `json:"total_profit"`
}

// Daily groups items sold on the target date (default: today) by product,
// restricted by the given product filter. The grand total is the sum of the
// group profits; no groups means a zero total.
func (s *ReportService) Daily(pred query.Node, dateParam string) (*DailyReport, error) {
	day := s.clock().Format(dateLayout)
	if dateParam != "" {
		parsed, err := time.Parse(dateLayout, dateParam)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, dateParam)
		}
		day = parsed.Format(dateLayout)
	}

	itemPred := query.And{Children: []query.Node{
		query.ForItems(pred),
		query.Leaf{Field: "sold_date", Op: query.OpOnDate, Value: day},
	}}
	cond, args, err := query.Compile(itemPred, query.ItemScope)
	if err != nil {
		return nil, err
	}

	rows, err := s.reports.DailyGroups(cond, args)
	if err != nil {
		return nil, err
	}

	saleDates, err := s.reports.SaleDates()
	if err != nil {
		return nil, err
	}
	dates := make([]string, len(saleDates))
	for i, d := range saleDates {
		dates[i] = d.Format(dateLayout)
	}

	total := 0.0
	for _, row := range rows {
		total += row.Profit
	}

	return &DailyReport{Date: day, Items: rows, Dates: dates, TotalProfit: total}, nil
}

// AnalyticsReport is the payload of the trailing-window analytics view.
type AnalyticsReport struct {
	Since       string                    `json:"since"`
	Items       []repository.AnalyticsRow `json:"items"`
	TotalProfit float64                   `json:"total_profit"`
}

// Analytics aggregates items sold within the trailing 30 days per product,
// ranked by profit descending, plus a grand total over the window.
func (s *ReportService) Analytics(pred query.Node) (*AnalyticsReport, error) {
	now := s.clock()
	cutoff := now.AddDate(0, 0, -analyticsWindowDays)
	since := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, cutoff.Location())

	itemPred := query.And{Children: []query.Node{
		query.ForItems(pred),
		query.Leaf{Field: "sold_date", Op: query.OpSince, Value: since},
	}}
	cond, args, err := query.Compile(itemPred, query.ItemScope)
	if err != nil {
		return nil, err
	}

	rows, err := s.reports.AnalyticsGroups(cond, args)
	if err != nil {
		return nil, err
	}
	total, err := s.reports.TotalProfit(cond, args)
	if err != nil {
		return nil, err
	}

	return &AnalyticsReport{
		Since:       since.Format(dateLayout),
		Items:       rows,
		TotalProfit: total,
	}, nil
}
