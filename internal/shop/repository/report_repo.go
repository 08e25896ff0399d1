package repository

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// ReportRepository holds the read-only aggregation queries behind the daily
// report and the trailing-30-day analytics. It never modifies data.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// DailyRow is one sold group of a report day: items of the same product
// sharing a second-truncated sale timestamp, cost and selling price.
type DailyRow struct {
	Name         string    `json:"name"`
	SoldDate     time.Time `json:"sold_date"`
	Cost         float64   `json:"cost"`
	SellingPrice float64   `json:"selling_price"`
	Profit       float64   `json:"profit"`
	Quantity     int64     `json:"quantity"`
}

// AnalyticsRow is one product's totals inside the analytics window.
type AnalyticsRow struct {
	Product  string  `json:"product"`
	Quantity int64   `json:"quantity"`
	Profit   float64 `json:"profit"`
}

func (r *ReportRepository) itemQuery(cond string, args []interface{}) *gorm.DB {
	q := r.db.Table("item").
		Joins("JOIN product ON product.id = item.product_id").
		Joins("LEFT JOIN brand ON brand.id = product.brand_id")
	if cond != "" {
		q = q.Where(cond, args...)
	}
	return q
}

// DailyGroups aggregates sold items under the compiled item-scope condition.
func (r *ReportRepository) DailyGroups(cond string, args []interface{}) ([]DailyRow, error) {
	var rows []DailyRow
	err := r.itemQuery(cond, args).
		Select("product.name AS name, " +
			"date_trunc('second', item.sold_date) AS sold_date, " +
			"item.cost AS cost, " +
			"item.selling_price AS selling_price, " +
			"SUM(item.selling_price - item.cost) AS profit, " +
			"COUNT(*) AS quantity").
		Group("product.id, product.name, date_trunc('second', item.sold_date), item.cost, item.selling_price").
		Order("product.name, sold_date").
		Scan(&rows).Error
	return rows, err
}

// SaleDates returns every calendar date with at least one sale, newest first.
func (r *ReportRepository) SaleDates() ([]time.Time, error) {
	var rows []struct {
		Date time.Time
	}
	err := r.db.Raw(
		"SELECT DISTINCT sold_date::date AS date FROM item WHERE sold_date IS NOT NULL ORDER BY date DESC",
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		dates[i] = row.Date
	}
	return dates, nil
}

// AnalyticsGroups aggregates per product name, most profitable first.
func (r *ReportRepository) AnalyticsGroups(cond string, args []interface{}) ([]AnalyticsRow, error) {
	var rows []AnalyticsRow
	err := r.itemQuery(cond, args).
		Select("product.name AS product, " +
			"COUNT(*) AS quantity, " +
			"SUM(item.selling_price - item.cost) AS profit").
		Group("product.name").
		Order("profit DESC").
		Scan(&rows).Error
	return rows, err
}

// TotalProfit sums selling_price - cost over all items matching the
// condition. No matches yields 0, never an error.
func (r *ReportRepository) TotalProfit(cond string, args []interface{}) (float64, error) {
	var total sql.NullFloat64
	err := r.itemQuery(cond, args).
		Select("SUM(item.selling_price - item.cost)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}
