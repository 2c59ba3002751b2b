package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// topProductsLimit caps the top-selling-products result set.
const topProductsLimit = 10

const dateLayout = "2006-01-02"

type birthdayCustomer struct {
	CustomerID        int64  `json:"customer_id"`
	CustomerFirstName string `json:"customer_first_name"`
}

type productSales struct {
	Product    string `json:"product"`
	TotalSales int64  `json:"total_sales"`
}

type customerLastOrder struct {
	CustomerID    int64  `json:"customer_id"`
	CustomerEmail string `json:"customer_email"`
	LastOrderDate string `json:"last_order_date"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleBirthdays returns every customer whose birthday falls on today's
// month and day, regardless of birth year.
//
// GET /customers/birthday
func (s *Server) handleBirthdays(w http.ResponseWriter, r *http.Request) {
	today := s.now()

	rows, err := s.queries.CustomersWithBirthday(r.Context(), today.Month(), today.Day())
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	customers := make([]birthdayCustomer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, birthdayCustomer{
			CustomerID:        row.CustomerID,
			CustomerFirstName: row.CustomerFirstName,
		})
	}

	respondJSON(w, http.StatusOK, map[string][]birthdayCustomer{"customers": customers})
}

// handleTopProducts returns up to ten products ordered by descending line
// item count for the given year. An empty result is a client-visible 404,
// not an empty list.
//
// GET /products/top-selling-products/{year}
func (s *Server) handleTopProducts(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		s.respondError(w, r, errInvalidYear, http.StatusBadRequest)
		return
	}

	rows, err := s.queries.TopSellingProducts(r.Context(), year, topProductsLimit)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if len(rows) == 0 {
		s.respondError(w, r, errNoSalesForYear, http.StatusNotFound)
		return
	}

	products := make([]productSales, 0, len(rows))
	for _, row := range rows {
		products = append(products, productSales{
			Product:    row.Product,
			TotalSales: row.TotalSales,
		})
	}

	respondJSON(w, http.StatusOK, map[string][]productSales{"products": products})
}

// handleLastOrders returns, for every customer with at least one receipt,
// the date of their most recent order.
//
// GET /customers/last-order-per-customer
func (s *Server) handleLastOrders(w http.ResponseWriter, r *http.Request) {
	rows, err := s.queries.LastOrderPerCustomer(r.Context())
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	customers := make([]customerLastOrder, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, customerLastOrder{
			CustomerID:    row.CustomerID,
			CustomerEmail: row.CustomerEmail,
			LastOrderDate: row.LastOrderDate.Format(dateLayout),
		})
	}

	respondJSON(w, http.StatusOK, map[string][]customerLastOrder{"customers": customers})
}
