package usecase

import (
	"context"
	"net/http"
	"sort"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AnalyticsUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
	productRepo   repo.ProductRepository
	userRepo      repo.UserRepository
}

// DI
func NewAnalyticsUsecase(
	orderRepo repo.OrderRepository,
	orderItemRepo repo.OrderItemRepository,
	productRepo repo.ProductRepository,
	userRepo repo.UserRepository,
) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		userRepo:      userRepo,
	}
}

type DailySales struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
	OrderCount int     `json:"order_count"`
}

type SalesReport struct {
	TotalRevenue float64      `json:"total_revenue"`
	TotalOrders  int          `json:"total_orders"`
	SalesByDate  []DailySales `json:"sales_by_date"`
}

type ProductSales struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
}

type ProductReport struct {
	TotalProducts     int            `json:"total_products"`
	TotalProductsSold int            `json:"total_products_sold"`
	TopProducts       []ProductSales `json:"top_products"`
}

type UserReport struct {
	TotalUsers    int          `json:"total_users"`
	ActiveUsers   []model.User `json:"active_users"`
	InactiveUsers []model.User `json:"inactive_users"`
	NewUsers      []model.User `json:"new_users"`
}

// Shippedの注文だけを売上として日別に集計する。
func (u *AnalyticsUsecase) GetSales(ctx context.Context) (Envelope, error) {
	orders, err := u.orderRepo.ListByStatus(ctx, model.OrderStatusShipped)
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(orders) == 0 {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "No sales found")
	}

	report := SalesReport{TotalOrders: len(orders)}
	byDate := map[string]*DailySales{}
	for _, o := range orders {
		report.TotalRevenue += o.TotalAmount
		date := o.CreatedAt.Format("2006-01-02")
		if byDate[date] == nil {
			byDate[date] = &DailySales{Date: date}
		}
		byDate[date].TotalSales += o.TotalAmount
		byDate[date].OrderCount++
	}
	for _, d := range byDate {
		report.SalesByDate = append(report.SalesByDate, *d)
	}
	sort.Slice(report.SalesByDate, func(i, j int) bool {
		return report.SalesByDate[i].Date < report.SalesByDate[j].Date
	})

	return Envelope{
		Message: "Sales fetched successfully",
		Data:    report,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

// Activeな商品を対象に、注文明細の数量から売れ筋トップ5を出す。
func (u *AnalyticsUsecase) GetProducts(ctx context.Context) (Envelope, error) {
	products, err := u.productRepo.ListByStatus(ctx, model.ProductStatusActive)
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(products) == 0 {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "No products found")
	}

	items, err := u.orderItemRepo.ListAll(ctx)
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	sold := map[string]int{}
	totalSold := 0
	for _, item := range items {
		sold[item.ProductID] += item.Quantity
		totalSold += item.Quantity
	}

	top := make([]ProductSales, 0, len(products))
	for _, p := range products {
		top = append(top, ProductSales{
			ProductID: p.ID,
			Name:      p.Name,
			UnitsSold: sold[p.ID],
		})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].UnitsSold > top[j].UnitsSold
	})
	if len(top) > 5 {
		top = top[:5]
	}

	report := ProductReport{
		TotalProducts:     len(products),
		TotalProductsSold: totalSold,
		TopProducts:       top,
	}

	return Envelope{
		Message: "Products fetched successfully",
		Data:    report,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

// Customerロールのユーザーを注文の有無で仕分ける。
func (u *AnalyticsUsecase) GetUsers(ctx context.Context) (Envelope, error) {
	users, err := u.userRepo.ListByRole(ctx, model.RoleCustomer)
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(users) == 0 {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "No users found")
	}

	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ordered := map[string]bool{}
	for _, o := range orders {
		ordered[o.UserID] = true
	}

	report := UserReport{TotalUsers: len(users)}
	for _, user := range users {
		if ordered[user.ID] {
			report.ActiveUsers = append(report.ActiveUsers, user)
			continue
		}
		report.InactiveUsers = append(report.InactiveUsers, user)
		// 注文ゼロのユーザーを新規とみなす
		report.NewUsers = append(report.NewUsers, user)
	}

	return Envelope{
		Message: "Users fetched successfully",
		Data:    report,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}
