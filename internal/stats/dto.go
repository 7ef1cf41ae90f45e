// AngelaMos | 2026
// dto.go

package stats

// AdminStatsResponse is the per-tenant dashboard payload. Order and
// revenue figures are zero until order tracking lands; they stay in the
// shape so dashboard consumers keep working.
type AdminStatsResponse struct {
	MenuItems    int     `json:"menuItems"`
	Categories   int     `json:"categories"`
	TotalOrders  int     `json:"totalOrders"`
	Revenue      float64 `json:"revenue"`
	ActiveOrders int     `json:"activeOrders"`
}

// SuperAdminStatsResponse is the cross-tenant payload. Subscriptions are
// reported as the admin count and billing figures are zero until the
// billing system exists.
type SuperAdminStatsResponse struct {
	TotalRestaurants    int     `json:"totalRestaurants"`
	TotalCustomers      int     `json:"totalCustomers"`
	ActiveSubscriptions int     `json:"activeSubscriptions"`
	MonthlyRevenue      float64 `json:"monthlyRevenue"`
	UnpaidRestaurants   int     `json:"unpaidRestaurants"`
}
