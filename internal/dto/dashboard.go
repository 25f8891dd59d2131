package dto

// Dashboard Request DTOs

// UpdateViewRequest switches the active dashboard view.
type UpdateViewRequest struct {
	View string `json:"view" validate:"required,oneof=alerts customers overview"`
}

// Dashboard Response DTOs

// DashboardStats is the stats row rendered above the feed.
type DashboardStats struct {
	TotalAlerts      int            `json:"total_alerts"`
	Unacknowledged   int            `json:"unacknowledged"`
	ByClassification map[string]int `json:"by_classification"`
	TotalCustomers   int64          `json:"total_customers"`
	HNWCustomers     int64          `json:"hnw_customers"`
}

// DashboardViewResponse reports the active view.
type DashboardViewResponse struct {
	View string `json:"view"`
}
