package models

// DashboardStats is the aggregate shown on the admin dashboard. The four
// counts are independent queries with no cross-count transaction.
type DashboardStats struct {
	ProjectCount       int64 `json:"projectCount"`
	BlogPostCount      int64 `json:"blogPostCount"`
	VideoCount         int64 `json:"videoCount"`
	UnreadContactCount int64 `json:"unreadContactCount"`
}
