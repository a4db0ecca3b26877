package model

type DashboardResponse struct {
	TotalDeposits    float64 `json:"total_deposits"`
	TotalWithdrawals float64 `json:"total_withdrawals"`
	ActiveUsers      int     `json:"active_users"`
	TotalUsers       int     `json:"total_users"`
}
