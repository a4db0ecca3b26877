package model

type DepositApprovedEvent struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	UTRNumber string  `json:"utr_number"`
}

func (e *DepositApprovedEvent) GetId() string {
	return e.ID
}

type WithdrawalStatusEvent struct {
	ID     string  `json:"id"`
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

func (e *WithdrawalStatusEvent) GetId() string {
	return e.ID
}

type CommissionEarnedEvent struct {
	ID           string  `json:"id"`
	ReferrerID   string  `json:"referrer_id"`
	ReferredID   string  `json:"referred_id"`
	Level        int     `json:"level"`
	Amount       float64 `json:"amount"`
	InvestmentID string  `json:"investment_id"`
}

func (e *CommissionEarnedEvent) GetId() string {
	return e.ID
}
