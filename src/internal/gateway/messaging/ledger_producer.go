package messaging

import (
	"invest-service/src/internal/model"
	kafka "invest-service/src/pkg/kafka/confluent"
	"invest-service/src/pkg/log"
)

// LedgerProducer publishes balance-affecting events. Publishing is best
// effort: callers log failures and never fail the originating request.
type LedgerProducer struct {
	DepositApprovedProducer  Producer[*model.DepositApprovedEvent]
	WithdrawalStatusProducer Producer[*model.WithdrawalStatusEvent]
	CommissionProducer       Producer[*model.CommissionEarnedEvent]
}

func NewLedgerProducer(producer kafka.Producer, log log.Log) *LedgerProducer {
	return &LedgerProducer{
		DepositApprovedProducer: Producer[*model.DepositApprovedEvent]{
			Producer: producer,
			Topic:    "deposit-approved",
			Log:      log,
		},
		WithdrawalStatusProducer: Producer[*model.WithdrawalStatusEvent]{
			Producer: producer,
			Topic:    "withdrawal-status-changed",
			Log:      log,
		},
		CommissionProducer: Producer[*model.CommissionEarnedEvent]{
			Producer: producer,
			Topic:    "commission-earned",
			Log:      log,
		},
	}
}

func (p *LedgerProducer) SendDepositApproved(event *model.DepositApprovedEvent) error {
	return p.DepositApprovedProducer.Send(event)
}

func (p *LedgerProducer) SendWithdrawalStatus(event *model.WithdrawalStatusEvent) error {
	return p.WithdrawalStatusProducer.Send(event)
}

func (p *LedgerProducer) SendCommissionEarned(event *model.CommissionEarnedEvent) error {
	return p.CommissionProducer.Send(event)
}
