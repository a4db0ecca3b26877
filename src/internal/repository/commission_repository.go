package repository

import (
	"context"

	"invest-service/src/internal/entity"
	"invest-service/src/pkg/databases/mysql"
)

type CommissionRepository struct {
	DB mysql.DBInterface
}

func NewCommissionRepository(db mysql.DBInterface) *CommissionRepository {
	return &CommissionRepository{
		DB: db,
	}
}

func (r *CommissionRepository) FindByReferrerID(ctx context.Context, referrerID string) ([]entity.ReferralCommission, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var commissions []entity.ReferralCommission
	query := `SELECT * FROM referral_commissions WHERE referrer_id = ? ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &commissions, query, referrerID); err != nil {
		return nil, err
	}

	return commissions, nil
}
