package repository

import (
	"context"

	"invest-service/src/internal/entity"
	"invest-service/src/pkg/databases/mysql"
)

type UserRepository struct {
	DB mysql.DBInterface
}

func NewUserRepository(db mysql.DBInterface) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users
			(user_id, name, mobile_number, username, password_hash, referral_code,
			 referred_by, balance, earnings, withdrawal_wallet, is_admin, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.ExecContext(ctx, query,
		user.UserID, user.Name, user.MobileNumber, user.Username, user.PasswordHash,
		user.ReferralCode, user.ReferredBy, user.Balance, user.Earnings,
		user.WithdrawalWallet, user.IsAdmin, user.IsActive, user.CreatedAt,
	)
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `SELECT * FROM users WHERE user_id = ?`
	if err := db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `SELECT * FROM users WHERE mobile_number = ? OR username = ?`
	if err := db.GetContext(ctx, &user, query, identifier, identifier); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) FindByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `SELECT * FROM users WHERE referral_code = ?`
	if err := db.GetContext(ctx, &user, query, code); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) ExistsByMobileOrUsername(ctx context.Context, mobileNumber, username string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int
	query := `SELECT COUNT(1) FROM users WHERE mobile_number = ? OR username = ?`
	if err := db.GetContext(ctx, &count, query, mobileNumber, username); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *UserRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int
	query := `SELECT COUNT(1) FROM users WHERE referral_code = ?`
	if err := db.GetContext(ctx, &count, query, code); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *UserRepository) FindReferredBy(ctx context.Context, referralCode string) ([]entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var users []entity.User
	query := `SELECT * FROM users WHERE referred_by = ? ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &users, query, referralCode); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var users []entity.User
	query := `SELECT * FROM users ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int, int, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, 0, err
	}

	var counts struct {
		Active int `db:"active"`
		Total  int `db:"total"`
	}
	query := `SELECT COALESCE(SUM(is_active), 0) AS active, COUNT(1) AS total FROM users`
	if err := db.GetContext(ctx, &counts, query); err != nil {
		return 0, 0, err
	}

	return counts.Active, counts.Total, nil
}
