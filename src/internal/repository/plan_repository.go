package repository

import (
	"context"

	"invest-service/src/internal/entity"
	"invest-service/src/pkg/databases/mysql"
)

type PlanRepository struct {
	DB mysql.DBInterface
}

func NewPlanRepository(db mysql.DBInterface) *PlanRepository {
	return &PlanRepository{
		DB: db,
	}
}

func (r *PlanRepository) Create(ctx context.Context, plan *entity.Plan) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO plans
			(id, name, description, price, daily_profit_percentage, duration_days,
			 image_url, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = db.ExecContext(ctx, query,
		plan.ID, plan.Name, plan.Description, plan.Price, plan.DailyProfitPercentage,
		plan.DurationDays, plan.ImageURL, plan.IsActive, plan.CreatedAt,
	)
	return err
}

func (r *PlanRepository) Update(ctx context.Context, plan *entity.Plan) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE plans SET
			name = ?, description = ?, price = ?, daily_profit_percentage = ?,
			duration_days = ?, image_url = ?, is_active = ?, updated_at = NOW()
		WHERE id = ?
	`
	_, err = db.ExecContext(ctx, query,
		plan.Name, plan.Description, plan.Price, plan.DailyProfitPercentage,
		plan.DurationDays, plan.ImageURL, plan.IsActive, plan.ID,
	)
	return err
}

func (r *PlanRepository) FindByID(ctx context.Context, id string) (*entity.Plan, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var plan entity.Plan
	query := `SELECT * FROM plans WHERE id = ?`
	if err := db.GetContext(ctx, &plan, query, id); err != nil {
		return nil, err
	}

	return &plan, nil
}

func (r *PlanRepository) FindActive(ctx context.Context) ([]entity.Plan, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var plans []entity.Plan
	query := `SELECT * FROM plans WHERE is_active = 1 ORDER BY price ASC`
	if err := db.SelectContext(ctx, &plans, query); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *PlanRepository) FindAll(ctx context.Context) ([]entity.Plan, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var plans []entity.Plan
	query := `SELECT * FROM plans ORDER BY price ASC`
	if err := db.SelectContext(ctx, &plans, query); err != nil {
		return nil, err
	}

	return plans, nil
}
