package repository

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/PhiHoang41/lumina-backend/internal/models"
)

// CouponRepository handles data access for coupons.
type CouponRepository struct {
	db *sqlx.DB
}

// NewCouponRepository creates a new CouponRepository.
func NewCouponRepository(db *sqlx.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

// CouponFilter holds the recognized coupon listing filters.
type CouponFilter struct {
	Status string
	Type   string
	Search string
	Page   int
	Limit  int
}

// GetByID returns a single coupon by id.
func (r *CouponRepository) GetByID(id string) (*models.Coupon, error) {
	var c models.Coupon
	if err := r.db.Get(&c, `SELECT * FROM coupons WHERE id = $1 LIMIT 1`, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// ExistsByCode reports whether another coupon already uses the code.
func (r *CouponRepository) ExistsByCode(code, excludeID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COUNT(1) FROM coupons
		WHERE code = $1 AND ($2 = '' OR id::text != $2)`, code, excludeID)
	return n > 0, err
}

// List returns coupons matching the filter, newest first, with the total
// count over the same predicate.
func (r *CouponRepository) List(f *CouponFilter) ([]models.Coupon, int, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 10
	}
	offset := (f.Page - 1) * f.Limit

	conds := []string{}
	args := []interface{}{}
	argIdx := 1

	if f.Status != "" {
		conds = append(conds, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, f.Status)
		argIdx++
	}
	if f.Type != "" {
		conds = append(conds, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, f.Type)
		argIdx++
	}
	if f.Search != "" {
		conds = append(conds, fmt.Sprintf("(code ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+f.Search+"%")
		argIdx++
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM coupons `+where, args...); err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf(`SELECT * FROM coupons %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, argIdx, argIdx+1)
	args = append(args, f.Limit, offset)

	coupons := []models.Coupon{}
	if err := r.db.Select(&coupons, listQuery, args...); err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

// Create inserts a new coupon.
func (r *CouponRepository) Create(c *models.Coupon) error {
	const q = `
		INSERT INTO coupons (id, code, description, type, value, min_order_amount,
			max_discount_amount, usage_limit, used_count, valid_from, valid_to, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	return r.db.QueryRowx(q,
		c.ID, c.Code, c.Description, c.Type, c.Value, c.MinOrderAmount,
		c.MaxDiscountAmount, c.UsageLimit, c.UsedCount, c.ValidFrom, c.ValidTo, c.Status,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// Update persists all mutable fields of an existing coupon.
func (r *CouponRepository) Update(c *models.Coupon) error {
	const q = `
		UPDATE coupons
		SET code = $2, description = $3, type = $4, value = $5, min_order_amount = $6,
		    max_discount_amount = $7, usage_limit = $8, used_count = $9,
		    valid_from = $10, valid_to = $11, status = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowx(q,
		c.ID, c.Code, c.Description, c.Type, c.Value, c.MinOrderAmount,
		c.MaxDiscountAmount, c.UsageLimit, c.UsedCount, c.ValidFrom, c.ValidTo, c.Status,
	).Scan(&c.UpdatedAt)
}

// UpdateStatus sets only the status of a coupon.
func (r *CouponRepository) UpdateStatus(id string, status models.CouponStatus) error {
	_, err := r.db.Exec(`UPDATE coupons SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	return err
}

// Delete removes a coupon by id.
func (r *CouponRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM coupons WHERE id = $1`, id)
	return err
}
