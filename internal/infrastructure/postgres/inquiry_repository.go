package postgres

import (
	"context"
	"fmt"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

// InquiryRepo implements the InquiryRepository port on PostgreSQL.
type InquiryRepo struct {
	q Querier
}

// NewInquiryRepository builds the inquiry adapter. Pass a pool or tx (Querier).
func NewInquiryRepository(q Querier) *InquiryRepo {
	return &InquiryRepo{q: q}
}

// Create persists a new inquiry.
func (r *InquiryRepo) Create(ctx context.Context, inq *entity.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, consumer_id, distributor_id, material_id, quantity, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`
	var qty any
	if inq.Quantity.Valid {
		qty = inq.Quantity.Decimal
	}
	_, err := r.q.Exec(ctx, query,
		inq.ID, inq.ConsumerID, inq.DistributorID, inq.MaterialID, qty, inq.Message, inq.Status, inq.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// ListReceived returns inquiries addressed to the distributor joined with the
// consumer's profile, newest first.
func (r *InquiryRepo) ListReceived(ctx context.Context, distributorID string) ([]repository.InquiryDetail, error) {
	query := `
		SELECT ` + inquiryDetailColumns + `
		FROM inquiries inq
		JOIN users u ON u.id = inq.consumer_id
		JOIN materials m ON m.id = inq.material_id
		WHERE inq.distributor_id = $1
		ORDER BY inq.created_at DESC`
	return r.list(ctx, query, distributorID)
}

// ListSent returns inquiries created by the consumer joined with the
// distributor's profile, newest first.
func (r *InquiryRepo) ListSent(ctx context.Context, consumerID string) ([]repository.InquiryDetail, error) {
	query := `
		SELECT ` + inquiryDetailColumns + `
		FROM inquiries inq
		JOIN users u ON u.id = inq.distributor_id
		JOIN materials m ON m.id = inq.material_id
		WHERE inq.consumer_id = $1
		ORDER BY inq.created_at DESC`
	return r.list(ctx, query, consumerID)
}

const inquiryDetailColumns = `
	inq.id, inq.consumer_id, inq.distributor_id, inq.material_id, inq.quantity,
	COALESCE(inq.message, ''), inq.status, inq.created_at,
	u.name, u.email, COALESCE(u.phone, ''), COALESCE(u.address, ''),
	m.name, m.category, m.manufacturer, m.unit`

func (r *InquiryRepo) list(ctx context.Context, query, userID string) ([]repository.InquiryDetail, error) {
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var list []repository.InquiryDetail
	for rows.Next() {
		var it repository.InquiryDetail
		if err := rows.Scan(
			&it.ID, &it.ConsumerID, &it.DistributorID, &it.MaterialID, &it.Quantity,
			&it.Message, &it.Status, &it.CreatedAt,
			&it.CounterpartyName, &it.CounterpartyEmail, &it.CounterpartyPhone, &it.CounterpartyAddress,
			&it.MaterialName, &it.Category, &it.Manufacturer, &it.Unit,
		); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// UpdateStatus changes status only when the row is addressed to the given
// distributor, so a wrong owner affects zero rows and never mutates data.
func (r *InquiryRepo) UpdateStatus(ctx context.Context, id, distributorID, status string) (int64, error) {
	query := `UPDATE inquiries SET status = $3 WHERE id = $1 AND distributor_id = $2`
	tag, err := r.q.Exec(ctx, query, id, distributorID, status)
	if err != nil {
		return 0, fmt.Errorf("update inquiry status: %w", err)
	}
	return tag.RowsAffected(), nil
}
