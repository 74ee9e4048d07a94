package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

// Repository keeps the download queue of dashboard users.
type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) Enqueue(ctx context.Context, job entity.DownloadJob) error {
	txs, err := marshalTransactions(job.Transactions)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, insertDownloadJob,
		job.ID,
		job.Owner,
		job.Name,
		job.Status,
		txs,
		job.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// List returns the jobs of owner, newest first.
func (r *Repository) List(ctx context.Context, owner string) ([]entity.DownloadJob, error) {
	sql, args, err := sq.Select(downloadJobColumns...).
		From(downloadJobsTable).
		Where(sq.Eq{"owner": owner}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]entity.DownloadJob, 0)

	for rows.Next() {
		j, err := scanDownloadJob(rows)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

// Queued returns up to limit queued jobs, oldest first.
func (r *Repository) Queued(ctx context.Context, limit uint64) ([]entity.DownloadJob, error) {
	sql, args, err := sq.Select(downloadJobColumns...).
		From(downloadJobsTable).
		Where(sq.Eq{"status": entity.JobStatusQueued}).
		OrderBy("created_at").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]entity.DownloadJob, 0)

	for rows.Next() {
		j, err := scanDownloadJob(rows)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

// Complete moves a queued job to status and stores its file.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID, status entity.JobStatus, file []byte) error {
	sql, args, err := sq.Update(downloadJobsTable).
		Set("status", status).
		Set("file", file).
		Where(sq.Eq{"id": id, "status": entity.JobStatusQueued}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) File(ctx context.Context, owner string, id uuid.UUID) (entity.DownloadFile, error) {
	sql, args, err := sq.Select("name", "status", "file").
		From(downloadJobsTable).
		Where(sq.Eq{"owner": owner, "id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.DownloadFile{}, err
	}

	var f entity.DownloadFile

	err = r.db.QueryRow(ctx, sql, args...).Scan(&f.Name, &f.Status, &f.Content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DownloadFile{}, entity.ErrNotFound
		}

		return entity.DownloadFile{}, err
	}

	return f, nil
}

func (r *Repository) Remove(ctx context.Context, owner string, id uuid.UUID) error {
	n, err := r.delete(ctx, sq.Eq{"owner": owner, "id": id})
	if err != nil {
		return err
	}

	if n == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Clear(ctx context.Context, owner string) error {
	_, err := r.delete(ctx, sq.Eq{"owner": owner})
	return err
}

// ClearCompleted removes every job of owner that is no longer queued.
func (r *Repository) ClearCompleted(ctx context.Context, owner string) error {
	_, err := r.delete(ctx, sq.And{
		sq.Eq{"owner": owner},
		sq.NotEq{"status": entity.JobStatusQueued},
	})

	return err
}

func (r *Repository) DeleteOlderThan(ctx context.Context, t time.Time) (int64, error) {
	return r.delete(ctx, sq.Lt{"created_at": t})
}

func (r *Repository) delete(ctx context.Context, where sq.Sqlizer) (int64, error) {
	sql, args, err := sq.Delete(downloadJobsTable).
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func scanDownloadJob(row pgx.Row) (j entity.DownloadJob, err error) {
	var txs []byte

	err = row.Scan(
		&j.ID,
		&j.Owner,
		&j.Name,
		&j.Status,
		&txs,
		&j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DownloadJob{}, entity.ErrNotFound
		}

		return entity.DownloadJob{}, err
	}

	j.Transactions, err = unmarshalTransactions(txs)
	if err != nil {
		return entity.DownloadJob{}, err
	}

	return j, nil
}

type transactionRow struct {
	TransactionID     string          `json:"transaction_id"`
	ReferenceID       string          `json:"reference_id"`
	InstapayReference string          `json:"instapay_reference,omitempty"`
	MerchantID        string          `json:"merchant_id,omitempty"`
	Type              string          `json:"type"`
	Status            string          `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	Fees              decimal.Decimal `json:"fees"`
	Error             string          `json:"error,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
}

func marshalTransactions(txs []entity.Transaction) ([]byte, error) {
	rows := make([]transactionRow, 0, len(txs))

	for _, tx := range txs {
		rows = append(rows, transactionRow{
			TransactionID:     tx.TransactionID,
			ReferenceID:       tx.ReferenceID,
			InstapayReference: tx.InstapayReference,
			MerchantID:        tx.MerchantID,
			Type:              string(tx.Type),
			Status:            string(tx.Status),
			Amount:            tx.Amount,
			Fees:              tx.Fees,
			Error:             tx.Error,
			CreatedAt:         tx.CreatedAt,
			PaidAt:            tx.PaidAt,
		})
	}

	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal transactions: %w", err)
	}

	return b, nil
}

func unmarshalTransactions(b []byte) ([]entity.Transaction, error) {
	var rows []transactionRow

	err := json.Unmarshal(b, &rows)
	if err != nil {
		return nil, fmt.Errorf("unmarshal transactions: %w", err)
	}

	txs := make([]entity.Transaction, 0, len(rows))

	for _, r := range rows {
		txs = append(txs, entity.Transaction{
			TransactionID:     r.TransactionID,
			ReferenceID:       r.ReferenceID,
			InstapayReference: r.InstapayReference,
			MerchantID:        r.MerchantID,
			Type:              entity.TransactionType(r.Type),
			Status:            entity.TransactionStatus(r.Status),
			Amount:            r.Amount,
			Fees:              r.Fees,
			Error:             r.Error,
			CreatedAt:         r.CreatedAt,
			PaidAt:            r.PaidAt,
		})
	}

	return txs, nil
}
