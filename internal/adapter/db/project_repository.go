package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"marceneiro/internal/core/domain"
	"marceneiro/internal/core/ports"
)

const projectColumns = `id, name, client, start_date, expected_delivery, responsible, notes, status, created_at, updated_at`

type ProjectRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type projectRow struct {
	ID               uint64         `db:"id"`
	Name             string         `db:"name"`
	Client           string         `db:"client"`
	StartDate        string         `db:"start_date"`
	ExpectedDelivery string         `db:"expected_delivery"`
	Responsible      string         `db:"responsible"`
	Notes            sql.NullString `db:"notes"`
	Status           string         `db:"status"`
	CreatedAt        string         `db:"created_at"`
	UpdatedAt        string         `db:"updated_at"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db, now: time.Now}
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+projectColumns+` FROM obras ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("list obras: %w", err)
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		project, err := mapProjectRowToDomainProject(row)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id uint64) (domain.Project, error) {
	return r.get(ctx, r.db, id)
}

func (r *ProjectRepository) get(ctx context.Context, q sqlx.QueryerContext, id uint64) (domain.Project, error) {
	var row projectRow
	err := sqlx.GetContext(ctx, q, &row, `SELECT `+projectColumns+` FROM obras WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("get obra: %w", err)
	}
	return mapProjectRowToDomainProject(row)
}

// Add assigns max(id)+1 inside a transaction so the id and the row land together.
func (r *ProjectRepository) Add(ctx context.Context, draft domain.ProjectDraft) (domain.Project, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Project{}, fmt.Errorf("begin add obra: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next struct {
		ID  uint64 `db:"id"`
		Seq uint64 `db:"seq"`
	}
	if err := tx.GetContext(ctx, &next, `SELECT COALESCE(MAX(id), 0) + 1 AS id, COALESCE(MAX(seq), 0) + 1 AS seq FROM obras`); err != nil {
		return domain.Project{}, fmt.Errorf("next obra id: %w", err)
	}

	now := formatTimestamp(r.now())
	_, err = tx.ExecContext(ctx,
		`INSERT INTO obras (id, seq, name, client, start_date, expected_delivery, responsible, notes, status, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		next.ID, next.Seq, draft.Name, draft.Client,
		formatDate(draft.StartDate), formatDate(draft.ExpectedDelivery),
		draft.Responsible, nullString(draft.Notes), string(draft.InitialStatus()), now, now,
	)
	if err != nil {
		return domain.Project{}, fmt.Errorf("insert obra: %w", err)
	}

	project, err := r.get(ctx, tx, next.ID)
	if err != nil {
		return domain.Project{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Project{}, fmt.Errorf("commit add obra: %w", err)
	}
	return project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM obras WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete obra: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// CycleStatus reads the status and writes its successor in one transaction,
// so concurrent cycles each move the obra exactly one step.
func (r *ProjectRepository) CycleStatus(ctx context.Context, id uint64) (domain.Project, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Project{}, fmt.Errorf("begin cycle obra status: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := r.get(ctx, tx, id)
	if err != nil {
		return domain.Project{}, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE obras SET status = ?, updated_at = ? WHERE id = ?`,
		string(current.Status.Next()), formatTimestamp(r.now()), id,
	)
	if err != nil {
		return domain.Project{}, fmt.Errorf("update obra status: %w", err)
	}

	project, err := r.get(ctx, tx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Project{}, fmt.Errorf("commit cycle obra status: %w", err)
	}
	return project, nil
}

func (r *ProjectRepository) Insert(ctx context.Context, project domain.Project) error {
	if _, err := r.Get(ctx, project.ID); err == nil {
		return fmt.Errorf("obra %d: %w", project.ID, domain.ErrDuplicateID)
	}

	createdAt := project.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}
	updatedAt := project.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO obras (id, seq, name, client, start_date, expected_delivery, responsible, notes, status, created_at, updated_at)
         VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM obras), ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		project.ID, project.Name, project.Client,
		formatDate(project.StartDate), formatDate(project.ExpectedDelivery),
		project.Responsible, nullString(project.Notes), string(project.Status),
		formatTimestamp(createdAt), formatTimestamp(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert obra %d: %w", project.ID, err)
	}
	return nil
}

func (r *ProjectRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func mapProjectRowToDomainProject(row projectRow) (domain.Project, error) {
	project := domain.Project{
		ID:          row.ID,
		Name:        row.Name,
		Client:      row.Client,
		Responsible: row.Responsible,
		Status:      domain.Status(row.Status),
	}

	var err error
	if project.StartDate, err = parseDate(row.StartDate); err != nil {
		return domain.Project{}, err
	}
	if project.ExpectedDelivery, err = parseDate(row.ExpectedDelivery); err != nil {
		return domain.Project{}, err
	}
	if project.CreatedAt, err = parseTimestamp(row.CreatedAt); err != nil {
		return domain.Project{}, err
	}
	if project.UpdatedAt, err = parseTimestamp(row.UpdatedAt); err != nil {
		return domain.Project{}, err
	}

	if row.Notes.Valid {
		value := row.Notes.String
		project.Notes = &value
	}
	return project, nil
}
