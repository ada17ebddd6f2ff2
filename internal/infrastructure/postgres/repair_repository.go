package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/internal/domain/repository"
)

var _ repository.RepairRepository = (*RepairRepo)(nil)

const repairColumns = `id, phone_id, customer_id, issue, description, status,
	priority, estimated_cost, final_cost, estimated_duration, actual_duration,
	start_date, estimated_completion_date, completion_date, technician_notes,
	client_notes, created_at, updated_at`

// RepairRepo implementación del puerto RepairRepository sobre PostgreSQL.
type RepairRepo struct {
	pool *pgxpool.Pool
}

// NewRepairRepository construye el adaptador de persistencia para reparaciones.
func NewRepairRepository(pool *pgxpool.Pool) *RepairRepo {
	return &RepairRepo{pool: pool}
}

// Create persiste una nueva orden de reparación.
func (r *RepairRepo) Create(repair *entity.Repair) error {
	query := `
		INSERT INTO repairs (` + repairColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.pool.Exec(context.Background(), query,
		repair.ID, repair.PhoneID, repair.CustomerID, repair.Issue,
		repair.Description, string(repair.Status), string(repair.Priority),
		repair.EstimatedCost, repair.FinalCost, repair.EstimatedDuration,
		repair.ActualDuration, repair.StartDate, repair.EstimatedCompletionDate,
		repair.CompletionDate, repair.TechnicianNotes, repair.ClientNotes,
		repair.CreatedAt, repair.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert repair: %w", err)
	}
	return nil
}

// GetByID obtiene una reparación por ID, sin relaciones.
func (r *RepairRepo) GetByID(id string) (*entity.Repair, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+repairColumns+` FROM repairs WHERE id = $1`, id)
	rep, err := scanRepair(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair: %w", err)
	}
	return rep, nil
}

// GetByIDWithRelations obtiene una reparación con su equipo y su cliente.
func (r *RepairRepo) GetByIDWithRelations(id string) (*entity.Repair, error) {
	repair, err := r.GetByID(id)
	if err != nil || repair == nil {
		return repair, err
	}
	if err := r.loadRelations(repair); err != nil {
		return nil, err
	}
	return repair, nil
}

// List devuelve una página de reparaciones con relaciones, más recientes
// primero.
func (r *RepairRepo) List(limit, offset int) ([]*entity.Repair, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+repairColumns+` FROM repairs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	defer rows.Close()

	repairs, err := collectRepairs(rows)
	if err != nil {
		return nil, err
	}
	return repairs, r.loadRelationsAll(repairs)
}

// ListAll devuelve todas las reparaciones con relaciones.
func (r *RepairRepo) ListAll() ([]*entity.Repair, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+repairColumns+` FROM repairs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	defer rows.Close()

	repairs, err := collectRepairs(rows)
	if err != nil {
		return nil, err
	}
	return repairs, r.loadRelationsAll(repairs)
}

// Count devuelve el total de reparaciones.
func (r *RepairRepo) Count() (int, error) {
	var total int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM repairs`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count repairs: %w", err)
	}
	return total, nil
}

// CountByStatus devuelve el total de reparaciones en un estado dado.
func (r *RepairRepo) CountByStatus(status entity.RepairStatus) (int, error) {
	var total int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM repairs WHERE status = $1`, string(status)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count repairs by status: %w", err)
	}
	return total, nil
}

// ListByPhone devuelve las reparaciones de un equipo.
func (r *RepairRepo) ListByPhone(phoneID string) ([]*entity.Repair, error) {
	return r.listWhere(`phone_id`, phoneID)
}

// ListByCustomer devuelve las reparaciones de un cliente.
func (r *RepairRepo) ListByCustomer(customerID string) ([]*entity.Repair, error) {
	return r.listWhere(`customer_id`, customerID)
}

// Update actualiza una reparación.
func (r *RepairRepo) Update(repair *entity.Repair) error {
	query := `
		UPDATE repairs
		SET issue = $2, description = $3, status = $4, priority = $5,
		    estimated_cost = $6, final_cost = $7, estimated_duration = $8,
		    actual_duration = $9, estimated_completion_date = $10,
		    completion_date = $11, technician_notes = $12, client_notes = $13,
		    updated_at = $14
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		repair.ID, repair.Issue, repair.Description, string(repair.Status),
		string(repair.Priority), repair.EstimatedCost, repair.FinalCost,
		repair.EstimatedDuration, repair.ActualDuration,
		repair.EstimatedCompletionDate, repair.CompletionDate,
		repair.TechnicianNotes, repair.ClientNotes, repair.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update repair: %w", err)
	}
	return nil
}

// Delete elimina una reparación por ID.
func (r *RepairRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM repairs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete repair: %w", err)
	}
	return nil
}

func (r *RepairRepo) listWhere(column, value string) ([]*entity.Repair, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+repairColumns+` FROM repairs WHERE `+column+` = $1 ORDER BY created_at DESC`,
		value)
	if err != nil {
		return nil, fmt.Errorf("list repairs by %s: %w", column, err)
	}
	defer rows.Close()

	repairs, err := collectRepairs(rows)
	if err != nil {
		return nil, err
	}
	return repairs, r.loadRelationsAll(repairs)
}

func (r *RepairRepo) loadRelationsAll(repairs []*entity.Repair) error {
	for _, rep := range repairs {
		if err := r.loadRelations(rep); err != nil {
			return err
		}
	}
	return nil
}

func (r *RepairRepo) loadRelations(repair *entity.Repair) error {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+phoneColumns+` FROM phones WHERE id = $1`, repair.PhoneID)
	phone, err := scanPhone(row)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("get phone of repair: %w", err)
	}
	repair.Phone = phone

	row = r.pool.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, repair.CustomerID)
	customer, err := scanCustomer(row)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("get customer of repair: %w", err)
	}
	repair.Customer = customer
	return nil
}

func scanRepair(row pgx.Row) (*entity.Repair, error) {
	var rep entity.Repair
	var status, priority string
	var finalCost *decimal.Decimal
	err := row.Scan(&rep.ID, &rep.PhoneID, &rep.CustomerID, &rep.Issue,
		&rep.Description, &status, &priority, &rep.EstimatedCost, &finalCost,
		&rep.EstimatedDuration, &rep.ActualDuration, &rep.StartDate,
		&rep.EstimatedCompletionDate, &rep.CompletionDate,
		&rep.TechnicianNotes, &rep.ClientNotes, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rep.Status = entity.RepairStatus(status)
	rep.Priority = entity.RepairPriority(priority)
	rep.FinalCost = finalCost
	return &rep, nil
}

func collectRepairs(rows pgx.Rows) ([]*entity.Repair, error) {
	var list []*entity.Repair
	for rows.Next() {
		rep, err := scanRepair(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rep)
	}
	return list, rows.Err()
}
