package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdgomez/taller-api/internal/domain"
	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/internal/domain/repository"
)

var _ repository.PhoneRepository = (*PhoneRepo)(nil)

const phoneColumns = `id, customer_id, brand, model, imei, color, purchase_date,
	warranty_expiry, condition, is_active, notes, created_at, updated_at`

// PhoneRepo implementación del puerto PhoneRepository sobre PostgreSQL.
type PhoneRepo struct {
	pool *pgxpool.Pool
}

// NewPhoneRepository construye el adaptador de persistencia para equipos.
func NewPhoneRepository(pool *pgxpool.Pool) *PhoneRepo {
	return &PhoneRepo{pool: pool}
}

// Create persiste un nuevo equipo.
func (r *PhoneRepo) Create(phone *entity.Phone) error {
	query := `
		INSERT INTO phones (` + phoneColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		phone.ID, phone.CustomerID, phone.Brand, phone.Model, phone.IMEI,
		phone.Color, phone.PurchaseDate, phone.WarrantyExpiry,
		string(phone.Condition), phone.IsActive, phone.Notes,
		phone.CreatedAt, phone.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflict("IMEI already exists")
		}
		return fmt.Errorf("insert phone: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID, sin relaciones.
func (r *PhoneRepo) GetByID(id string) (*entity.Phone, error) {
	return r.queryOne(`SELECT `+phoneColumns+` FROM phones WHERE id = $1`, id)
}

// GetByIDWithRelations obtiene un equipo con su cliente y sus reparaciones.
func (r *PhoneRepo) GetByIDWithRelations(id string) (*entity.Phone, error) {
	phone, err := r.GetByID(id)
	if err != nil || phone == nil {
		return phone, err
	}
	if err := r.loadRelations(phone); err != nil {
		return nil, err
	}
	return phone, nil
}

// GetByIMEI obtiene un equipo por IMEI.
func (r *PhoneRepo) GetByIMEI(imei string) (*entity.Phone, error) {
	return r.queryOne(`SELECT `+phoneColumns+` FROM phones WHERE imei = $1`, imei)
}

// ListAll devuelve todos los equipos con su cliente, más recientes primero.
func (r *PhoneRepo) ListAll() ([]*entity.Phone, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+phoneColumns+` FROM phones ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list phones: %w", err)
	}
	defer rows.Close()

	phones, err := collectPhones(rows)
	if err != nil {
		return nil, err
	}
	for _, p := range phones {
		customer, err := r.customerOf(p.CustomerID)
		if err != nil {
			return nil, err
		}
		p.Customer = customer
	}
	return phones, nil
}

// ListByCustomer devuelve los equipos de un cliente con sus reparaciones.
func (r *PhoneRepo) ListByCustomer(customerID string) ([]*entity.Phone, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+phoneColumns+` FROM phones WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID)
	if err != nil {
		return nil, fmt.Errorf("list phones of customer: %w", err)
	}
	defer rows.Close()

	phones, err := collectPhones(rows)
	if err != nil {
		return nil, err
	}
	for _, p := range phones {
		repairs, err := r.repairsOf(p.ID)
		if err != nil {
			return nil, err
		}
		p.Repairs = repairs
	}
	return phones, nil
}

// Update actualiza un equipo. El IMEI no cambia después de crearlo.
func (r *PhoneRepo) Update(phone *entity.Phone) error {
	query := `
		UPDATE phones
		SET brand = $2, model = $3, color = $4, purchase_date = $5,
		    warranty_expiry = $6, condition = $7, is_active = $8, notes = $9,
		    updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		phone.ID, phone.Brand, phone.Model, phone.Color, phone.PurchaseDate,
		phone.WarrantyExpiry, string(phone.Condition), phone.IsActive,
		phone.Notes, phone.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update phone: %w", err)
	}
	return nil
}

// Delete elimina un equipo por ID.
func (r *PhoneRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM phones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete phone: %w", err)
	}
	return nil
}

func (r *PhoneRepo) queryOne(query string, arg any) (*entity.Phone, error) {
	row := r.pool.QueryRow(context.Background(), query, arg)
	p, err := scanPhone(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get phone: %w", err)
	}
	return p, nil
}

func (r *PhoneRepo) loadRelations(phone *entity.Phone) error {
	customer, err := r.customerOf(phone.CustomerID)
	if err != nil {
		return err
	}
	phone.Customer = customer

	repairs, err := r.repairsOf(phone.ID)
	if err != nil {
		return err
	}
	phone.Repairs = repairs
	return nil
}

func (r *PhoneRepo) customerOf(customerID string) (*entity.Customer, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, customerID)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer of phone: %w", err)
	}
	return c, nil
}

func (r *PhoneRepo) repairsOf(phoneID string) ([]*entity.Repair, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+repairColumns+` FROM repairs WHERE phone_id = $1 ORDER BY created_at DESC`,
		phoneID)
	if err != nil {
		return nil, fmt.Errorf("list repairs of phone: %w", err)
	}
	defer rows.Close()
	return collectRepairs(rows)
}

func scanPhone(row pgx.Row) (*entity.Phone, error) {
	var p entity.Phone
	var condition string
	err := row.Scan(&p.ID, &p.CustomerID, &p.Brand, &p.Model, &p.IMEI, &p.Color,
		&p.PurchaseDate, &p.WarrantyExpiry, &condition, &p.IsActive, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Condition = entity.PhoneCondition(condition)
	return &p, nil
}

func collectPhones(rows pgx.Rows) ([]*entity.Phone, error) {
	var list []*entity.Phone
	for rows.Next() {
		p, err := scanPhone(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
