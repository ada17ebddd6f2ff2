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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, first_name, last_name, email, phone, address,
	document_type, document_number, is_active, notes, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.FirstName, customer.LastName, customer.Email,
		customer.Phone, customer.Address, string(customer.DocumentType),
		customer.DocumentNumber, customer.IsActive, customer.Notes,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflict("Customer already exists")
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID, sin relaciones.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.queryOne(`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetByIDWithRelations obtiene un cliente con sus equipos y las reparaciones
// de cada equipo.
func (r *CustomerRepo) GetByIDWithRelations(id string) (*entity.Customer, error) {
	customer, err := r.GetByID(id)
	if err != nil || customer == nil {
		return customer, err
	}
	phones, err := r.phonesOfCustomer(customer.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range phones {
		repairs, err := r.repairsOfPhone(p.ID)
		if err != nil {
			return nil, err
		}
		p.Repairs = repairs
	}
	customer.Phones = phones
	return customer, nil
}

// GetByEmail obtiene un cliente por email.
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	return r.queryOne(`SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
}

// GetByDocumentNumber obtiene un cliente por número de documento.
func (r *CustomerRepo) GetByDocumentNumber(documentNumber string) (*entity.Customer, error) {
	return r.queryOne(`SELECT `+customerColumns+` FROM customers WHERE document_number = $1`, documentNumber)
}

// List devuelve una página de clientes, más recientes primero.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// ListAll devuelve todos los clientes, más recientes primero.
func (r *CustomerRepo) ListAll() ([]*entity.Customer, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// Count devuelve el total de clientes.
func (r *CustomerRepo) Count() (int, error) {
	var total int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM customers`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6,
		    document_type = $7, document_number = $8, is_active = $9, notes = $10,
		    updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.FirstName, customer.LastName, customer.Email,
		customer.Phone, customer.Address, string(customer.DocumentType),
		customer.DocumentNumber, customer.IsActive, customer.Notes, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflict("Customer already exists")
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) queryOne(query string, arg any) (*entity.Customer, error) {
	row := r.pool.QueryRow(context.Background(), query, arg)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) phonesOfCustomer(customerID string) ([]*entity.Phone, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+phoneColumns+` FROM phones WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID)
	if err != nil {
		return nil, fmt.Errorf("list phones of customer: %w", err)
	}
	defer rows.Close()
	return collectPhones(rows)
}

func (r *CustomerRepo) repairsOfPhone(phoneID string) ([]*entity.Repair, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+repairColumns+` FROM repairs WHERE phone_id = $1 ORDER BY created_at DESC`,
		phoneID)
	if err != nil {
		return nil, fmt.Errorf("list repairs of phone: %w", err)
	}
	defer rows.Close()
	return collectRepairs(rows)
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var docType string
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.Address, &docType, &c.DocumentNumber, &c.IsActive, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.DocumentType = entity.DocumentType(docType)
	return &c, nil
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
