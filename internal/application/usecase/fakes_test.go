package usecase_test

import (
	"github.com/jdgomez/taller-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Mantienen el orden de
// inserción invertido (más recientes primero) como los repositorios reales.

// ── users ────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users = append([]*entity.User{u}, r.users...)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	return r.users, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			r.users[i] = u
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── customers ────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers []*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.customers = append([]*entity.Customer{c}, r.customers...)
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByIDWithRelations(id string) (*entity.Customer, error) {
	return r.GetByID(id)
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByDocumentNumber(documentNumber string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.DocumentNumber == documentNumber {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	if offset >= len(r.customers) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.customers) {
		end = len(r.customers)
	}
	return r.customers[offset:end], nil
}

func (r *fakeCustomerRepo) ListAll() ([]*entity.Customer, error) {
	return r.customers, nil
}

func (r *fakeCustomerRepo) Count() (int, error) {
	return len(r.customers), nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	for i, existing := range r.customers {
		if existing.ID == c.ID {
			r.customers[i] = c
		}
	}
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── phones ───────────────────────────────────────────────────────────────────

type fakePhoneRepo struct {
	phones []*entity.Phone
}

func (r *fakePhoneRepo) Create(p *entity.Phone) error {
	r.phones = append([]*entity.Phone{p}, r.phones...)
	return nil
}

func (r *fakePhoneRepo) GetByID(id string) (*entity.Phone, error) {
	for _, p := range r.phones {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePhoneRepo) GetByIDWithRelations(id string) (*entity.Phone, error) {
	return r.GetByID(id)
}

func (r *fakePhoneRepo) GetByIMEI(imei string) (*entity.Phone, error) {
	for _, p := range r.phones {
		if p.IMEI == imei {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePhoneRepo) ListAll() ([]*entity.Phone, error) {
	return r.phones, nil
}

func (r *fakePhoneRepo) ListByCustomer(customerID string) ([]*entity.Phone, error) {
	var out []*entity.Phone
	for _, p := range r.phones {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePhoneRepo) Update(p *entity.Phone) error {
	for i, existing := range r.phones {
		if existing.ID == p.ID {
			r.phones[i] = p
		}
	}
	return nil
}

func (r *fakePhoneRepo) Delete(id string) error {
	for i, p := range r.phones {
		if p.ID == id {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── repairs ──────────────────────────────────────────────────────────────────

type fakeRepairRepo struct {
	repairs []*entity.Repair
}

func (r *fakeRepairRepo) Create(rep *entity.Repair) error {
	r.repairs = append([]*entity.Repair{rep}, r.repairs...)
	return nil
}

func (r *fakeRepairRepo) GetByID(id string) (*entity.Repair, error) {
	for _, rep := range r.repairs {
		if rep.ID == id {
			return rep, nil
		}
	}
	return nil, nil
}

func (r *fakeRepairRepo) GetByIDWithRelations(id string) (*entity.Repair, error) {
	return r.GetByID(id)
}

func (r *fakeRepairRepo) List(limit, offset int) ([]*entity.Repair, error) {
	if offset >= len(r.repairs) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.repairs) {
		end = len(r.repairs)
	}
	return r.repairs[offset:end], nil
}

func (r *fakeRepairRepo) ListAll() ([]*entity.Repair, error) {
	return r.repairs, nil
}

func (r *fakeRepairRepo) Count() (int, error) {
	return len(r.repairs), nil
}

func (r *fakeRepairRepo) CountByStatus(status entity.RepairStatus) (int, error) {
	n := 0
	for _, rep := range r.repairs {
		if rep.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepairRepo) ListByPhone(phoneID string) ([]*entity.Repair, error) {
	var out []*entity.Repair
	for _, rep := range r.repairs {
		if rep.PhoneID == phoneID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *fakeRepairRepo) ListByCustomer(customerID string) ([]*entity.Repair, error) {
	var out []*entity.Repair
	for _, rep := range r.repairs {
		if rep.CustomerID == customerID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *fakeRepairRepo) Update(rep *entity.Repair) error {
	for i, existing := range r.repairs {
		if existing.ID == rep.ID {
			r.repairs[i] = rep
		}
	}
	return nil
}

func (r *fakeRepairRepo) Delete(id string) error {
	for i, rep := range r.repairs {
		if rep.ID == id {
			r.repairs = append(r.repairs[:i], r.repairs[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── colaboradores ────────────────────────────────────────────────────────────

type fakeMailer struct {
	sent []sentMail
}

type sentMail struct {
	to, subject, body string
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

type fakePDFGenerator struct {
	generated int
}

func (g *fakePDFGenerator) Generate(repair *entity.Repair) ([]byte, error) {
	g.generated++
	return []byte("%PDF-1.7 fake"), nil
}
