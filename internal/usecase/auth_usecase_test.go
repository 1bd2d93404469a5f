package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newMockEmployeeRepo(employees ...*entity.Employee) *mockEmployeeRepo {
	m := &mockEmployeeRepo{employees: make(map[string]*entity.Employee)}
	for _, e := range employees {
		m.employees[e.Username] = e
	}
	return m
}

func (m *mockEmployeeRepo) Create(_ *gorm.DB, employee *entity.Employee) error {
	m.employees[employee.Username] = employee
	return nil
}

func (m *mockEmployeeRepo) FindAll(_ *gorm.DB) ([]entity.Employee, error) {
	var result []entity.Employee
	for _, e := range m.employees {
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEmployeeRepo) FindByID(_ *gorm.DB, id int) (*entity.Employee, error) {
	for _, e := range m.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockEmployeeRepo) FindByUsername(_ *gorm.DB, username string) (*entity.Employee, error) {
	return m.employees[username], nil
}

func (m *mockEmployeeRepo) Update(_ *gorm.DB, employee *entity.Employee) error {
	m.employees[employee.Username] = employee
	return nil
}

func (m *mockEmployeeRepo) Delete(_ *gorm.DB, id int) (int64, error) {
	for username, e := range m.employees {
		if e.ID == id {
			delete(m.employees, username)
			return 1, nil
		}
	}
	return 0, nil
}

func testEmployee(t *testing.T, username, password string) *entity.Employee {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return &entity.Employee{
		ID:       1,
		Name:     "John Doe",
		Username: username,
		Password: string(hashed),
	}
}

// Login must fail identically for an unknown username and a wrong password,
// so the response does not leak which usernames exist.
func TestLoginUniformFailure(t *testing.T) {
	employee := testEmployee(t, "johndoe", "password123")
	u := &authUsecase{
		log:          testLogger(),
		employeeRepo: newMockEmployeeRepo(employee),
	}

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"unknown username", dto.LoginRequest{Username: "nosuchuser", Password: "password123"}},
		{"wrong password", dto.LoginRequest{Username: "johndoe", Password: "wrongpass"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := u.Login(context.Background(), &tc.req)
			if tokens != nil {
				t.Fatal("expected no tokens on failed login")
			}
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}
