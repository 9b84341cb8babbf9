package employee

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// FindByID returns (nil, nil) when no employee matches.
func (s *Store) FindByID(ctx context.Context, employeeID int) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, first_name, last_name, birth_date, basic_salary,
           COALESCE(status, ''), COALESCE(position, ''),
           rice_subsidy, phone_allowance, clothing_allowance
    FROM employees
    WHERE id = $1
  `, employeeID)

	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return emp, err
}

func (s *Store) List(ctx context.Context) ([]*Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, first_name, last_name, birth_date, basic_salary,
           COALESCE(status, ''), COALESCE(position, ''),
           rice_subsidy, phone_allowance, clothing_allowance
    FROM employees
    ORDER BY last_name, first_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) Create(ctx context.Context, emp *Employee) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees (id, first_name, last_name, birth_date, basic_salary,
                           status, position, rice_subsidy, phone_allowance, clothing_allowance)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
  `, emp.ID(), emp.FirstName(), emp.LastName(), emp.BirthDate(), emp.BasicSalary(),
		emp.Status(), emp.Position(), emp.RiceSubsidy(), emp.PhoneAllowance(), emp.ClothingAllowance())
	return err
}

// scanEmployee rehydrates a row through the validating setters so a corrupt
// row surfaces as an error instead of an invalid entity.
func scanEmployee(row pgx.Row) (*Employee, error) {
	var id int
	var firstName, lastName, status, position string
	var birthDate *time.Time
	var basicSalary, rice, phoneAllowance, clothing float64
	if err := row.Scan(&id, &firstName, &lastName, &birthDate, &basicSalary,
		&status, &position, &rice, &phoneAllowance, &clothing); err != nil {
		return nil, err
	}

	emp := New()
	if err := emp.SetID(id); err != nil {
		return nil, err
	}
	if err := emp.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := emp.SetLastName(lastName); err != nil {
		return nil, err
	}
	emp.SetBirthDate(birthDate)
	if err := emp.SetBasicSalary(basicSalary); err != nil {
		return nil, err
	}
	emp.SetStatus(status)
	emp.SetPosition(position)
	if err := emp.SetRiceSubsidy(rice); err != nil {
		return nil, err
	}
	if err := emp.SetPhoneAllowance(phoneAllowance); err != nil {
		return nil, err
	}
	if err := emp.SetClothingAllowance(clothing); err != nil {
		return nil, err
	}
	return emp, nil
}
