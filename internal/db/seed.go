package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedEmployee struct {
	id                int
	firstName         string
	lastName          string
	birthDate         time.Time
	basicSalary       float64
	status            string
	position          string
	riceSubsidy       float64
	phoneAllowance    float64
	clothingAllowance float64
}

var seedEmployees = []seedEmployee{
	{10001, "Jose", "Crisostomo", time.Date(1994, 2, 14, 0, 0, 0, 0, time.UTC), 50000, "Regular", "Software Developer", 1500, 1000, 800},
	{10002, "Maria", "Santos", time.Date(1989, 7, 2, 0, 0, 0, 0, time.UTC), 35000, "Regular", "Payroll Clerk", 1500, 800, 500},
	{10003, "Andres", "Reyes", time.Date(1999, 11, 23, 0, 0, 0, 0, time.UTC), 18000, "Probationary", "Support Staff", 1500, 500, 500},
}

// Seed inserts sample employees once; reruns are no-ops.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, emp := range seedEmployees {
		if _, err := pool.Exec(ctx, `
      INSERT INTO employees (id, first_name, last_name, birth_date, basic_salary,
                             status, position, rice_subsidy, phone_allowance, clothing_allowance)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `, emp.id, emp.firstName, emp.lastName, emp.birthDate, emp.basicSalary,
			emp.status, emp.position, emp.riceSubsidy, emp.phoneAllowance, emp.clothingAllowance); err != nil {
			return err
		}
	}
	return nil
}
