package attendance

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// FindByEmployeeAndPeriod returns all records for the employee whose date
// falls within [start, end], possibly none. Ordering is not significant to
// callers; dates are returned ascending for readability.
func (s *Store) FindByEmployeeAndPeriod(ctx context.Context, employeeID int, start, end time.Time) ([]*Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, log_date, log_in, log_out
    FROM attendance_logs
    WHERE employee_id = $1 AND log_date >= $2 AND log_date <= $3
    ORDER BY log_date
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var id int
		var date time.Time
		var logIn, logOut *time.Time
		if err := rows.Scan(&id, &date, &logIn, &logOut); err != nil {
			return nil, err
		}

		record := NewRecord()
		if err := record.SetEmployeeID(id); err != nil {
			return nil, err
		}
		if err := record.SetDate(date); err != nil {
			return nil, err
		}
		record.SetLogIn(logIn)
		record.SetLogOut(logOut)
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) Log(ctx context.Context, record *Record) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO attendance_logs (employee_id, log_date, log_in, log_out)
    VALUES ($1,$2,$3,$4)
    ON CONFLICT (employee_id, log_date)
    DO UPDATE SET log_in = EXCLUDED.log_in, log_out = EXCLUDED.log_out
  `, record.EmployeeID(), record.Date(), record.LogIn(), record.LogOut())
	return err
}
