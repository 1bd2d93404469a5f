package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	duplicate := &pgconn.PgError{Code: "23505", ConstraintName: "uni_patients_no_ktp"}

	if !isDuplicateKeyError(duplicate, "no_ktp") {
		t.Error("expected unique violation on no_ktp to match")
	}
	if isDuplicateKeyError(duplicate, "username") {
		t.Error("expected mismatched constraint name to not match")
	}
	if !isDuplicateKeyError(fmt.Errorf("create patient: %w", duplicate), "no_ktp") {
		t.Error("expected wrapped error to match")
	}
	if isDuplicateKeyError(errors.New("connection refused"), "no_ktp") {
		t.Error("expected plain error to not match")
	}

	foreignKey := &pgconn.PgError{Code: "23503", ConstraintName: "uni_patients_no_ktp"}
	if isDuplicateKeyError(foreignKey, "no_ktp") {
		t.Error("expected foreign key violation to not match as duplicate")
	}
}

func TestIsForeignKeyError(t *testing.T) {
	violation := &pgconn.PgError{Code: "23503", ConstraintName: "appointments_doctor_id_fkey"}

	if !isForeignKeyError(violation, "doctor_id") {
		t.Error("expected foreign key violation on doctor_id to match")
	}
	if isForeignKeyError(violation, "patient_id") {
		t.Error("expected mismatched constraint name to not match")
	}
	if isForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "appointments_doctor_id_fkey"}, "doctor_id") {
		t.Error("expected unique violation to not match as foreign key")
	}
}
