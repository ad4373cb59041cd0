package db

import "testing"

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	var name string
	err = d.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='fetch_attempts'`).Scan(&name)
	if err != nil {
		t.Fatalf("fetch_attempts table missing: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	if err := d.migrate(); err != nil {
		t.Errorf("second migrate should be a no-op, got %v", err)
	}
}
