package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Clean removes the database after an interactive confirmation.
func Clean(dbPath string) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return nil
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return nil
	}

	if err := os.RemoveAll(dbPath); err != nil {
		return fmt.Errorf("failed to clean database: %w", err)
	}
	fmt.Println("Database cleaned successfully")
	return nil
}

// InitDB initializes a new empty database.
func InitDB(dbPath string) error {
	if _, err := os.Stat(dbPath); err == nil {
		return fmt.Errorf("database already exists; use 'clean' first to reinitialize")
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
	return nil
}

// Backup creates a backup of the database under backupDir.
func Backup(dbPath, backupDir string) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no database exists to backup")
	}

	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		return fmt.Errorf("failed to backup database: %w", err)
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
	return nil
}

// Restore restores the database from a backup file.
func Restore(dbPath, backupFile string) error {
	fi, err := os.Stat(backupFile)
	if os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupFile)
	}
	if err != nil {
		return fmt.Errorf("failed to stat backup file: %w", err)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("backup file is empty: %s", backupFile)
	}

	if _, err := os.Stat(dbPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return nil
		}
		if err := os.RemoveAll(dbPath); err != nil {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		return fmt.Errorf("failed to restore database: %w", err)
	}

	fmt.Println("Database restored successfully")
	return nil
}
