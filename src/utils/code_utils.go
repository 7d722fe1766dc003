package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/username/brokertax/src/logger"
	"github.com/username/brokertax/src/models"
)

var (
	codeTables    models.CodeTables
	codeTablesErr error
	loadTables    sync.Once
)

// LoadCodeTables returns the built-in tables, overlaid with the JSON file at
// path when path is set. Maps in the file add to or replace single entries;
// lists in the file replace the built-in list.
func LoadCodeTables(path string) (models.CodeTables, error) {
	tables := models.DefaultCodeTables()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tables, fmt.Errorf("failed to read code tables file '%s': %w", path, err)
	}
	if err := json.Unmarshal(data, &tables); err != nil {
		return models.DefaultCodeTables(), fmt.Errorf("failed to unmarshal code tables from '%s': %w", path, err)
	}
	if len(tables.DateLayouts) == 0 {
		return models.DefaultCodeTables(), fmt.Errorf("code tables file '%s' defines no date layouts", path)
	}
	return tables, nil
}

// InitCodeTables loads the process-wide tables once. On error the built-in
// tables stay in effect and the error is returned.
func InitCodeTables(path string) error {
	loadTables.Do(func() {
		logger.L.Info("Initializing code tables", "path", path)
		codeTables, codeTablesErr = LoadCodeTables(path)
		if codeTablesErr != nil {
			logger.L.Error("Failed to load code tables, using built-in defaults", "path", path, "error", codeTablesErr)
			return
		}
		logger.L.Info("Code tables loaded",
			"assetCategories", len(codeTables.AssetCategories),
			"transactionCodes", len(codeTables.TransactionCodes),
			"layouts", len(codeTables.Layouts))
	})
	return codeTablesErr
}

// CodeTables returns the tables loaded by InitCodeTables, or the built-in
// tables if InitCodeTables was never called.
func CodeTables() models.CodeTables {
	loadTables.Do(func() {
		codeTables = models.DefaultCodeTables()
	})
	return codeTables
}
