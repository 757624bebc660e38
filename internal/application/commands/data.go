package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"bakerspal/internal/application"
	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

// exportDocument is the backup file shape. Notes and the theme are local
// to a device and deliberately left out.
type exportDocument struct {
	Ingredients []domain.Ingredient `json:"ingredients"`
	Recipes     []domain.Recipe     `json:"recipes"`
	Sales       []domain.Sale       `json:"sales"`
}

// ExportResult contains the result of exporting business data
type ExportResult struct {
	JSON    []byte
	Message string
}

// ExportCommand serializes ingredients, recipes, and sales as an
// indented JSON backup document
type ExportCommand struct {
	tracker *state.Tracker
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(tracker *state.Tracker) *ExportCommand {
	return &ExportCommand{tracker: tracker}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	s := c.tracker.State()
	doc := exportDocument{
		Ingredients: s.Ingredients,
		Recipes:     s.Recipes,
		Sales:       s.Sales,
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}

	return &ExportResult{
		JSON: raw,
		Message: fmt.Sprintf("Exported %d ingredients, %d recipes, %d sales",
			len(doc.Ingredients), len(doc.Recipes), len(doc.Sales)),
	}, nil
}

// ImportResult contains the result of importing business data
type ImportResult struct {
	Message string
}

// ImportCommand replaces ingredients, recipes, and sales from a backup
// document. Notes are untouched. A document missing any of the three
// collections is rejected without modifying anything.
type ImportCommand struct {
	tracker *state.Tracker
	JSON    []byte
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(tracker *state.Tracker, raw []byte) *ImportCommand {
	return &ImportCommand{tracker: tracker, JSON: raw}
}

// Validate checks that the document is a well-formed backup
func (c *ImportCommand) Validate() error {
	_, err := c.parse()
	return err
}

func (c *ImportCommand) parse() (exportDocument, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(c.JSON, &probe); err != nil {
		return exportDocument{}, &application.ImportError{Reason: "not a JSON object"}
	}
	for _, key := range []string{"ingredients", "recipes", "sales"} {
		if _, ok := probe[key]; !ok {
			return exportDocument{}, &application.ImportError{
				Reason: fmt.Sprintf("missing the %q collection", key),
			}
		}
	}

	var doc exportDocument
	if err := json.Unmarshal(c.JSON, &doc); err != nil {
		return exportDocument{}, &application.ImportError{Reason: err.Error()}
	}
	return doc, nil
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context) (*ImportResult, error) {
	doc, err := c.parse()
	if err != nil {
		return nil, err
	}

	// Old backups may carry the flat price field; fold it in like a load.
	if migrated, changed := domain.MigrateIngredients(doc.Ingredients); changed {
		doc.Ingredients = migrated
	}

	s := c.tracker.State()
	s.Ingredients = doc.Ingredients
	s.Recipes = doc.Recipes
	s.Sales = doc.Sales
	c.tracker.ReplaceAll(s)

	return &ImportResult{
		Message: fmt.Sprintf("Imported %d ingredients, %d recipes, %d sales",
			len(doc.Ingredients), len(doc.Recipes), len(doc.Sales)),
	}, nil
}
