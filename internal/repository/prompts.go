package repository

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embeddedPrompts embed.FS

var (
	ErrPromptTableNotFound = errors.New("prompt table not found")
	ErrDuplicatePromptName = errors.New("duplicate prompt table name")
)

// Prompt is one literal question. Correct holds indices into Options;
// multiple-choice prompts carry exactly one.
type Prompt struct {
	Question    string   `yaml:"question"`
	Options     []string `yaml:"options"`
	Correct     []int    `yaml:"correct"`
	Explanation string   `yaml:"explanation"`
	SelectAll   bool     `yaml:"select_all"`
	KeepOrder   bool     `yaml:"keep_order"` // options refer to each other, e.g. "All of the above"
}

// PromptTable holds the literal content of one subtopic in row order.
type PromptTable struct {
	Name      string   `yaml:"name"`
	Questions []Prompt `yaml:"questions"`
}

// PromptRepository provides read-only access to static prompt tables.
// Tables are loaded once and never modified.
type PromptRepository struct {
	tables map[string]*PromptTable
}

// NewPromptRepository loads every *.yaml file at the root of fsys.
func NewPromptRepository(fsys fs.FS) (*PromptRepository, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list prompt files: %w", err)
	}

	tables := make(map[string]*PromptTable, len(files))
	for _, file := range files {
		table, err := loadPromptTable(fsys, file)
		if err != nil {
			return nil, err
		}
		if _, ok := tables[table.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePromptName, table.Name)
		}
		tables[table.Name] = table
	}

	return &PromptRepository{tables: tables}, nil
}

// NewEmbeddedPromptRepository loads the prompt tables compiled into the binary.
func NewEmbeddedPromptRepository() (*PromptRepository, error) {
	sub, err := fs.Sub(embeddedPrompts, "data")
	if err != nil {
		return nil, err
	}
	return NewPromptRepository(sub)
}

// Get returns the table with the given name.
func (r *PromptRepository) Get(name string) (*PromptTable, error) {
	table, ok := r.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPromptTableNotFound, name)
	}
	return table, nil
}

// Len returns the number of loaded tables.
func (r *PromptRepository) Len() int {
	return len(r.tables)
}

func loadPromptTable(fsys fs.FS, file string) (*PromptTable, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, err
	}

	var table PromptTable
	if err = yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prompt table %s: %w", file, err)
	}

	if table.Name == "" {
		table.Name = path.Base(file[:len(file)-len(path.Ext(file))])
	}

	return &table, nil
}
