package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a household file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForFile picks the encoding from the file extension. JSON is read
// through the YAML decoder.
func FormatForFile(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// InputParser handles parsing of household configuration files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: newValidator()}
}

// LoadFromFile loads a household from a YAML, JSON or TOML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Household, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data, FormatForFile(filename))
}

// Parse decodes, assigns missing IDs and validates a household
func (ip *InputParser) Parse(data []byte, format Format) (*domain.Household, error) {
	var household domain.Household
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &household); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &household); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	AssignIDs(&household)

	if err := ip.ValidateConfiguration(&household); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &household, nil
}

// SaveConfiguration writes h to filename, encoded by its extension
func (ip *InputParser) SaveConfiguration(h *domain.Household, filename string) error {
	var (
		data []byte
		err  error
	)
	switch FormatForFile(filename) {
	case FormatTOML:
		data, err = toml.Marshal(h)
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(h); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// AssignIDs fills empty person, income source and budget item IDs. Income
// sources may reference their owner by name when the person has no ID yet.
func AssignIDs(h *domain.Household) {
	byName := map[string]string{}
	for i := range h.People {
		p := &h.People[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
			byName[p.Name] = p.ID
		}
	}
	for i := range h.IncomeSources {
		s := &h.IncomeSources[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if id, ok := byName[s.PersonID]; ok {
			s.PersonID = id
		}
	}
	for i := range h.Deposit.Budget {
		b := &h.Deposit.Budget[i]
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
	}
}
