package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/stackgrid/internal/domain"
	"github.com/osse101/stackgrid/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateItemID = errors.New("duplicate item id")

	ErrInvalidConfig = errors.New("invalid configuration")

	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

//go:embed schemas/items.schema.json
var itemsSchema []byte

// Config represents a catalog file
type Config struct {
	Version     string `json:"version" yaml:"version" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Items []Def `json:"items" yaml:"items" validate:"required,min=1,dive"`
}

// Def represents a single item definition
type Def struct {
	ID          string `json:"id" yaml:"id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty" validate:"max=100"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	MaxStack    int    `json:"max_stack" yaml:"max_stack" validate:"min=1,max=9999"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
}

// Metadata converts the definition into what inventories cache per slot
func (d Def) Metadata() (domain.ItemMetadata, error) {
	category, err := domain.ParseItemCategory(d.Category)
	if err != nil {
		return domain.ItemMetadata{}, err
	}
	return domain.ItemMetadata{MaxStack: d.MaxStack, Category: category}, nil
}

// Loader handles loading and validating catalog files
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte, format string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	structValidator *validator.Validate
}

// NewLoader creates a Loader with the catalog schema compiled in
func NewLoader() (Loader, error) {
	sv := validation.NewSchemaValidator()
	if err := sv.RegisterSchema(ItemsSchemaName, itemsSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgRegisterSchemaFailed, err)
	}
	return &itemLoader{
		schemaValidator: sv,
		structValidator: validator.New(),
	}, nil
}

// Load reads a catalog file, picking the format from its extension
func (l *itemLoader) Load(path string) (*Config, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	config, err := l.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse validates raw catalog data against the schema and decodes it.
// YAML is converted to JSON first so both formats share one schema.
func (l *itemLoader) Parse(data []byte, format string) (*Config, error) {
	jsonData := data
	if format == FormatYAML {
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
		}
		jsonData = converted
	} else if format != FormatJSON {
		return nil, fmt.Errorf(ErrFmtUnsupportedFormat, ErrUnsupportedFormat, format)
	}

	if err := l.schemaValidator.ValidateBytes(jsonData, ItemsSchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, format, err)
	}

	var config Config
	if err := json.Unmarshal(jsonData, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks rules the schema cannot express: reserved and duplicate ids
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := l.validateItemDef(i, &config.Items[i], seen); err != nil {
			return err
		}
	}

	if err := l.structValidator.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (l *itemLoader) validateItemDef(index int, item *Def, seen map[string]bool) error {
	if err := l.structValidator.Struct(item); err != nil {
		return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidConfig, index, err)
	}

	key := NormalizeID(item.ID)
	if key == NormalizeID(domain.EmptyItemID) {
		return fmt.Errorf(ErrFmtItemReservedID, ErrInvalidConfig, index, item.ID)
	}

	if seen[key] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateItemID, item.ID)
	}
	seen[key] = true

	if _, err := item.Metadata(); err != nil {
		return fmt.Errorf(ErrFmtItemBadCategory, ErrInvalidConfig, item.ID, err)
	}
	return nil
}

func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf(ErrFmtUnsupportedFormat, ErrUnsupportedFormat, path)
	}
}
