package catalog

// ==================== Schema ====================

const (
	// ItemsSchemaName is the key the embedded catalog schema is registered under
	ItemsSchemaName = "schemas/items.schema.json"
)

// Supported catalog file formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
	ErrMsgRegisterSchemaFailed = "failed to register items schema: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Format strings used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemInvalid       = "%w: item at index %d: %v"
	ErrFmtItemReservedID    = "%w: item at index %d uses reserved id %q"
	ErrFmtItemBadCategory   = "%w: item %q: %w"
	ErrFmtUnsupportedFormat = "%w: %q"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)
