package equipment

// Catalog file locations
const (
	// DefaultCatalogPath is where the server and CLI look for the catalog
	DefaultCatalogPath = "configs/equipment.json"

	// SchemaName identifies the embedded catalog schema in the validator
	SchemaName = "equipment.schema.json"
)

// Memo and suggestion tuning
const (
	// MemoSize is how many parsed catalog versions are kept, keyed by content hash
	MemoSize = 8

	// MaxSuggestions caps the "did you mean" list per slot
	MaxSuggestions = 3

	// MinSuggestionDistance is the edit distance always accepted for a suggestion.
	// Longer names accept up to a third of their length.
	MinSuggestionDistance = 2
)

// Error Messages
const (
	ErrMsgReadCatalogFailed      = "failed to read equipment catalog"
	ErrMsgParseCatalogFailed     = "failed to parse equipment catalog"
	ErrMsgCatalogSchemaFailed    = "equipment catalog failed schema validation"
	ErrMsgRegisterSchemaFailed   = "failed to register equipment schema"
	ErrMsgCreateMemoFailed       = "failed to create catalog memo"
	ErrMsgWriteSeedFailed        = "failed to write starter catalog"
	ErrMsgCreateCatalogDirFailed = "failed to create catalog directory"
)

// Log Messages
const (
	LogMsgCatalogUnavailable = "Equipment catalog unavailable, returning empty list"
	LogMsgUnknownCategory    = "Unknown equipment category requested"
	LogMsgCatalogParsed      = "Equipment catalog parsed"
	LogMsgSeededCatalog      = "Wrote starter equipment catalog"
)
