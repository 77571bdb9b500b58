package legacycsv

// Legacy file names
const (
	FileSoloHunts  = "hunts_solo.csv"
	FileGroupHunts = "hunts_grupo.csv"
	FileDeaths     = "mortes.csv"
)

// Files lists the legacy files in import order
var Files = []string{FileSoloHunts, FileGroupHunts, FileDeaths}

// Legacy headers. Column order is part of the file format.
var (
	HeaderSoloHunts  = []string{"data", "personagem", "tipo_hunt", "lucro_itens", "descricao"}
	HeaderGroupHunts = []string{"data", "personagens", "valor_total", "observacoes"}
	HeaderDeaths     = []string{"personagem", "data", "valor_perdido", "descricao"}
)

// Error messages
const (
	ErrMsgCreateDirFailed   = "failed to create csv directory"
	ErrMsgCreateFileFailed  = "failed to create csv file"
	ErrMsgOpenFileFailed    = "failed to open csv file"
	ErrMsgReadFileFailed    = "failed to read csv file"
	ErrMsgWriteFileFailed   = "failed to write csv file"
	ErrMsgHeaderMismatch    = "unexpected csv header"
	ErrMsgColumnCount       = "wrong number of columns"
	ErrMsgInvalidAmount     = "invalid amount"
	ErrMsgListRecordsFailed = "failed to list records for export"
)

// Log messages
const (
	LogMsgFileCreated   = "Created legacy csv file"
	LogMsgFileSkipped   = "Legacy csv file not found, skipping"
	LogMsgRowRejected   = "Legacy csv row rejected"
	LogMsgImportSummary = "Legacy csv import finished"
	LogMsgExportSummary = "Legacy csv export finished"
)
