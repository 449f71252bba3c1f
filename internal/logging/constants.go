package logging

// Standard field names for structured log output.
const (
	FieldFile           = "file_path"
	FieldParser         = "parser"
	FieldConversionID   = "conversion_id"
	FieldMode           = "mode"
	FieldKind           = "kind"
	FieldBlock          = "block"
	FieldDate           = "date"
	FieldDifference     = "difference"
	FieldOperation      = "operation"
	FieldStatus         = "status"
	FieldError          = "error"
	FieldDuration       = "duration_ms"
	FieldCount          = "count"
	FieldDelimiter      = "delimiter"
	FieldInputFile      = "input_file"
	FieldOutputFile     = "output_file"
	FieldUnreconciled   = "unreconciled"
	FieldOpeningBalance = "opening_balance"
	FieldDifferences    = "differences"
)
