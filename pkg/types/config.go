package types

// ConvertConfig holds settings shared by every conversion command. Values
// come from flags, the office-convert.yaml config file, or OFFICE_CONVERT_*
// environment variables, in that order of precedence.
type ConvertConfig struct {
	// Backend selects the office host: auto, com, soffice, or libreoffice.
	Backend string `json:"backend" yaml:"backend" mapstructure:"backend"`

	// SofficePath overrides the LibreOffice binary used by the soffice and
	// libreoffice backends (default: looked up on PATH).
	SofficePath string `json:"soffice_path,omitempty" yaml:"soffice_path,omitempty" mapstructure:"soffice_path"`

	// HistoryPath is the SQLite journal of completed conversions. Empty
	// disables journaling.
	HistoryPath string `json:"history,omitempty" yaml:"history,omitempty" mapstructure:"history"`

	// Verify checks every output file after it is saved.
	Verify bool `json:"verify" yaml:"verify" mapstructure:"verify"`
}
