// Package config loads errlens configuration from a TOML file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/errlens/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	log_path = "/var/log/php/error.log"
//	max_lines = 0
//
//	[filters]
//	error = true
//	warning = true
//	stack_trace_step = true
//
//	[display]
//	show_datetime = true
//	reverse_order = false
//	show_orphans = false
//
//	[diagnostics]
//	log_file = "~/.local/state/errlens/errlens.log"
//	max_size_mb = 10
//
// # Filters
//
// When the [filters] table is absent every category is shown. Once the table
// is present, only the categories it sets to true are shown; a category that
// is not listed is hidden. Keys accept the category names used by errlog in
// either camelCase or snake_case, and an unknown key is a parse error.
//
// # Default Values
//
//   - Config file: ~/.config/errlens/config.toml
//   - Log file: ~/.local/share/errlens/php-error.log
//   - Datetimes shown, natural order, orphans hidden
//   - No diagnostics file; 10MB rotation size when one is set
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors and unknown filter keys. A missing
// config file is not an error.
package config
