package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://github.com/vango-dev/extstats/blob/main/docs/errors.md#"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Markup Errors (M001-M099)
	// ============================================

	"M001": {
		Category: CategoryMarkup,
		Message:  "Element tag is empty",
		Detail:   "Every element needs a tag name. This is a bug in the page assembler that built the tree.",
		DocURL:   docBase + "m001",
	},
	"M002": {
		Category: CategoryMarkup,
		Message:  "Attribute key is empty",
		Detail:   "An attribute was added with an empty name. This is a bug in the page assembler that built the tree.",
		DocURL:   docBase + "m002",
	},
	"M003": {
		Category: CategoryMarkup,
		Message:  "Void element has children",
		Detail:   "Elements such as br, img, hr and meta are written self-closing and cannot contain children.",
		DocURL:   docBase + "m003",
	},
	"M004": {
		Category: CategoryMarkup,
		Message:  "Value is not renderable",
		Detail:   "Children must be elements, strings, nil or sequences of those.",
		DocURL:   docBase + "m004",
	},

	// ============================================
	// Config Errors (C001-C099)
	// ============================================

	"C001": {
		Category: CategoryConfig,
		Message:  "Configuration file could not be read",
		Detail:   "extstats.json or extstats.toml exists but could not be opened.",
		DocURL:   docBase + "c001",
	},
	"C002": {
		Category: CategoryConfig,
		Message:  "Configuration file is malformed",
		Detail:   "The configuration file is not valid JSON or TOML.",
		DocURL:   docBase + "c002",
	},
	"C003": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range or inconsistent with another value.",
		DocURL:   docBase + "c003",
	},

	// ============================================
	// Data Errors (D001-D099)
	// ============================================

	"D001": {
		Category: CategoryData,
		Message:  "Extension data file could not be read",
		DocURL:   docBase + "d001",
	},
	"D002": {
		Category: CategoryData,
		Message:  "Extension data is not valid JSON",
		Detail:   "The data file must contain a JSON array of extension objects.",
		DocURL:   docBase + "d002",
	},
	"D003": {
		Category: CategoryData,
		Message:  "Extension not found",
		DocURL:   docBase + "d003",
	},
	"D004": {
		Category: CategoryData,
		Message:  "Extension data is empty",
		Detail:   "The data file contains no extensions, so there is nothing to build.",
		DocURL:   docBase + "d004",
	},

	// ============================================
	// Store Errors (S001-S099)
	// ============================================

	"S001": {
		Category: CategoryStore,
		Message:  "Page could not be written",
		DocURL:   docBase + "s001",
	},
	"S002": {
		Category: CategoryStore,
		Message:  "S3 upload failed",
		Detail:   "Check the bucket name, region and the AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY environment variables.",
		DocURL:   docBase + "s002",
	},

	// ============================================
	// CLI Errors (X001-X099)
	// ============================================

	"X001": {
		Category: CategoryCLI,
		Message:  "Missing required flag",
		DocURL:   docBase + "x001",
	},
	"X002": {
		Category: CategoryCLI,
		Message:  "Server stopped unexpectedly",
		DocURL:   docBase + "x002",
	},
	"X003": {
		Category: CategoryCLI,
		Message:  "Invalid flag value",
		DocURL:   docBase + "x003",
	},
	"X004": {
		Category: CategoryCLI,
		Message:  "Configuration already exists",
		Detail:   "init does not overwrite an existing extstats.json or extstats.toml.",
		DocURL:   docBase + "x004",
	},
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
