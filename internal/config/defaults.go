package config

// GetDefaults returns the default value of every config key.
func GetDefaults() map[string]any {
	return map[string]any{
		"border":     "-",
		"file":       "",
		"github":     "",
		"v_prefix":   false,
		"sign":       false,
		"editor":     "",
		"wrap_width": 79,
		"log_level":  "warn",
	}
}

// GetDefaultConfigTemplate returns a commented config file listing every key.
func GetDefaultConfigTemplate() string {
	return `# chag configuration

border: "-"          # Character headings are underlined with
file: ""             # Changelog path (default: CHANGELOG, CHANGELOG.md or CHANGELOG.rst)
github: ""           # owner/repo used to autolink issues and commits on append
v_prefix: false      # Prefix tag names with "v"
sign: false          # Create GPG-signed tags
editor: ""           # Editor command (default: $EDITOR, then vim)
wrap_width: 79       # Column limit for 'chag append --wrap'
log_level: warn      # debug | info | warn | error
`
}
