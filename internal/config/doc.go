// Package config manages user-level settings stored at ~/.toolpath/config.yaml.
// Settings can be overridden with TOOLPATH_* environment variables, are
// validated against an embedded JSON schema, and can be watched for changes.
package config
