package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the schema version, when one is declared, and that a
// configured plan rates file can be read. The service has no required secrets,
// so an empty environment is valid.
func ValidateEnv() error {
	if schemaVersion := os.Getenv(EnvSchemaVersion); schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaMismatch, ExpectedEnvSchemaVersion, schemaVersion)
	}

	if path := os.Getenv(EnvPlanRatesFile); path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf(ErrMsgRatesFileMissing, path, err)
		}
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvSchemaVersion) == "" {
		warnings = append(warnings, fmt.Sprintf(WarnMsgSchemaUnset, ExpectedEnvSchemaVersion))
	}

	env := os.Getenv(EnvEnvironment)
	if (env == "prod" || env == "production") && !getEnvAsBool(EnvVisibilityGate, DefaultVisibilityGate) {
		warnings = append(warnings, WarnMsgVisibilityGateOff)
	}

	if len(getEnvAsList(EnvTrustedProxies)) == 0 {
		warnings = append(warnings, WarnMsgNoTrustedProxies)
	}

	return warnings, nil
}
