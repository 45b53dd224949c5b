package env

import (
	"fmt"
	"os"

	pkgstrings "github.com/klwxsrx/store-dashboard/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("env %s with type %T not found", key, blank)
	}

	return parseValue[T](key, str)
}

// ParseOptional returns nil without error when the variable is not set or empty.
func ParseOptional[T pkgstrings.SupportedValueParsingTypes](key string) (*T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return nil, nil
	}

	v, err := parseValue[T](key, str)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func ParseDefault[T pkgstrings.SupportedValueParsingTypes](key string, fallback T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil {
		return fallback, err
	}
	if v == nil {
		return fallback, nil
	}

	return *v, nil
}

func parseValue[T pkgstrings.SupportedValueParsingTypes](key, str string) (T, error) {
	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return v, fmt.Errorf("env %s with type %T has invalid value: %w", key, v, err)
	}

	return v, nil
}
