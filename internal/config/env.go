package config

import (
	"os"
	"reflect"

	"github.com/kelseyhightower/envconfig"
)

// processEnv is envconfig.Process where a variable set to "" counts as
// unset, so blank .env placeholders fall back to the field default.
func processEnv(spec any) error {
	t := reflect.TypeOf(spec).Elem()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("envconfig")
		if key == "" {
			continue
		}
		if v, ok := os.LookupEnv(key); ok && v == "" {
			os.Unsetenv(key)
		}
	}
	return envconfig.Process("", spec)
}
