// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come from
// the env and envPrefix tags on [StructuredConfig], so VAULT_ROOT_DIR sets
// Vault.RootDir. Every variable that fails to parse is named in the
// returned error together with the value it holds.
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Environment: env.ToMap(os.Environ()),
	})
	if err == nil {
		return nil
	}

	var aggregate env.AggregateError
	if !errors.As(err, &aggregate) {
		return fmt.Errorf("%w: %w", ErrInvalidEnv, err)
	}

	keys := envKeys(reflect.TypeOf(*cfg), "")
	msgs := make([]string, 0, len(aggregate.Errors))
	for _, e := range aggregate.Errors {
		var parseErr env.ParseError
		if !errors.As(e, &parseErr) {
			msgs = append(msgs, e.Error())
			continue
		}
		names := keys[parseErr.Name]
		if len(names) == 0 {
			msgs = append(msgs, e.Error())
			continue
		}
		for _, name := range names {
			if value, ok := os.LookupEnv(name); ok {
				msgs = append(msgs, fmt.Sprintf("%s=%q: %v", name, value, parseErr.Err))
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidEnv, strings.Join(msgs, "; "))
}

// envKeys maps struct field names to the full variable names that set them.
// A field name maps to several variables when nested groups reuse it.
func envKeys(t reflect.Type, prefix string) map[string][]string {
	keys := make(map[string][]string)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type.Kind() == reflect.Struct && field.Tag.Get("env") == "" {
			if p, ok := field.Tag.Lookup("envPrefix"); ok {
				for name, vars := range envKeys(field.Type, prefix+p) {
					keys[name] = append(keys[name], vars...)
				}
			}
			continue
		}
		if name := field.Tag.Get("env"); name != "" {
			keys[field.Name] = append(keys[field.Name], prefix+strings.Split(name, ",")[0])
		}
	}
	return keys
}
