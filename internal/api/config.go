// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"pwd-strength/internal/util"
	"pwd-strength/pkg/strength"
)

// DefaultMaxConnections caps concurrent connections when MAX_CONNECTIONS is unset.
const DefaultMaxConnections = 1024

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port           string  `mapstructure:"PORT" validate:"required"`
	SelfTLS        bool    `mapstructure:"SELF_TLS" validate:"required_without_all=TLSCert TLSKey"`
	TLSCert        string  `mapstructure:"TLS_CERT" validate:"required_if=SelfTLS false,required_with=TLSKey"`
	TLSKey         string  `mapstructure:"TLS_KEY" validate:"required_if=SelfTLS false,required_with=TLSCert"`
	Debug          bool    `mapstructure:"DEBUG"`
	CommonSet      string  `mapstructure:"COMMON_SET" validate:"omitempty,file"`
	GuessRate      float64 `mapstructure:"GUESS_RATE" validate:"gt=0"`
	MaxConnections int     `mapstructure:"MAX_CONNECTIONS" validate:"gte=0"`
}

func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		fv := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch fv.Kind() {
		case reflect.Struct:
			bindEnvs(v, fv.Interface(), append(parts, tv)...)
		default:
			_ = v.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_without_all":
		return fmt.Sprintf("This field is required if fields [%s] are missing", util.ToScreamingSnakeCase(fe.Param()))
	case "required_if":
		return fmt.Sprintf("This field is required if %s", util.ToScreamingSnakeCase(fe.Param()))
	case "required_with":
		return fmt.Sprintf("This field requires the presence of %s", util.ToScreamingSnakeCase(fe.Param()))
	case "file":
		return "This field must point to an existing file"
	case "gt":
		return fmt.Sprintf("This field must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("This field must be at least %s", fe.Param())
	}
	return fe.Error() // default error
}

// Validate checks the configuration, reporting every invalid field by its
// environment name.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(&c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			var msgs []string
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s: %s", util.ToScreamingSnakeCase(fe.Field()), msgForTag(fe)))
			}

			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, ". "))
		}

		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return nil
}

// LoadConfig reads the server configuration from the environment. Variables
// in envFiles (".env" when none are given) are loaded first without
// overriding the ones already set; missing files are ignored.
func LoadConfig(envFiles ...string) (config Config, err error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err = godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return config, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("GUESS_RATE", strength.DefaultGuessesPerSecond)
	v.SetDefault("MAX_CONNECTIONS", DefaultMaxConnections)

	// Binding every key lets Unmarshal see env values without a config file.
	// https://github.com/spf13/viper/issues/188#issuecomment-399884438
	bindEnvs(v, config)

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	if err = config.Validate(); err != nil {
		return config, err
	}

	log.Debug().Msgf("configuration loaded, port %s, common set %q", config.Port, config.CommonSet)
	return config, nil
}
