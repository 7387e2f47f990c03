package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrMissingToken = errors.New(TokenEnv + " environment variable not set")

// Validate checks the configuration needed to run an import. A dry run
// never talks to Memos and so does not need a token.
func (c *Config) Validate() error {
	if !c.Import.DryRun && c.Memos.AccessToken == "" {
		return ErrMissingToken
	}

	if err := validation.ValidateStruct(&c.Memos,
		validation.Field(&c.Memos.URL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.Memos.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&c.Memos.RequestsPerSecond, validation.Min(0.0)),
	); err != nil {
		return fmt.Errorf("invalid memos config: %w", err)
	}

	if err := validation.ValidateStruct(&c.Import,
		validation.Field(&c.Import.Folder, validation.Required),
	); err != nil {
		return fmt.Errorf("invalid import config: %w", err)
	}

	return nil
}

func httpURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return validation.NewError("validation_invalid_url", "must be an http or https URL")
	}
	return nil
}
