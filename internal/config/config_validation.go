package config

import "errors"

func (c *ClientConfig) validate() error {
	var err error

	if c.Adapter.BaseURL == "" {
		err = errors.Join(err, ErrNoBaseURL)
	}
	if c.Storage.DBPath == "" {
		err = errors.Join(err, ErrNoDBPath)
	}

	return err
}
