package config

// validate checks that the merged configuration is complete and coherent.
// It is called as the final step of the builder, after defaults are applied,
// so every failure here means an explicitly configured value is wrong.
func (c *StructuredConfig) validate() error {
	if c.Auth.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if c.Auth.TokenAlgorithm != "HS256" {
		return ErrUnsupportedTokenAlgorithm
	}
	if c.Auth.TokenIssuer == "" {
		return ErrNoTokenIssuer
	}
	if c.Auth.TokenTTL <= 0 {
		return ErrInvalidTokenTTL
	}
	if c.Server.HTTPAddress == "" {
		return ErrNoServerAddress
	}
	if c.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}
