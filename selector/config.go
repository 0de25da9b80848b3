package selector

// Config narrows a selection by matrix shape. Nil means any.
type Config struct {
	NCol *int
	NRow *int
}

type Option func(*Config)

func WithNCol(n int) Option {
	return func(c *Config) { c.NCol = &n }
}

func WithNRow(n int) Option {
	return func(c *Config) { c.NRow = &n }
}
