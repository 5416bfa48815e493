package configs

import "time"

// Sweep configures the background reconciliation loop that archives
// expired offers and closes ended orders.
type Sweep struct {
	// Interval is the time between reconciliation ticks. Defaults to one
	// hour.
	Interval time.Duration `env:"INTERVAL" envDefault:"1h"`
	// Enabled disables the loop entirely when false; the manual tick
	// endpoint keeps working either way.
	Enabled bool `env:"ENABLED" envDefault:"true"`
}
