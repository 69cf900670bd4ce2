package split

import (
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

const (
	// DefaultMaxDestinations is the number of destinations a single split
	// accepts unless configured otherwise.
	DefaultMaxDestinations = 200

	optKey = "split"
)

// Configuration holds engine limits.
type Configuration struct {
	// MaxDestinations is the maximum number of destinations of a single
	// split.
	MaxDestinations int `json:"max_destinations"`
}

// DefaultConfiguration returns the configuration used when nothing was set.
func DefaultConfiguration() Configuration {
	return Configuration{MaxDestinations: DefaultMaxDestinations}
}

// Validate returns an error if the configuration is not usable.
func (c Configuration) Validate() error {
	if c.MaxDestinations <= 0 {
		return errors.Field("MaxDestinations", errors.ErrInput, "must be greater than zero")
	}
	return nil
}

// LoadConfiguration reads the "split" section of the genesis options. Missing
// values are set to their defaults.
func LoadConfiguration(opts paysplit.Options) (Configuration, error) {
	conf := DefaultConfiguration()
	if err := opts.ReadOptions(optKey, &conf); err != nil {
		return conf, errors.Wrap(err, "cannot read configuration")
	}
	if err := conf.Validate(); err != nil {
		return conf, errors.Wrap(err, "invalid configuration")
	}
	return conf, nil
}
