package split

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
	"github.com/iov-one/paysplit/splittest/assert"
)

func TestLoadConfiguration(t *testing.T) {
	cases := map[string]struct {
		genesis string
		want    Configuration
		wantErr *errors.Error
	}{
		"missing section uses defaults": {
			genesis: `{}`,
			want:    DefaultConfiguration(),
		},
		"custom limit": {
			genesis: `{"split": {"max_destinations": 7}}`,
			want:    Configuration{MaxDestinations: 7},
		},
		"zero limit": {
			genesis: `{"split": {"max_destinations": 0}}`,
			wantErr: errors.ErrInput,
		},
		"malformed": {
			genesis: `{"split": "yes"}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts paysplit.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			conf, err := LoadConfiguration(opts)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, conf)
			}
		})
	}
}
