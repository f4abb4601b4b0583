package config

import "time"

// KBOConfig configures the koreabaseball.com client.
// Keys are KBO_ plus the split field name, e.g. KBO_HTTP_TIMEOUT.
type KBOConfig struct {
	BaseURL      string        `split_words:"true" default:"https://www.koreabaseball.com"`
	HTTPTimeout  time.Duration `split_words:"true" default:"10s"`
	StrictSchema bool          `split_words:"true" default:"false"`
}
