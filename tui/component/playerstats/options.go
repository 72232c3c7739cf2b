package playerstats

import (
	"context"
	"time"

	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/i18n"
	"github.com/mcdash/playerstats/loader"
)

// Loader loads the samples of a preset window.
type Loader interface {
	Load(ctx context.Context, p preset.Preset) loader.Result
}

type Options struct {
	Context         context.Context
	Loader          Loader
	Translator      *i18n.Translator
	Location        *time.Location
	PresetID        string
	RefreshInterval time.Duration
}

func (o Options) refreshInterval() time.Duration {
	if o.RefreshInterval > 0 {
		return o.RefreshInterval
	}
	return loader.DefaultInterval
}

func (o Options) context() context.Context {
	if o.Context != nil {
		return o.Context
	}
	return context.Background()
}

func (o Options) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.Local
}
