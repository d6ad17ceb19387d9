package hooks

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/docfeatures/internal/events"
	"git.home.luguber.info/inful/docfeatures/internal/features"
	"git.home.luguber.info/inful/docfeatures/internal/logfields"
	"git.home.luguber.info/inful/docfeatures/internal/metrics"
)

// FeatureCopyHookName is the registry name of the built-in copy hook.
const FeatureCopyHookName = "features"

// ResultKey is the Context.Data key under which FeatureCopyHook stores its *features.Result.
const ResultKey = "features.result"

// FeatureCopyOptions wires optional collaborators into FeatureCopyHook.
type FeatureCopyOptions struct {
	Recorder  metrics.Recorder
	Publisher events.Publisher
	DryRun    bool
}

// FeatureCopyHook copies <docs_dir>/features/*.json into <site_dir>/features
// on the post-build event and announces the copy through a Publisher.
type FeatureCopyHook struct {
	recorder  metrics.Recorder
	publisher events.Publisher
	dryRun    bool
}

// NewFeatureCopyHook creates the hook; nil opts uses no-op metrics and events.
func NewFeatureCopyHook(opts *FeatureCopyOptions) *FeatureCopyHook {
	h := &FeatureCopyHook{
		recorder:  metrics.NoopRecorder{},
		publisher: events.NoopPublisher{},
	}
	if opts != nil {
		if opts.Recorder != nil {
			h.recorder = opts.Recorder
		}
		if opts.Publisher != nil {
			h.publisher = opts.Publisher
		}
		h.dryRun = opts.DryRun
	}
	return h
}

func (h *FeatureCopyHook) Metadata() Metadata {
	return Metadata{
		Name:        FeatureCopyHookName,
		Version:     "v1.0.0",
		Description: "Copy feature JSON files into the built site",
		Events:      []Event{EventPostBuild},
	}
}

func (h *FeatureCopyHook) Validate(hc *Context) error {
	if hc.DocsDir == "" {
		return fmt.Errorf("docs_dir is required")
	}
	if hc.SiteDir == "" {
		return fmt.Errorf("site_dir is required")
	}
	return nil
}

func (h *FeatureCopyHook) Run(ctx context.Context, hc *Context) error {
	res, err := features.Copy(ctx,
		features.Paths{DocsDir: hc.DocsDir, SiteDir: hc.SiteDir},
		features.WithLogger(hc.Logger),
		features.WithRecorder(h.recorder),
		features.WithDryRun(h.dryRun),
	)
	hc.SetValue(ResultKey, res)
	if err != nil {
		return err
	}
	if res.SourceMissing || res.DryRun {
		return nil
	}

	ev := events.FeaturesCopied{
		BuildID:   hc.BuildID,
		Source:    res.Source,
		Dest:      res.Dest,
		Files:     res.Names(),
		Bytes:     res.Bytes(),
		Timestamp: time.Now().UTC(),
	}
	// The copy already succeeded; a lost notification must not fail the build.
	if err := h.publisher.Publish(ctx, ev); err != nil {
		hc.Logger.Warn("Failed to publish features copied event", logfields.Error(err))
	}
	return nil
}

// FeatureResult returns the result stored by FeatureCopyHook, or nil.
func FeatureResult(hc *Context) *features.Result {
	if hc == nil {
		return nil
	}
	res, _ := hc.GetValue(ResultKey).(*features.Result)
	return res
}
