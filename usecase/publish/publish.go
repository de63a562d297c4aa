package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/kompox/pipeops/internal/logging"
	"golang.org/x/sync/errgroup"
)

// PublishInput lists the instances to publish.
type PublishInput struct {
	Instances []*Instance `json:"instances"`
}

// PluginRun records one plugin applied to one instance.
type PluginRun struct {
	Instance string `json:"instance"`
	Plugin   string `json:"plugin"`
}

// PublishOutput returns the processed instances.
type PublishOutput struct {
	Instances []*Instance `json:"instances"`
	Runs      []PluginRun `json:"runs"`
}

// Publish runs the applicable plugins over every instance in plugin order.
// Instances are processed concurrently up to Parallelism; the first failure
// cancels the remaining work and is returned.
func (u *UseCase) Publish(ctx context.Context, in *PublishInput) (*PublishOutput, error) {
	if in == nil || len(in.Instances) == 0 {
		return nil, errors.New("no instances to publish")
	}
	plugins := u.ordered()
	runs := make([][]PluginRun, len(in.Instances))

	g, gctx := errgroup.WithContext(ctx)
	limit := u.Parallelism
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)
	for n, inst := range in.Instances {
		g.Go(func() error {
			logger := logging.FromContext(gctx).With("instance", inst.Name)
			for _, p := range plugins {
				if !applies(p, u.Host, inst) {
					continue
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				logger.Debug(gctx, "processing", "plugin", p.Label())
				if err := p.Process(logging.WithLogger(gctx, logger), inst); err != nil {
					return fmt.Errorf("%s: %s: %w", inst.Name, p.Label(), err)
				}
				runs[n] = append(runs[n], PluginRun{Instance: inst.Name, Plugin: p.Label()})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := &PublishOutput{Instances: in.Instances}
	for _, r := range runs {
		out.Runs = append(out.Runs, r...)
	}
	return out, nil
}
