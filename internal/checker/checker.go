package checker

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/lueurxax/forward-list/internal/log"
	"github.com/lueurxax/forward-list/pkg/forwardlist"
)

const (
	stageKey = "stage"
	sizeKey  = "size"
)

type Checker interface {
	// Run pushes Size generated values into list and compares it with a
	// reference slice after population, every reversal and every pop.
	Run(ctx context.Context, list forwardlist.ForwardList[int]) (Report, error)
}

type Report struct {
	Size      int           `json:"size"`
	Seed      int64         `json:"seed"`
	Reversals int           `json:"reversals"`
	Pops      int           `json:"pops"`
	Checks    int           `json:"checks"`
	Duration  time.Duration `json:"duration"`
}

type checker struct {
	generator

	cfg Config
	log log.Logger
}

func (c *checker) Run(ctx context.Context, list forwardlist.ForwardList[int]) (Report, error) {
	st := time.Now()
	report := Report{Size: c.cfg.Size, Seed: c.cfg.Seed, Reversals: c.cfg.Reversals, Pops: c.cfg.Pops}

	if list.Size() != 0 {
		return report, fmt.Errorf("%w: list must start empty, has %d elements", ErrInvalidConfig, list.Size())
	}

	reference := make([]int, 0, c.cfg.Size)
	for i := 0; i < c.cfg.Size; i++ {
		v := c.Int()
		reference = append(reference, v)
		list.PushBack(v)
	}

	if err := c.compare("populate", reference, list); err != nil {
		return report, err
	}
	report.Checks++

	for i := 0; i < c.cfg.Reversals; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		list.Reverse()
		slices.Reverse(reference)

		if err := c.compare(fmt.Sprintf("reverse %d", i+1), reference, list); err != nil {
			return report, err
		}
		report.Checks++
	}

	for i := 0; i < c.cfg.Pops; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		list.PopFront()
		reference = reference[1:]

		if err := c.compare(fmt.Sprintf("pop %d", i+1), reference, list); err != nil {
			return report, err
		}
		report.Checks++
	}

	report.Duration = time.Since(st)
	c.log.WithField("checks", report.Checks).Infof("list matched reference in %s", report.Duration)

	return report, nil
}

func (c *checker) compare(stage string, reference []int, list forwardlist.ForwardList[int]) error {
	logger := c.log.WithFields(map[string]interface{}{stageKey: stage, sizeKey: list.Size()})

	if list.Size() != len(reference) {
		return fmt.Errorf("%w: %s: got %d, want %d", ErrSizeMismatch, stage, list.Size(), len(reference))
	}

	i := 0
	end := list.End()
	for it := list.Begin(); !it.Equal(end); it.Next() {
		if i >= len(reference) {
			return fmt.Errorf("%w: %s: list longer than %d", ErrSequenceMismatch, stage, len(reference))
		}
		if it.Value() != reference[i] {
			return fmt.Errorf("%w: %s: index %d: got %d, want %d", ErrSequenceMismatch, stage, i, it.Value(), reference[i])
		}
		i++
	}

	if i != len(reference) {
		return fmt.Errorf("%w: %s: iterated %d of %d", ErrSequenceMismatch, stage, i, len(reference))
	}

	logger.Debug("matched")

	return nil
}

func NewChecker(cfg Config, gen generator, logger log.Logger) (Checker, error) {
	if cfg.Size < 0 || cfg.Reversals < 0 || cfg.Pops < 0 {
		return nil, fmt.Errorf("%w: negative size, reversals or pops", ErrInvalidConfig)
	}

	if cfg.Pops > cfg.Size {
		return nil, fmt.Errorf("%w: pops %d exceed size %d", ErrInvalidConfig, cfg.Pops, cfg.Size)
	}

	return &checker{generator: gen, cfg: cfg, log: logger}, nil
}
