package verification

import (
	"context"
	"math/rand"
	"time"

	"resolvehub/internal/domain"
)

// SimulatedClassifier fakes document AI verification with a configurable
// success rate. Rand may be injected for deterministic tests; nil uses
// the shared source.
type SimulatedClassifier struct {
	Latency     time.Duration
	SuccessRate float64
	Rand        *rand.Rand
}

func (c *SimulatedClassifier) Classify(ctx context.Context, fileName, documentType string) (domain.DocumentCheck, error) {
	if c.Latency > 0 {
		select {
		case <-ctx.Done():
			return domain.DocumentCheck{}, ctx.Err()
		case <-time.After(c.Latency):
		}
	}

	roll := rand.Float64
	if c.Rand != nil {
		roll = c.Rand.Float64
	}

	if roll() < c.SuccessRate {
		return domain.DocumentCheck{
			IsValid:    true,
			Confidence: 0.75 + 0.24*roll(),
			ExtractedData: map[string]string{
				"fileName":     fileName,
				"documentType": documentType,
			},
		}, nil
	}

	return domain.DocumentCheck{
		IsValid:    false,
		Confidence: 0.2 + 0.3*roll(),
		Errors:     []string{"document could not be validated against the declared type"},
	}, nil
}
