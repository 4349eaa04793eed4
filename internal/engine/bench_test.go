package engine_test

import (
	"context"
	"testing"

	"github.com/unbound-force/discern/internal/catalog"
	"github.com/unbound-force/discern/internal/engine"
)

// BenchmarkClassify_Simple benchmarks a single-intent utterance
// through the full pipeline including schema validation.
func BenchmarkClassify_Simple(b *testing.B) {
	eng := engine.New(catalog.Default())
	ctx := context.Background()
	req := engine.Request{Text: "create a new deployment pipeline"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Classify(ctx, req); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClassify_MultiIntent benchmarks a hinted multi-intent
// utterance, the most expensive path through the pipeline.
func BenchmarkClassify_MultiIntent(b *testing.B) {
	eng := engine.New(catalog.Default())
	ctx := context.Background()
	req := engine.Request{
		Text: "create a report then send it and maybe update the dashboard",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Classify(ctx, req); err != nil {
			b.Fatal(err)
		}
	}
}
