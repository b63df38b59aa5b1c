package a

import "context"

type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ResolutionLog interface {
	Record(ctx context.Context, input string) error
}

func bad(ctx context.Context, inputs []string, llm LLMClient, log ResolutionLog) {
	for _, in := range inputs {
		llm.Complete(ctx, in) // want "potential N\\+1: Complete called inside loop"
		log.Record(ctx, in)   // want "potential N\\+1: Record called inside loop"
	}
}

func silenced(ctx context.Context, rounds int, llm LLMClient) {
	for i := 0; i < rounds; i++ {
		//nolint:loopcall // each round needs the previous reply
		llm.Complete(ctx, "next")
	}
}

func good(ctx context.Context, inputs []string, log ResolutionLog) {
	n := 0
	for _, in := range inputs {
		n += len(in)
	}
	_ = log.Record(ctx, "batch")
	_ = n
}
