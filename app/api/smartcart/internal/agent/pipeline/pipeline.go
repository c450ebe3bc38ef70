package pipeline

import (
	"context"
	"fmt"
	"time"

	"SmartCart/app/api/smartcart/internal/agent/chat"
	"SmartCart/app/api/smartcart/internal/agent/intent"
	"SmartCart/app/api/smartcart/internal/agent/tools"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pipeline sequences classify -> dispatch -> compose exactly once per
// incoming message. It holds no state across runs.
type Pipeline struct {
	log        logx.Logger
	classifier *intent.Classifier
	executor   *tools.Executor
	composer   *chat.Composer
}

func New(log logx.Logger, classifier *intent.Classifier, executor *tools.Executor, composer *chat.Composer) *Pipeline {
	return &Pipeline{
		log:        log,
		classifier: classifier,
		executor:   executor,
		composer:   composer,
	}
}

// Run executes the three stages over a fresh state and returns it populated.
// Any error is fatal for the run; no stage is retried or re-entered. The
// partially built state is returned alongside the error for logging.
func (p *Pipeline) Run(ctx context.Context, message string) (State, error) {
	start := time.Now()
	defer func() {
		p.log.Infof("pipeline run took %s", time.Since(start))
	}()

	state := State{UserMessage: message}

	decision, err := p.classifier.Classify(ctx, message)
	if err != nil {
		return state, fmt.Errorf("classify: %w", err)
	}
	state.Intent = decision.Intent
	state.Product = decision.Product

	output, err := p.executor.Dispatch(ctx, decision)
	if err != nil {
		return state, fmt.Errorf("dispatch: %w", err)
	}
	state.ToolOutput = output

	final, err := p.composer.Compose(ctx, state.UserMessage, state.ToolOutput)
	if err != nil {
		return state, fmt.Errorf("compose: %w", err)
	}
	state.FinalMessage = final

	return state, nil
}
