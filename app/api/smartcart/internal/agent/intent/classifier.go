package intent

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const classifierModelNodeKey = "intent_classifier_model"

const classifyPrompt = `You are a cart assistant. Classify the user message into one of the following actions:
- ADD <product name>
- REMOVE <product name>
If the message is unrelated, output NONE.
Respond with only the action and product, e.g., ` + "`ADD oat milk`" + ` or ` + "`REMOVE sugar`" + `. Do not include punctuation.`

type Classifier struct {
	log      logx.Logger
	runnable compose.Runnable[string, Decision]
}

func NewClassifier(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel) (*Classifier, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	chain := compose.NewChain[string, Decision]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, message string) ([]*schema.Message, error) {
		return []*schema.Message{
			schema.SystemMessage(classifyPrompt),
			schema.UserMessage(message),
		}, nil
	}))

	chain.AppendChatModel(chatModel, compose.WithNodeKey(classifierModelNodeKey))

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (Decision, error) {
		if msg == nil {
			return Decision{}, fmt.Errorf("empty message")
		}
		return ParseReply(msg.Content), nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		log:      logger,
		runnable: runnable,
	}, nil
}

// Classify resolves one user message into a Decision. Errors here mean the
// completion service itself failed; malformed replies never error.
func (c *Classifier) Classify(ctx context.Context, message string) (Decision, error) {
	if c == nil || c.runnable == nil {
		return Decision{}, fmt.Errorf("intent classifier unavailable")
	}
	return c.runnable.Invoke(ctx, message)
}

// ParseReply applies the single-line classification contract: "NONE" in any
// case means no intent, anything that does not split into an action keyword
// plus a product remainder degrades to no intent, and unrecognized keywords
// are recorded lowercased for the dispatcher to reject.
func ParseReply(reply string) Decision {
	trimmed := strings.TrimSpace(reply)
	if strings.EqualFold(trimmed, "NONE") {
		return Decision{Intent: IntentNone, RawOutput: trimmed}
	}

	cut := strings.IndexFunc(trimmed, unicode.IsSpace)
	if cut < 0 {
		return Decision{Intent: IntentNone, RawOutput: trimmed}
	}

	keyword := trimmed[:cut]
	product := strings.TrimSpace(trimmed[cut:])
	if product == "" {
		return Decision{Intent: IntentNone, RawOutput: trimmed}
	}

	return Decision{
		Intent:    strings.ToLower(keyword),
		Product:   product,
		RawOutput: trimmed,
	}
}
