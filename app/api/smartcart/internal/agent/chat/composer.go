package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	summaryPrompt = "You are a helpful shopping assistant. Compose a concise, friendly reply to the user summarising what was done to the cart."

	smallTalkPrompt = "You are a friendly, witty shopping assistant who helps users in a delightful tone. Keep responses short, warm, and engaging."
)

type Composer struct {
	log   logx.Logger
	model model.BaseChatModel
}

func NewComposer(log logx.Logger, chatModel model.BaseChatModel) *Composer {
	return &Composer{
		log:   log,
		model: chatModel,
	}
}

// Compose turns a dispatch outcome into the final user-facing message. With
// no outcome it falls back to small talk over the original message. The
// model reply is returned verbatim.
func (c *Composer) Compose(ctx context.Context, userMessage, toolOutput string) (string, error) {
	if c == nil || c.model == nil {
		return "", fmt.Errorf("chat model unavailable")
	}

	var messages []*schema.Message
	if toolOutput != "" {
		messages = []*schema.Message{
			schema.SystemMessage(summaryPrompt),
			schema.AssistantMessage(toolOutput, nil),
		}
	} else {
		messages = []*schema.Message{
			schema.SystemMessage(smallTalkPrompt),
			schema.UserMessage(userMessage),
		}
	}

	out, err := c.model.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", errors.New("model returned empty message")
	}
	return out.Content, nil
}
