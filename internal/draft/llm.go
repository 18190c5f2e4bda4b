// Package draft assembles legal-document prompts from the rule layer's
// outputs and sends them to the generative-model collaborator.
package draft

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"regexp"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultModel is used when LAWMASTER_LLM_MODEL is unset.
const DefaultModel = "claude-sonnet-4-5"

const systemPrompt = "당신은 대한민국 민사소송 실무에 밝은 법률 문서 전문가입니다. " +
	"대한민국 법률 서식의 격식을 엄격히 지키고, 제공되지 않은 사실관계를 지어내지 않습니다."

// Disclaimer accompanies every generated draft. The model output is not
// legal advice and must be reviewed before filing.
const Disclaimer = "본 문서는 AI가 생성한 초안이며 법률 자문이 아닙니다. 제출 전 반드시 전문가의 검토를 받으십시오."

var statusCodeRe = regexp.MustCompile(`(?:status(?:\s+code)?[:=\s]+)(\d{3})`)

type failureClass int

const (
	failureNone failureClass = iota
	failureTimeout
	failureRateLimit
	failureServer
	failureClient
)

// Caller is the seam to the generative model. image is optional JPEG/PNG
// bytes for vision requests; nil means text-only.
type Caller interface {
	Generate(ctx context.Context, prompt string, image []byte) (string, error)
	ModelName() string
}

type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type AnthropicCaller struct {
	messages AnthropicMessager
	model    string
}

type AnthropicClientCreator func(apiKey string) AnthropicMessager

func defaultAnthropicCreator(apiKey string) AnthropicMessager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newAnthropicClient AnthropicClientCreator = defaultAnthropicCreator

func NewAnthropicCallerFromEnv() (*AnthropicCaller, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	model := strings.TrimSpace(os.Getenv("LAWMASTER_LLM_MODEL"))
	if model == "" {
		model = DefaultModel
	}
	return &AnthropicCaller{messages: newAnthropicClient(apiKey), model: model}, nil
}

func (a *AnthropicCaller) ModelName() string { return a.model }

func (a *AnthropicCaller) Generate(ctx context.Context, prompt string, image []byte) (string, error) {
	blocks := []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(prompt)}
	if len(image) > 0 {
		blocks = append(blocks, anthropic.NewImageBlockBase64(sniffMediaType(image), encodeBase64(image)))
	}
	resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   4096,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

// Executor wraps a Caller with transport retries. Timeouts, rate limits and
// server errors are retried with backoff; client errors are not. An empty
// response counts as a content retry.
type Executor struct {
	caller Caller
}

func NewExecutor(caller Caller) *Executor {
	return &Executor{caller: caller}
}

func (e *Executor) ModelName() string {
	if e == nil || e.caller == nil {
		return DefaultModel
	}
	return e.caller.ModelName()
}

func (e *Executor) Generate(ctx context.Context, task, prompt string, image []byte) (string, error) {
	for attempt := 1; attempt <= 3; attempt++ {
		attemptStart := time.Now()
		log.Printf("lawmaster llm_attempt_start task=%s attempt=%d", task, attempt)
		raw, err := e.caller.Generate(ctx, prompt, image)
		if err != nil {
			class := classifyTransportError(err)
			log.Printf("lawmaster llm_attempt_transport_error task=%s attempt=%d class=%d elapsed_ms=%d err=%q", task, attempt, class, time.Since(attemptStart).Milliseconds(), err.Error())
			if class == failureTimeout || class == failureRateLimit || class == failureServer {
				if attempt < 3 {
					time.Sleep(backoffDelay(attempt))
					continue
				}
			}
			return "", fmt.Errorf("%s transport failure: %w", task, err)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			log.Printf("lawmaster llm_attempt_empty task=%s attempt=%d elapsed_ms=%d", task, attempt, time.Since(attemptStart).Milliseconds())
			if attempt < 3 {
				continue
			}
			return "", fmt.Errorf("%s failed: empty response", task)
		}
		log.Printf("lawmaster llm_attempt_success task=%s attempt=%d elapsed_ms=%d response_chars=%d", task, attempt, time.Since(attemptStart).Milliseconds(), len(raw))
		return raw, nil
	}
	return "", fmt.Errorf("%s failed after retries", task)
}

func classifyTransportError(err error) failureClass {
	msg := strings.ToLower(err.Error())
	if errors.Is(err, context.DeadlineExceeded) {
		return failureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return failureTimeout
	}
	m := statusCodeRe.FindStringSubmatch(msg)
	if len(m) == 2 {
		switch {
		case strings.HasPrefix(m[1], "429"):
			return failureRateLimit
		case strings.HasPrefix(m[1], "5"):
			return failureServer
		case strings.HasPrefix(m[1], "4"):
			return failureClient
		}
	}
	switch {
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "status 429"), strings.Contains(msg, "status=429"):
		return failureRateLimit
	case strings.Contains(msg, "status 4"), strings.Contains(msg, "status=4"):
		return failureClient
	default:
		return failureServer
	}
}

func backoffDelay(attempt int) time.Duration {
	switch attempt {
	case 1:
		return 1 * time.Second
	case 2:
		return 2 * time.Second
	default:
		return 4 * time.Second
	}
}
