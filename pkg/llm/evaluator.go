package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/startino/reletino/pkg/config"
	"github.com/startino/reletino/pkg/domain"
)

// Evaluator judges post relevance against a project prompt using an
// OpenAI-compatible backend. Junior and senior tiers are separate instances
// of the same type with different models and system prompts; tier selection
// is configuration, not branching on model names.
type Evaluator struct {
	client    *openai.Client
	cfg       config.LLMConfig
	tier      config.TierConfig
	tierName  domain.Tier
	systemMsg string
}

// Request contains everything an evaluator call needs
type Request struct {
	Post            domain.Post
	ProjectPrompt   string
	ProfileInsights string // empty for the junior tier
	Examples        string // formatted similarity examples, possibly empty
}

// NewEvaluator creates an evaluator for the given tier
func NewEvaluator(client *openai.Client, cfg config.LLMConfig, tierName domain.Tier) *Evaluator {
	tier := cfg.Junior
	systemMsg := juniorSystemPrompt
	if tierName == domain.TierSenior {
		tier = cfg.Senior
		systemMsg = seniorSystemPrompt
	}
	if tier.SystemPrompt != "" {
		systemMsg = tier.SystemPrompt
	}

	return &Evaluator{
		client:    client,
		cfg:       cfg,
		tier:      tier,
		tierName:  tierName,
		systemMsg: systemMsg,
	}
}

// NewClient creates the shared OpenAI-compatible client from config
func NewClient(cfg config.LLMConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return openai.NewClientWithConfig(clientConfig)
}

// juniorSystemPrompt biases the first pass toward not rejecting: a false
// negative here is unrecoverable while a false positive only costs one
// senior call
const juniorSystemPrompt = `You are a super intelligent junior assistant that helps the senior assistant in filtering posts for the Boss.
You are the first line of defense in filtering out irrelevant posts, with the goal of saving time for the senior assistant,
since there are too many posts that are clearly and blatantly irrelevant.
Because we do not want to miss any relevant posts, you will mark only the most obvious irrelevant posts as irrelevant.
This means that you should be biased towards marking posts as relevant.

You have a very logical approach to concluding whether a post is relevant.
You don't like repeating yourself and redundant text.`

// seniorSystemPrompt drives the final, more precise judgment
const seniorSystemPrompt = `You are a very intelligent senior assistant that filters posts for your boss.
You have the duty of going through the posts and determining if they are relevant to look into for your boss.
Unlike the junior assistant before you, your conclusion is final, so weigh the post, the author profile insights
and the project context carefully before deciding.

You have a very logical approach to concluding whether a post is relevant.
You don't like repeating yourself and redundant text.`

// reasoningPrompt forces a stepwise chain of thought before the verdict
const reasoningPrompt = `ALWAYS start your reasoning with:
Let's think step by step.
Perform individual reasoning:
1. Considering the post, [...], therefore this aspect is [...].
2. Considering the project, [...], therefore this aspect is [...].
(if profile insights are present) 3. Considering the author profile, [...], therefore this aspect is [...].
(if examples are present) 4. Considering the examples, [...], therefore this aspect is [...].
Use new lines and numbers to separate your thoughts.`

// Evaluate runs one tier call and returns the completed evaluation. A nil
// evaluation is only ever paired with a non-nil error; retry policy is owned
// by the caller.
func (e *Evaluator) Evaluate(ctx context.Context, req Request) (*domain.Evaluation, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       e.tier.Model,
		Temperature: float32(e.tier.Temperature),
		MaxTokens:   e.tier.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: e.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: e.buildPrompt(req)},
		},
	}

	if e.cfg.UseJSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := e.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("%s evaluation request failed: %w", e.tierName, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from llm for %s evaluation", e.tierName)
	}

	eval, err := e.parseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("parse %s evaluation: %w", e.tierName, err)
	}
	return eval, nil
}

// buildPrompt renders the user message for a tier call
func (e *Evaluator) buildPrompt(req Request) string {
	var sb strings.Builder

	sb.WriteString(reasoningPrompt)
	sb.WriteString("\n\n")

	if req.ProfileInsights != "" {
		sb.WriteString("# Profile Insights\n")
		sb.WriteString("These are the insights we have about the author of the post based on their public profile.\n")
		sb.WriteString(req.ProfileInsights)
		sb.WriteString("\n\n")
	}

	sb.WriteString("# Project\n")
	sb.WriteString("Use the context of the project provided to determine if the post is relevant to the project.\n")
	sb.WriteString(req.ProjectPrompt)
	sb.WriteString("\n\n")

	sb.WriteString("# Post\n")
	sb.WriteString("This is the post we are evaluating.\n")
	sb.WriteString(PostToXML(req.Post))
	sb.WriteString("\n")

	if req.Examples != "" {
		sb.WriteString("\n# Examples\n")
		sb.WriteString("Previously judged posts similar to this one. Emulate the optimal answers, do not copy facts from them.\n")
		sb.WriteString(req.Examples)
		sb.WriteString("\n")
	}

	sb.WriteString("\nRespond with a JSON object: {\"chain_of_thought\": string, \"is_relevant\": boolean}.")
	return sb.String()
}

// evalResponse is the expected wire format of a tier verdict
type evalResponse struct {
	ChainOfThought string `json:"chain_of_thought"`
	IsRelevant     bool   `json:"is_relevant"`
}

// parseResponse parses the LLM response into an evaluation. When JSON mode
// is off the object is extracted between the outermost braces.
func (e *Evaluator) parseResponse(content string) (*domain.Evaluation, error) {
	jsonStr := content
	if !e.cfg.UseJSONMode {
		start := strings.Index(content, "{")
		end := strings.LastIndex(content, "}")
		if start == -1 || end == -1 || start >= end {
			return nil, fmt.Errorf("no json object found in response")
		}
		jsonStr = content[start : end+1]
	}

	var parsed evalResponse
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse json response: %w", err)
	}

	// a completed tier always explains itself
	if strings.TrimSpace(parsed.ChainOfThought) == "" {
		return nil, fmt.Errorf("empty reasoning in response")
	}

	return &domain.Evaluation{
		IsRelevant: parsed.IsRelevant,
		Reasoning:  parsed.ChainOfThought,
		Tier:       e.tierName,
	}, nil
}

// PostToXML renders a post as the XML-ish block used in evaluator and
// example-retrieval prompts
func PostToXML(p domain.Post) string {
	var sb strings.Builder
	sb.WriteString("<post>")
	sb.WriteString("<subreddit>" + p.Subreddit + "</subreddit>")
	sb.WriteString("<author>" + p.Author + "</author>")
	sb.WriteString("<title>" + p.Title + "</title>")
	sb.WriteString("<body>" + p.SelfText + "</body>")
	sb.WriteString("</post>")
	return sb.String()
}
