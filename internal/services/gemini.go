package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

// LLMService is the narrow text-generation surface the screening pipeline
// depends on. Keeping it this small lets the deterministic core be tested
// against a stub.
type LLMService interface {
	SummarizeJob(ctx context.Context, description string) (string, error)
	DraftCoverLetter(ctx context.Context, resumeText, jobDescription string) (string, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	maxRetries int
}

func NewGeminiService(apiKey string, maxRetries int) (LLMService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if maxRetries < 1 {
		maxRetries = 1
	}

	return &geminiService{
		client:     client,
		modelName:  "gemini-2.5-flash",
		maxRetries: maxRetries,
	}, nil
}

// SummarizeJob implements LLMService.
func (g *geminiService) SummarizeJob(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize this job description into key skills, experience, and qualifications: %s",
		description,
	)

	summary, err := g.generateTextWithRetry(ctx, prompt, 0.3)
	if err != nil {
		return "", fmt.Errorf("failed to summarize job description: %w", err)
	}

	return strings.TrimSpace(summary), nil
}

// DraftCoverLetter implements LLMService.
func (g *geminiService) DraftCoverLetter(ctx context.Context, resumeText, jobDescription string) (string, error) {
	prompt := fmt.Sprintf(`You are a professional HR assistant. Write a personalized and high-quality cover letter based on the following:

Resume:
%s

Job Description:
%s

Make it confident, engaging, and highlight how the candidate is a strong fit. Avoid copying the job description directly.`,
		resumeText, jobDescription)

	letter, err := g.generateTextWithRetry(ctx, prompt, 0.5)
	if err != nil {
		return "", fmt.Errorf("failed to draft cover letter: %w", err)
	}

	return strings.TrimSpace(letter), nil
}

func (g *geminiService) generateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

func (g *geminiService) generateTextWithRetry(ctx context.Context, prompt string, temperature float32) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		result, err := g.generateText(ctx, prompt, temperature)
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < g.maxRetries {
			log.Printf("⚠️  Attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", g.maxRetries, lastErr)
}
