// Package mcpserver exposes content generation and persona management
// as MCP tools over streamable HTTP.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/mark3labs/mcp-go/server"

	"github.com/apresai/repost/internal/analysis"
	"github.com/apresai/repost/internal/generate"
	"github.com/apresai/repost/internal/persona"
	"github.com/apresai/repost/internal/pipeline"
)

// Config holds server configuration.
type Config struct {
	Port         int
	TableName    string
	S3Bucket     string
	AWSRegion    string
	Model        string
	SecretPrefix string // e.g. "/repost/mcp/"
}

// DefaultConfig returns a Config populated from environment variables.
func DefaultConfig() Config {
	return Config{
		Port:         8000,
		TableName:    envOr("DYNAMODB_TABLE", "apresai-repost-prod"),
		S3Bucket:     envOr("S3_BUCKET", ""),
		AWSRegion:    envOr("AWS_REGION", "us-east-1"),
		Model:        envOr("REPOST_MODEL", "haiku"),
		SecretPrefix: envOr("SECRET_PREFIX", "/repost/mcp/"),
	}
}

// Server is the MCP server for content generation.
type Server struct {
	cfg      Config
	mcp      *server.MCPServer
	handlers *Handlers
	log      *slog.Logger
}

// New creates and configures the MCP server.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Server, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	// Fetch secrets if running in AWS
	if cfg.SecretPrefix != "" {
		if err := loadSecrets(ctx, awsCfg, cfg.SecretPrefix, logger); err != nil {
			logger.Warn("Failed to load secrets from Secrets Manager, falling back to env vars",
				"error", err)
		}
	}

	ddbClient := dynamodb.NewFromConfig(awsCfg)
	builder := persona.NewBuilder(analysis.NewDefault())
	store := persona.NewDynamoStore(ddbClient, cfg.TableName, builder)
	history := NewHistory(ddbClient, cfg.TableName)

	var storage *Storage
	if cfg.S3Bucket != "" {
		storage = NewStorage(s3.NewFromConfig(awsCfg), cfg.S3Bucket)
	}

	gen := generate.NewClaudeGenerator(cfg.Model)
	pipe := pipeline.New(store, gen)

	handlers := NewHandlers(pipe, store, builder, history, storage, cfg.Model, logger)

	mcpServer := server.NewMCPServer(
		"repost",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools := ToolDefs()
	mcpServer.AddTool(tools[0], handlers.HandleGeneratePost)
	mcpServer.AddTool(tools[1], handlers.HandleAnalyzeStyle)
	mcpServer.AddTool(tools[2], handlers.HandleTrainPersona)
	mcpServer.AddTool(tools[3], handlers.HandleGetPersona)
	mcpServer.AddTool(tools[4], handlers.HandleListPersonas)
	mcpServer.AddTool(tools[5], handlers.HandleDeletePersona)
	mcpServer.AddTool(tools[6], handlers.HandleExportPersona)
	mcpServer.AddTool(tools[7], handlers.HandleListGenerations)
	mcpServer.AddTool(tools[8], handlers.HandleGetGeneration)

	return &Server{
		cfg:      cfg,
		mcp:      mcpServer,
		handlers: handlers,
		log:      logger,
	}, nil
}

// Start runs the HTTP MCP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.log.Info("Starting MCP server", "addr", addr)

	httpServer := server.NewStreamableHTTPServer(s.mcp,
		server.WithStateLess(true),
	)
	return httpServer.Start(addr)
}

// loadSecrets fetches API keys from Secrets Manager and sets them as env vars.
func loadSecrets(ctx context.Context, cfg aws.Config, prefix string, logger *slog.Logger) error {
	client := secretsmanager.NewFromConfig(cfg)

	secrets := map[string]string{
		"ANTHROPIC_API_KEY": prefix + "ANTHROPIC_API_KEY",
	}

	for envVar, secretID := range secrets {
		// Skip if already set in environment
		if os.Getenv(envVar) != "" {
			continue
		}

		result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: &secretID,
		})
		if err != nil {
			logger.Info("Secret not found", "secret_id", secretID, "error", err)
			continue
		}
		if result.SecretString != nil {
			os.Setenv(envVar, *result.SecretString)
			logger.Info("Loaded secret", "secret_id", secretID)
		}
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
