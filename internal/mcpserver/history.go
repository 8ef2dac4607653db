package mcpserver

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/oklog/ulid/v2"
)

// GenerationItem is the DynamoDB record for one completed generation.
// Generations share the persona table: PK partitions by generation id,
// GSI1 orders all generations by creation time for listing.
type GenerationItem struct {
	PK           string  `dynamodbav:"PK"`
	SK           string  `dynamodbav:"SK"`
	GSI1PK       string  `dynamodbav:"GSI1PK"`
	GSI1SK       string  `dynamodbav:"GSI1SK"`
	GenerationID string  `dynamodbav:"generationId"`
	Platform     string  `dynamodbav:"platform"`
	Kind         string  `dynamodbav:"kind"`
	Title        string  `dynamodbav:"title,omitempty"`
	Source       string  `dynamodbav:"source,omitempty"`
	Personas     string  `dynamodbav:"personas,omitempty"`
	Content      string  `dynamodbav:"content"`
	WordCount    int     `dynamodbav:"wordCount"`
	Model        string  `dynamodbav:"model,omitempty"`
	ElapsedSec   float64 `dynamodbav:"elapsedSec,omitempty"`
	CreatedAt    string  `dynamodbav:"createdAt"`
}

// History records completed generations in DynamoDB.
type History struct {
	client    *dynamodb.Client
	tableName string
}

func NewHistory(client *dynamodb.Client, tableName string) *History {
	return &History{client: client, tableName: tableName}
}

// NewGenerationID generates a ULID for a new generation record.
func NewGenerationID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", fmt.Errorf("generate ulid: %w", err)
	}
	return id.String(), nil
}

// Record inserts a completed generation.
func (h *History) Record(ctx context.Context, item GenerationItem) error {
	now := time.Now().UTC().Format(time.RFC3339)
	item.PK = "GENERATION#" + item.GenerationID
	item.SK = "METADATA"
	item.GSI1PK = "GENERATIONS"
	item.GSI1SK = now + "#" + item.GenerationID
	item.CreatedAt = now

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal generation item: %w", err)
	}

	_, err = h.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &h.tableName,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		return fmt.Errorf("put generation item: %w", err)
	}
	return nil
}

// Get retrieves a single generation by ID. Returns nil when not found.
func (h *History) Get(ctx context.Context, id string) (*GenerationItem, error) {
	result, err := h.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &h.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: "GENERATION#" + id},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get generation: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var item GenerationItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("unmarshal generation: %w", err)
	}
	return &item, nil
}

// List returns generations ordered by creation time (newest first) via GSI1.
func (h *History) List(ctx context.Context, limit int, cursor string) ([]GenerationItem, string, error) {
	if limit <= 0 {
		limit = 20
	}

	input := &dynamodb.QueryInput{
		TableName:              &h.tableName,
		IndexName:              aws.String("GSI1"),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: "GENERATIONS"},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	}

	if cursor != "" {
		// cursor is the full GSI1SK value ({timestamp}#{id})
		parts := strings.SplitN(cursor, "#", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("invalid cursor format")
		}
		input.ExclusiveStartKey = map[string]types.AttributeValue{
			"PK":     &types.AttributeValueMemberS{Value: "GENERATION#" + parts[1]},
			"SK":     &types.AttributeValueMemberS{Value: "METADATA"},
			"GSI1PK": &types.AttributeValueMemberS{Value: "GENERATIONS"},
			"GSI1SK": &types.AttributeValueMemberS{Value: cursor},
		}
	}

	result, err := h.client.Query(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("list generations: %w", err)
	}

	var items []GenerationItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, "", fmt.Errorf("unmarshal generation list: %w", err)
	}

	var nextCursor string
	if result.LastEvaluatedKey != nil {
		if gsi1sk, ok := result.LastEvaluatedKey["GSI1SK"].(*types.AttributeValueMemberS); ok {
			nextCursor = gsi1sk.Value
		}
	}

	return items, nextCursor, nil
}
