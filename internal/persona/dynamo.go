package persona

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// personaItem is the DynamoDB record for a persona. Derived metrics
// are not persisted; they are recomputed from the raw training text on
// read, which is deterministic.
type personaItem struct {
	PK           string   `dynamodbav:"PK"`
	SK           string   `dynamodbav:"SK"`
	GSI1PK       string   `dynamodbav:"GSI1PK"`
	GSI1SK       string   `dynamodbav:"GSI1SK"`
	Name         string   `dynamodbav:"name"`
	RawText      string   `dynamodbav:"rawText"`
	Description  string   `dynamodbav:"description,omitempty"`
	DomainTags   []string `dynamodbav:"domainTags,omitempty"`
	Instructions string   `dynamodbav:"instructions,omitempty"`
	ContentType  string   `dynamodbav:"contentType"`
	BuiltIn      bool     `dynamodbav:"builtIn"`
	CreatedAt    string   `dynamodbav:"createdAt"`
}

// DynamoStore is the DynamoDB-backed Store. List returns profiles
// newest first via the GSI1 index.
type DynamoStore struct {
	client    *dynamodb.Client
	tableName string
	builder   *Builder
}

// NewDynamoStore creates a DynamoDB store. The builder recomputes
// metrics for profiles read back from the table.
func NewDynamoStore(client *dynamodb.Client, tableName string, builder *Builder) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName, builder: builder}
}

func personaKey(name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "PERSONA#" + strings.ToLower(name)},
		"SK": &types.AttributeValueMemberS{Value: "PROFILE"},
	}
}

func (s *DynamoStore) Save(ctx context.Context, p Profile) error {
	if err := checkReserved(p); err != nil {
		return err
	}

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	item := personaItem{
		PK:           "PERSONA#" + strings.ToLower(p.Name),
		SK:           "PROFILE",
		GSI1PK:       "PERSONAS",
		GSI1SK:       createdAt.Format(time.RFC3339) + "#" + strings.ToLower(p.Name),
		Name:         p.Name,
		RawText:      p.RawTrainingText,
		Description:  p.Description,
		DomainTags:   p.DomainTags,
		Instructions: p.Instructions,
		ContentType:  string(p.ContentType),
		BuiltIn:      p.BuiltIn,
		CreatedAt:    createdAt.Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal persona item: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put persona item: %w", err)
	}
	return nil
}

func (s *DynamoStore) Get(ctx context.Context, name string) (Profile, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.tableName,
		Key:       personaKey(name),
	})
	if err != nil {
		return Profile{}, fmt.Errorf("get persona: %w", err)
	}
	if result.Item == nil {
		return Profile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	var item personaItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return Profile{}, fmt.Errorf("unmarshal persona: %w", err)
	}
	return s.profileFromItem(item)
}

func (s *DynamoStore) List(ctx context.Context) ([]Profile, error) {
	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.tableName,
		IndexName:              aws.String("GSI1"),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: "PERSONAS"},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}

	var items []personaItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("unmarshal persona list: %w", err)
	}

	profiles := make([]Profile, 0, len(items))
	for _, item := range items {
		p, err := s.profileFromItem(item)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (s *DynamoStore) Remove(ctx context.Context, name string) (bool, error) {
	result, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    &s.tableName,
		Key:          personaKey(name),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, fmt.Errorf("delete persona: %w", err)
	}
	return len(result.Attributes) > 0, nil
}

func (s *DynamoStore) profileFromItem(item personaItem) (Profile, error) {
	createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
	if err != nil {
		return Profile{}, fmt.Errorf("parse persona createdAt %q: %w", item.CreatedAt, err)
	}

	p := s.builder.Build(item.Name, item.RawText, ContentType(item.ContentType), &Metadata{
		Description:  item.Description,
		DomainTags:   item.DomainTags,
		Instructions: item.Instructions,
	})
	p.BuiltIn = item.BuiltIn
	p.CreatedAt = createdAt
	return p, nil
}

// IsNotFound reports whether err is a persona lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
