package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"mwonto_studio/internal/domain/entities"
	"mwonto_studio/internal/domain/money"
	"mwonto_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDocumentsTableName = "documents"

type lineItemAttr struct {
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
	Quantity    string `dynamodbav:"quantity,omitempty"`
	Cents       string `dynamodbav:"cents,omitempty"`
}

type taskAttr struct {
	Name         string         `dynamodbav:"name"`
	Professional string         `dynamodbav:"professional"`
	Duration     string         `dynamodbav:"duration"`
	Breakdowns   []lineItemAttr `dynamodbav:"breakdowns"`
}

type documentItem struct {
	ID           string         `dynamodbav:"id"`
	Kind         string         `dynamodbav:"kind"`
	Number       string         `dynamodbav:"number"`
	ClientName   string         `dynamodbav:"client_name"`
	ProjectTitle string         `dynamodbav:"project_title"`
	Date         string         `dynamodbav:"date"`
	Items        []lineItemAttr `dynamodbav:"items,omitempty"`
	Tasks        []taskAttr     `dynamodbav:"tasks,omitempty"`
	Notes        []string       `dynamodbav:"notes,omitempty"`

	MSValue       string `dynamodbav:"ms_value,omitempty"`
	ReceivedBy    string `dynamodbav:"received_by,omitempty"`
	ReceiverName  string `dynamodbav:"receiver_name,omitempty"`
	SignatureDate string `dynamodbav:"signature_date,omitempty"`
	SignatureURL  string `dynamodbav:"signature_url,omitempty"`

	TotalAmount int64  `dynamodbav:"total_amount"`
	Status      string `dynamodbav:"status"`
	OwnerID     string `dynamodbav:"owner_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// DocumentDynamoRepository persists billing documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// kind, status and owner_id are plain attributes. Listing scans the full
// table; the studio's record volume is a few hundred documents, so a scan
// plus in-memory filtering beats maintaining GSIs for every filter axis.

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client, tableName string) *DocumentDynamoRepository {
	if tableName == "" {
		tableName = defaultDocumentsTableName
	}
	return &DocumentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	it := toDocumentItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Document{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) List(ctx context.Context) ([]entities.Document, error) {
	var docs []entities.Document

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []documentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			docs = append(docs, fromDocumentItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	// Newest first, matching the dashboard ordering.
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	return docs, nil
}

func (r *DocumentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Already gone; deletion is idempotent.
			return nil
		}
		return err
	}
	return nil
}

func toDocumentItem(d entities.Document) documentItem {
	return documentItem{
		ID:            d.ID,
		Kind:          string(d.Kind),
		Number:        d.Number,
		ClientName:    d.ClientName,
		ProjectTitle:  d.ProjectTitle,
		Date:          d.Date,
		Items:         toLineItemAttrs(d.Items),
		Tasks:         toTaskAttrs(d.Tasks),
		Notes:         d.Notes,
		MSValue:       d.MSValue,
		ReceivedBy:    d.ReceivedBy,
		ReceiverName:  d.ReceiverName,
		SignatureDate: d.SignatureDate,
		SignatureURL:  d.SignatureURL,
		TotalAmount:   int64(d.TotalAmount),
		Status:        string(d.Status),
		OwnerID:       d.OwnerID,
		CreatedAt:     d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Document{
		ID:            it.ID,
		Kind:          entities.DocumentKind(it.Kind),
		Number:        it.Number,
		ClientName:    it.ClientName,
		ProjectTitle:  it.ProjectTitle,
		Date:          it.Date,
		Items:         fromLineItemAttrs(it.Items),
		Tasks:         fromTaskAttrs(it.Tasks),
		Notes:         it.Notes,
		MSValue:       it.MSValue,
		ReceivedBy:    it.ReceivedBy,
		ReceiverName:  it.ReceiverName,
		SignatureDate: it.SignatureDate,
		SignatureURL:  it.SignatureURL,
		TotalAmount:   money.Amount(it.TotalAmount),
		Status:        entities.DocumentStatus(it.Status),
		OwnerID:       it.OwnerID,
		CreatedAt:     createdAt,
	}
}

func toLineItemAttrs(items []entities.LineItem) []lineItemAttr {
	if len(items) == 0 {
		return nil
	}
	out := make([]lineItemAttr, len(items))
	for i, it := range items {
		out[i] = lineItemAttr{
			Description: it.Description,
			Amount:      it.Amount,
			Quantity:    it.Quantity,
			Cents:       it.Cents,
		}
	}
	return out
}

func fromLineItemAttrs(items []lineItemAttr) []entities.LineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.LineItem, len(items))
	for i, it := range items {
		out[i] = entities.LineItem{
			Description: it.Description,
			Amount:      it.Amount,
			Quantity:    it.Quantity,
			Cents:       it.Cents,
		}
	}
	return out
}

func toTaskAttrs(tasks []entities.Task) []taskAttr {
	if len(tasks) == 0 {
		return nil
	}
	out := make([]taskAttr, len(tasks))
	for i, t := range tasks {
		out[i] = taskAttr{
			Name:         t.Name,
			Professional: t.Professional,
			Duration:     t.Duration,
			Breakdowns:   toLineItemAttrs(t.Breakdowns),
		}
	}
	return out
}

func fromTaskAttrs(tasks []taskAttr) []entities.Task {
	if len(tasks) == 0 {
		return nil
	}
	out := make([]entities.Task, len(tasks))
	for i, t := range tasks {
		out[i] = entities.Task{
			Name:         t.Name,
			Professional: t.Professional,
			Duration:     t.Duration,
			Breakdowns:   fromLineItemAttrs(t.Breakdowns),
		}
	}
	return out
}
