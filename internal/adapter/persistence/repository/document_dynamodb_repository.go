package repository

import (
	"context"
	"errors"
	"time"

	"convoyage/internal/domain/entities"
	"convoyage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDocumentsTableName = "billing_documents"
	documentsOwnerIDIndex     = "owner_id-index"
)

type documentLineItem struct {
	Description    string `dynamodbav:"description"`
	Quantity       int64  `dynamodbav:"quantity"`
	UnitPriceCents int64  `dynamodbav:"unit_price_cents"`
	LineTotalCents int64  `dynamodbav:"line_total_cents"`
}

type documentItem struct {
	ID      string `dynamodbav:"id"`
	OwnerID string `dynamodbav:"owner_id"`
	Kind    string `dynamodbav:"kind"`
	Number  string `dynamodbav:"number"`

	ClientName  string `dynamodbav:"client_name"`
	ClientEmail string `dynamodbav:"client_email"`
	ClientPhone string `dynamodbav:"client_phone"`

	Items          []documentLineItem `dynamodbav:"items"`
	TaxRatePercent int64              `dynamodbav:"tax_rate_percent"`
	SubtotalCents  int64              `dynamodbav:"subtotal_cents"`
	TaxCents       int64              `dynamodbav:"tax_cents"`
	TotalCents     int64              `dynamodbav:"total_cents"`

	Notes         string `dynamodbav:"notes,omitempty"`
	SourceQuoteID string `dynamodbav:"source_quote_id,omitempty"`

	Status    string `dynamodbav:"status"`
	IssuedAt  string `dynamodbav:"issued_at"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository persists BillingDocument entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.BillingDocument) (entities.BillingDocument, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(d))
	if err != nil {
		return entities.BillingDocument{}, err
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
		return entities.BillingDocument{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingDocument, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingDocument{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingDocument{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingDocument{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.BillingDocument, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentsOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	docs := make([]entities.BillingDocument, 0, len(out.Items))
	for _, raw := range out.Items {
		var it documentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		docs = append(docs, fromDocumentItem(it))
	}
	return docs, nil
}

func (r *DocumentDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.DocumentStatus) (entities.BillingDocument, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BillingDocument{}, nil
		}
		return entities.BillingDocument{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BillingDocument{}, nil
	}
	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BillingDocument{}, err
	}
	return fromDocumentItem(it), nil
}

func toDocumentItem(d entities.BillingDocument) documentItem {
	items := make([]documentLineItem, 0, len(d.Items))
	for _, li := range d.Items {
		items = append(items, documentLineItem(li))
	}
	return documentItem{
		ID:      d.ID,
		OwnerID: d.OwnerID,
		Kind:    string(d.Kind),
		Number:  d.Number,

		ClientName:  d.ClientName,
		ClientEmail: d.ClientEmail,
		ClientPhone: d.ClientPhone,

		Items:          items,
		TaxRatePercent: d.TaxRatePercent,
		SubtotalCents:  d.SubtotalCents,
		TaxCents:       d.TaxCents,
		TotalCents:     d.TotalCents,

		Notes:         d.Notes,
		SourceQuoteID: d.SourceQuoteID,

		Status:    string(d.Status),
		IssuedAt:  d.IssuedAt.UTC().Format(time.RFC3339Nano),
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDocumentItem(it documentItem) entities.BillingDocument {
	issuedAt, _ := time.Parse(time.RFC3339Nano, it.IssuedAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.LineItem(li))
	}
	return entities.BillingDocument{
		ID:      it.ID,
		OwnerID: it.OwnerID,
		Kind:    entities.DocumentKind(it.Kind),
		Number:  it.Number,

		ClientName:  it.ClientName,
		ClientEmail: it.ClientEmail,
		ClientPhone: it.ClientPhone,

		Items:          items,
		TaxRatePercent: it.TaxRatePercent,
		SubtotalCents:  it.SubtotalCents,
		TaxCents:       it.TaxCents,
		TotalCents:     it.TotalCents,

		Notes:         it.Notes,
		SourceQuoteID: it.SourceQuoteID,

		Status:    entities.DocumentStatus(it.Status),
		IssuedAt:  issuedAt,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
