package repository

import (
	"context"
	"encoding/json"

	"convoyage/internal/domain/form"
	"convoyage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDraftsTableName = "wizard_drafts"

type draftItem struct {
	DraftKey       string `dynamodbav:"draft_key"`
	Values         string `dynamodbav:"values"`
	Step           int    `dynamodbav:"step"`
	HighestVisited int    `dynamodbav:"highest_visited_step"`
	Timestamp      int64  `dynamodbav:"timestamp"`
}

// DraftDynamoRepository persists wizard draft snapshots in DynamoDB.
//
// Table requirements:
//   - PK: draft_key (string, "{kind}:{owner}")
//
// The form values are stored as a JSON blob: drafts round-trip through
// full serialization, no field ever aliases session state.

type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client) *DraftDynamoRepository {
	return &DraftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAFTS_TABLE", defaultDraftsTableName),
	}
}

func (r *DraftDynamoRepository) Put(ctx context.Context, key string, d form.Draft) error {
	blob, err := json.Marshal(d.Values)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(draftItem{
		DraftKey:       key,
		Values:         string(blob),
		Step:           d.Step,
		HighestVisited: d.HighestVisited,
		Timestamp:      d.Timestamp,
	})
	if err != nil {
		return err
	}

	// Last write wins: the slot always holds the latest snapshot.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *DraftDynamoRepository) Get(ctx context.Context, key string) (form.Draft, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"draft_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return form.Draft{}, false, err
	}
	if len(out.Item) == 0 {
		return form.Draft{}, false, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return form.Draft{}, false, err
	}

	values := form.Defaults()
	if err := json.Unmarshal([]byte(it.Values), &values); err != nil {
		return form.Draft{}, false, err
	}
	return form.Draft{
		Values:         values,
		Step:           it.Step,
		HighestVisited: it.HighestVisited,
		Timestamp:      it.Timestamp,
	}, true, nil
}

func (r *DraftDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"draft_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
