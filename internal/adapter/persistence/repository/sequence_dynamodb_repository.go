package repository

import (
	"context"
	"fmt"
	"strconv"

	"convoyage/internal/domain/entities"
	"convoyage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "document_sequences"

// SequenceDynamoRepository hands out document numbers with a DynamoDB
// atomic counter, one row per {owner, year, kind}.
//
// Table requirements:
//   - PK: seq_key (string, "{owner}:{year}:{kind}")
//
// The ADD update is atomic on the server: two concurrent callers always
// observe distinct values, which is what keeps numbering gapless enough
// for sequential invoice numbers.

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, ownerID string, year int, kind entities.DocumentKind) (int64, error) {
	key := fmt.Sprintf("%s:%d:%s", ownerID, year, kind)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"seq_key": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["value"]
	if !ok {
		return 0, fmt.Errorf("sequence %s: missing counter attribute", key)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence %s: unexpected counter type %T", key, attr)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
