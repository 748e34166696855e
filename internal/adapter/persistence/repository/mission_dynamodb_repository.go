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
	defaultMissionsTableName = "missions"
	missionsOwnerIDIndex     = "owner_id-index"
)

type missionLeg struct {
	Street      string `dynamodbav:"street"`
	City        string `dynamodbav:"city"`
	PostalCode  string `dynamodbav:"postal_code"`
	Country     string `dynamodbav:"country"`
	ContactName string `dynamodbav:"contact_name"`
	Date        string `dynamodbav:"date"`
	TimeWindow  string `dynamodbav:"time_window"`
}

type missionItem struct {
	ID      string `dynamodbav:"id"`
	OwnerID string `dynamodbav:"owner_id"`

	ClientName  string `dynamodbav:"client_name"`
	ClientEmail string `dynamodbav:"client_email"`
	ClientPhone string `dynamodbav:"client_phone"`

	VehicleBrand string `dynamodbav:"vehicle_brand"`
	VehicleModel string `dynamodbav:"vehicle_model"`
	LicensePlate string `dynamodbav:"license_plate"`
	VIN          string `dynamodbav:"vin,omitempty"`

	Departure missionLeg `dynamodbav:"departure"`
	Arrival   missionLeg `dynamodbav:"arrival"`

	Insurance bool `dynamodbav:"insurance"`
	RoundTrip bool `dynamodbav:"round_trip"`
	Express   bool `dynamodbav:"express"`

	Priority    string   `dynamodbav:"priority"`
	Notes       string   `dynamodbav:"notes,omitempty"`
	Attachments []string `dynamodbav:"attachments,omitempty"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// MissionDynamoRepository persists Mission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)

type MissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMissionRepository = (*MissionDynamoRepository)(nil)

func NewMissionDynamoRepository(ddb *dynamodb.Client) *MissionDynamoRepository {
	return &MissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MISSIONS_TABLE", defaultMissionsTableName),
	}
}

func (r *MissionDynamoRepository) Create(ctx context.Context, m entities.Mission) (entities.Mission, error) {
	av, err := attributevalue.MarshalMap(toMissionItem(m))
	if err != nil {
		return entities.Mission{}, err
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
		return entities.Mission{}, err
	}
	return m, nil
}

func (r *MissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Mission{}, err
	}
	if len(out.Item) == 0 {
		return entities.Mission{}, nil
	}

	var it missionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Mission{}, err
	}
	return fromMissionItem(it), nil
}

func (r *MissionDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Mission, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(missionsOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	missions := make([]entities.Mission, 0, len(out.Items))
	for _, raw := range out.Items {
		var it missionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		missions = append(missions, fromMissionItem(it))
	}
	return missions, nil
}

func (r *MissionDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.MissionStatus) (entities.Mission, error) {
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
			return entities.Mission{}, nil
		}
		return entities.Mission{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Mission{}, nil
	}
	var it missionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Mission{}, err
	}
	return fromMissionItem(it), nil
}

func toMissionItem(m entities.Mission) missionItem {
	return missionItem{
		ID:      m.ID,
		OwnerID: m.OwnerID,

		ClientName:  m.ClientName,
		ClientEmail: m.ClientEmail,
		ClientPhone: m.ClientPhone,

		VehicleBrand: m.VehicleBrand,
		VehicleModel: m.VehicleModel,
		LicensePlate: m.LicensePlate,
		VIN:          m.VIN,

		Departure: missionLeg(m.Departure),
		Arrival:   missionLeg(m.Arrival),

		Insurance: m.Insurance,
		RoundTrip: m.RoundTrip,
		Express:   m.Express,

		Priority:    string(m.Priority),
		Notes:       m.Notes,
		Attachments: m.Attachments,

		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMissionItem(it missionItem) entities.Mission {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Mission{
		ID:      it.ID,
		OwnerID: it.OwnerID,

		ClientName:  it.ClientName,
		ClientEmail: it.ClientEmail,
		ClientPhone: it.ClientPhone,

		VehicleBrand: it.VehicleBrand,
		VehicleModel: it.VehicleModel,
		LicensePlate: it.LicensePlate,
		VIN:          it.VIN,

		Departure: entities.Leg(it.Departure),
		Arrival:   entities.Leg(it.Arrival),

		Insurance: it.Insurance,
		RoundTrip: it.RoundTrip,
		Express:   it.Express,

		Priority:    entities.MissionPriority(it.Priority),
		Notes:       it.Notes,
		Attachments: it.Attachments,

		Status:    entities.MissionStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
