package repository

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"window_quotation/internal/domain/entities"
	"window_quotation/internal/infrastructure/database"
	"window_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quotationItem struct {
	ID              string `dynamodbav:"id"`
	QuotationNumber string `dynamodbav:"quotation_number"`
	Status          string `dynamodbav:"status"`
	ClientName      string `dynamodbav:"client_name"`
	GrandTotal      string `dynamodbav:"grand_total"`
	WindowCount     int    `dynamodbav:"window_count"`
	Record          string `dynamodbav:"record"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// dynamoQuotationAPI is the part of *dynamodb.Client the repository uses.
type dynamoQuotationAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// QuotationDynamoRepository is the remote quotation service backed by
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_number-index (PK: quotation_number)
//
// Record holds the encoded storage document as a JSON string; the other
// attributes are copies used for lookups and listings.
type QuotationDynamoRepository struct {
	ddb       dynamoQuotationAPI
	tableName string
}

var _ interfaces.IRemoteQuoteService = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client, tableName string) *QuotationDynamoRepository {
	return newQuotationDynamoRepository(ddb, tableName)
}

func newQuotationDynamoRepository(ddb dynamoQuotationAPI, tableName string) *QuotationDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = defaultQuotationsTableName
	}
	return &QuotationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.StoredQuotation) (entities.StoredQuotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.StoredQuotation{}, err
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
		log.Printf("[quotation][dynamodb] create failed number=%s err=%v", q.QuotationNumber, err)
		return entities.StoredQuotation{}, err
	}
	return q, nil
}

// Update overwrites the whole record by id. Returns an empty entity when the
// id does not exist.
func (r *QuotationDynamoRepository) Update(ctx context.Context, id string, q entities.StoredQuotation) (entities.StoredQuotation, error) {
	q.ID = id
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.StoredQuotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id) AND #number = :number"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#number": "quotation_number"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberS{Value: q.QuotationNumber},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.StoredQuotation{}, nil
		}
		return entities.StoredQuotation{}, err
	}
	return q, nil
}

// FindByNumber returns the most recently updated record with the given
// quotation number, or an empty entity.
func (r *QuotationDynamoRepository) FindByNumber(ctx context.Context, number string) (entities.StoredQuotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.QuotationNumberIndex),
		KeyConditionExpression: aws.String("quotation_number = :n"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: number},
		},
	})
	if err != nil {
		return entities.StoredQuotation{}, err
	}

	var latest entities.StoredQuotation
	for _, raw := range out.Items {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.StoredQuotation{}, err
		}
		q := fromQuotationItem(it)
		if latest.ID == "" || q.UpdatedAt.After(latest.UpdatedAt) {
			latest = q
		}
	}
	return latest, nil
}

func toQuotationItem(q entities.StoredQuotation) quotationItem {
	return quotationItem{
		ID:              q.ID,
		QuotationNumber: q.QuotationNumber,
		Status:          string(q.Status),
		ClientName:      q.ClientName,
		GrandTotal:      floatToString(q.GrandTotal),
		WindowCount:     q.WindowCount,
		Record:          string(q.Record),
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.StoredQuotation {
	total, _ := strconv.ParseFloat(it.GrandTotal, 64)
	q := entities.StoredQuotation{
		ID:              it.ID,
		QuotationNumber: it.QuotationNumber,
		Status:          entities.QuotationStatus(it.Status),
		ClientName:      it.ClientName,
		GrandTotal:      total,
		WindowCount:     it.WindowCount,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
	if it.Record != "" {
		q.Record = []byte(it.Record)
	}
	return q
}
