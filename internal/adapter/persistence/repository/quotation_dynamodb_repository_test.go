package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"window_quotation/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items by id and evaluates the two condition expressions
// the repository uses.
type fakeDynamo struct {
	items    map[string]map[string]types.AttributeValue
	queryErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func attrS(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := attrS(in.Item, "id")
	existing, exists := f.items[id]
	switch aws.ToString(in.ConditionExpression) {
	case "attribute_not_exists(#id)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	case "attribute_exists(#id) AND #number = :number":
		if in.ExpressionAttributeNames["#id"] != "id" || in.ExpressionAttributeNames["#number"] != "quotation_number" {
			return nil, fmt.Errorf("unresolved attribute names %v", in.ExpressionAttributeNames)
		}
		want := in.ExpressionAttributeValues[":number"].(*types.AttributeValueMemberS).Value
		if !exists || attrS(existing, "quotation_number") != want {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	want := in.ExpressionAttributeValues[":n"].(*types.AttributeValueMemberS).Value
	out := &dynamodb.QueryOutput{}
	for _, it := range f.items {
		if attrS(it, "quotation_number") == want {
			out.Items = append(out.Items, it)
		}
	}
	return out, nil
}

func storedQuotation(id, number string, updated time.Time) entities.StoredQuotation {
	return entities.StoredQuotation{
		ID:              id,
		QuotationNumber: number,
		Status:          entities.QuotationStatusDraft,
		ClientName:      "Asha",
		GrandTotal:      23600.5,
		WindowCount:     2,
		Record:          []byte(`{"version":2}`),
		CreatedAt:       updated.Add(-time.Hour),
		UpdatedAt:       updated,
	}
}

func TestQuotationDynamoRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("create then find by number", func(t *testing.T) {
		repo := newQuotationDynamoRepository(newFakeDynamo(), "")
		if repo.tableName != defaultQuotationsTableName {
			t.Fatalf("expected default table, got %s", repo.tableName)
		}
		if _, err := repo.Create(ctx, storedQuotation("id-1", "QT-1", now)); err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := repo.FindByNumber(ctx, "QT-1")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if got.ID != "id-1" || got.GrandTotal != 23600.5 || got.WindowCount != 2 {
			t.Fatalf("unexpected record: %+v", got)
		}
		if string(got.Record) != `{"version":2}` || !got.UpdatedAt.Equal(now) {
			t.Fatalf("record or timestamps not preserved: %+v", got)
		}
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		repo := newQuotationDynamoRepository(newFakeDynamo(), "quotations")
		_, _ = repo.Create(ctx, storedQuotation("id-1", "QT-1", now))
		_, err := repo.Create(ctx, storedQuotation("id-1", "QT-1", now))
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			t.Fatalf("expected conditional check failure, got %v", err)
		}
	})

	t.Run("update missing id returns empty entity", func(t *testing.T) {
		repo := newQuotationDynamoRepository(newFakeDynamo(), "quotations")
		got, err := repo.Update(ctx, "missing", storedQuotation("", "QT-1", now))
		if err != nil || got.ID != "" {
			t.Fatalf("expected empty entity, got %+v err=%v", got, err)
		}
	})

	t.Run("update overwrites by id", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := newQuotationDynamoRepository(fake, "quotations")
		_, _ = repo.Create(ctx, storedQuotation("id-1", "QT-1", now))

		next := storedQuotation("", "QT-1", now.Add(time.Minute))
		next.Status = entities.QuotationStatusSubmitted
		got, err := repo.Update(ctx, "id-1", next)
		if err != nil || got.ID != "id-1" {
			t.Fatalf("unexpected update result: %+v err=%v", got, err)
		}

		var it quotationItem
		if err := attributevalue.UnmarshalMap(fake.items["id-1"], &it); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if it.Status != "submitted" {
			t.Fatalf("expected submitted, got %s", it.Status)
		}
	})

	t.Run("find picks the latest duplicate", func(t *testing.T) {
		repo := newQuotationDynamoRepository(newFakeDynamo(), "quotations")
		_, _ = repo.Create(ctx, storedQuotation("old", "QT-1", now))
		_, _ = repo.Create(ctx, storedQuotation("new", "QT-1", now.Add(time.Hour)))
		got, err := repo.FindByNumber(ctx, "QT-1")
		if err != nil || got.ID != "new" {
			t.Fatalf("expected latest record, got %+v err=%v", got, err)
		}
	})

	t.Run("find unknown number", func(t *testing.T) {
		repo := newQuotationDynamoRepository(newFakeDynamo(), "quotations")
		got, err := repo.FindByNumber(ctx, "QT-404")
		if err != nil || got.ID != "" {
			t.Fatalf("expected empty entity, got %+v err=%v", got, err)
		}
	})

	t.Run("query error is returned", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.queryErr = errors.New("throttled")
		repo := newQuotationDynamoRepository(fake, "quotations")
		if _, err := repo.FindByNumber(ctx, "QT-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
