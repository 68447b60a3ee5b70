package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items of a single table in memory, keyed by id. Scans are
// served one item per page so pagination is exercised.
type fakeDynamo struct {
	items     map[string]map[string]types.AttributeValue
	lastScan  *dynamodb.ScanInput
	lastQuery *dynamodb.QueryInput
	failWith  error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func idOf(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	id := idOf(in.Item)
	if in.ConditionExpression != nil && aws.ToString(in.ConditionExpression) == "attribute_not_exists(#id)" {
		if _, exists := f.items[id]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &dynamodb.GetItemOutput{Item: f.items[idOf(in.Key)]}, nil
}

// Query matches the single "attr = :value" key condition against stored items.
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = in
	if f.failWith != nil {
		return nil, f.failWith
	}
	var attr string
	var want types.AttributeValue
	for k, v := range in.ExpressionAttributeValues {
		want = v
		expr := aws.ToString(in.KeyConditionExpression)
		attr = expr[:len(expr)-len(" = "+k)]
	}
	wantS, _ := want.(*types.AttributeValueMemberS)
	var out []map[string]types.AttributeValue
	for _, id := range f.sortedIDs() {
		item := f.items[id]
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok && wantS != nil && s.Value == wantS.Value {
			out = append(out, item)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

// Scan ignores FilterExpression; tests assert on lastScan instead.
func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.lastScan = in
	if f.failWith != nil {
		return nil, f.failWith
	}
	ids := f.sortedIDs()
	start := 0
	if in.ExclusiveStartKey != nil {
		after := idOf(in.ExclusiveStartKey)
		for i, id := range ids {
			if id == after {
				start = i + 1
			}
		}
	}
	if start >= len(ids) {
		return &dynamodb.ScanOutput{}, nil
	}
	out := &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{f.items[ids[start]]}}
	if start+1 < len(ids) {
		out.LastEvaluatedKey = idKey(ids[start])
	}
	return out, nil
}

func (f *fakeDynamo) sortedIDs() []string {
	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var errDynamoDown = errors.New("dynamodb unavailable")
