package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

// fakeDynamo keeps items per table keyed by their "id" attribute. It does not
// evaluate condition expressions; tests inject failures through the err fields.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string]map[string]item
	pageSize int

	getErr      error
	transactErr error

	scans     int
	queries   []*dynamodb.QueryInput
	puts      []*dynamodb.PutItemInput
	transacts []*dynamodb.TransactWriteItemsInput
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]item{}}
}

func (f *fakeDynamo) seed(table string, v any) {
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		panic(err)
	}
	f.store(table, av)
}

func (f *fakeDynamo) store(table string, av item) {
	if f.tables[table] == nil {
		f.tables[table] = map[string]item{}
	}
	f.tables[table][av["id"].(*types.AttributeValueMemberS).Value] = av
}

func (f *fakeDynamo) quantity(table, id string) int {
	n, _ := strconv.Atoi(f.tables[table][id]["quantity"].(*types.AttributeValueMemberN).Value)
	return n
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.tables[aws.ToString(in.TableName)][id]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, in)
	f.store(aws.ToString(in.TableName), in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans++
	items, last := f.page(aws.ToString(in.TableName), in.ExclusiveStartKey, func(item) bool { return true })
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, in)
	want := in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value
	items, last := f.page(aws.ToString(in.TableName), in.ExclusiveStartKey, func(it item) bool {
		s, ok := it["status"].(*types.AttributeValueMemberS)
		return ok && s.Value == want
	})
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) page(table string, start item, match func(item) bool) ([]item, item) {
	ids := make([]string, 0, len(f.tables[table]))
	for id, it := range f.tables[table] {
		if match(it) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	if start != nil {
		after := start["id"].(*types.AttributeValueMemberS).Value
		i := sort.SearchStrings(ids, after)
		if i < len(ids) && ids[i] == after {
			i++
		}
		ids = ids[i:]
	}

	var last item
	if f.pageSize > 0 && len(ids) > f.pageSize {
		ids = ids[:f.pageSize]
		last = item{"id": &types.AttributeValueMemberS{Value: ids[len(ids)-1]}}
	}
	out := make([]item, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.tables[table][id])
	}
	return out, last
}

// TransactWriteItems applies puts verbatim and stock updates as "quantity += :delta".
func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transacts = append(f.transacts, in)
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	for _, ti := range in.TransactItems {
		switch {
		case ti.Put != nil:
			f.store(aws.ToString(ti.Put.TableName), ti.Put.Item)
		case ti.Update != nil:
			table := aws.ToString(ti.Update.TableName)
			id := ti.Update.Key["id"].(*types.AttributeValueMemberS).Value
			delta, _ := strconv.Atoi(ti.Update.ExpressionAttributeValues[":delta"].(*types.AttributeValueMemberN).Value)
			f.tables[table][id]["quantity"] = &types.AttributeValueMemberN{Value: strconv.Itoa(f.quantity(table, id) + delta)}
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
