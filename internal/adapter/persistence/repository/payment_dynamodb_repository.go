package repository

import (
	"context"
	"strconv"
	"time"

	"play12/internal/domain/entities"
	"play12/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName       = "payments"
	paymentsExternalReferenceIndex = "external_reference-index"
)

type paymentItem struct {
	TransactionID     string  `dynamodbav:"transaction_id"`
	ID                string  `dynamodbav:"id"`
	ExternalReference string  `dynamodbav:"external_reference,omitempty"`
	Amount            string  `dynamodbav:"amount"`
	Status            string  `dynamodbav:"status"`
	PaymentMethod     string  `dynamodbav:"payment_method"`
	QRCode            string  `dynamodbav:"qr_code,omitempty"`
	QRCodeURL         string  `dynamodbav:"qr_code_url,omitempty"`
	PayerEmail        string  `dynamodbav:"payer_email"`
	PayerName         string  `dynamodbav:"payer_name,omitempty"`
	Quantity          int     `dynamodbav:"quantity"`
	Description       string  `dynamodbav:"description,omitempty"`
	ProductID         string  `dynamodbav:"product_id,omitempty"`
	MerchantOrderID   string  `dynamodbav:"merchant_order_id,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	CompletedAt       string  `dynamodbav:"completed_at,omitempty"`
	ExpirationTime    string  `dynamodbav:"expiration_time"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: transaction_id (string)
//   - GSI: external_reference-index (PK: external_reference)
//
// The conditional put on transaction_id is the uniqueness guarantee the
// rest of the service relies on; a duplicate provider id fails the write.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#tid)"),
		ExpressionAttributeNames: map[string]string{
			"#tid": "transaction_id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByExternalReference(ctx context.Context, externalReference string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsExternalReferenceIndex),
		KeyConditionExpression: aws.String("external_reference = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: externalReference},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, transactionID string, status entities.PaymentStatus, completedAt *time.Time) (entities.Payment, error) {
	expr := "SET #status = :status"
	vals := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{
		"#status": "status",
		"#tid":    "transaction_id",
	}
	if completedAt != nil {
		expr += ", #completed_at = :completed_at"
		vals[":completed_at"] = &types.AttributeValueMemberS{Value: completedAt.UTC().Format(time.RFC3339Nano)}
		names["#completed_at"] = "completed_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConditionExpression:       aws.String("attribute_exists(#tid)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		TransactionID:     p.TransactionID,
		ID:                p.ID,
		ExternalReference: p.ExternalReference,
		Amount:            floatToString(p.Amount),
		Status:            string(p.Status),
		PaymentMethod:     p.PaymentMethod,
		QRCode:            p.QRCode,
		QRCodeURL:         p.QRCodeURL,
		PayerEmail:        p.PayerEmail,
		PayerName:         p.PayerName,
		Quantity:          p.Quantity,
		Description:       p.Description,
		ProductID:         p.ProductID,
		MerchantOrderID:   p.MerchantOrderID,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpirationTime:    p.ExpirationTime.UTC().Format(time.RFC3339Nano),
	}
	if p.CompletedAt != nil {
		it.CompletedAt = p.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expirationTime, _ := time.Parse(time.RFC3339Nano, it.ExpirationTime)
	amount, _ := strconv.ParseFloat(it.Amount, 64)

	p := entities.Payment{
		TransactionID:     it.TransactionID,
		ID:                it.ID,
		ExternalReference: it.ExternalReference,
		Amount:            amount,
		Status:            entities.PaymentStatus(it.Status),
		PaymentMethod:     it.PaymentMethod,
		QRCode:            it.QRCode,
		QRCodeURL:         it.QRCodeURL,
		PayerEmail:        it.PayerEmail,
		PayerName:         it.PayerName,
		Quantity:          it.Quantity,
		Description:       it.Description,
		ProductID:         it.ProductID,
		MerchantOrderID:   it.MerchantOrderID,
		CreatedAt:         createdAt,
		ExpirationTime:    expirationTime,
	}
	if it.CompletedAt != "" {
		if completedAt, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			p.CompletedAt = &completedAt
		}
	}
	return p
}
