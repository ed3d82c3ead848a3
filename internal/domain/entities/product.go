package entities

// Product is a catalog item referenced by payment requests.
//
// The payment flow only reads products (price and name resolution); the
// catalog itself is managed elsewhere.
//
// Storage model (DynamoDB):
//   - PK: id

type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
