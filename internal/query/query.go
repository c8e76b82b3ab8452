// Package query turns product listing parameters into a store-agnostic
// filter and ordering. Nothing here touches a database; each backend in
// internal/repository translates a Query into its own representation.
package query

// Product document field names, shared by the JSON and BSON encodings.
const (
	FieldName       = "name"
	FieldCategory   = "category"
	FieldPrice      = "price"
	FieldAvailable  = "available"
	FieldBestSeller = "bestSeller"
)

// Operator is the comparison applied by a Clause
type Operator string

const (
	// OpEq requires the field to equal Value exactly.
	OpEq Operator = "eq"
	// OpContainsFold requires the string field to contain Value,
	// ignoring case. Value is matched literally, not as a pattern.
	OpContainsFold Operator = "contains_fold"
)

// Clause is a single field-level condition.
type Clause struct {
	Field string
	Op    Operator
	Value any
}

// Direction of an ordering directive. The values match MongoDB sort directions.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// Order is an ordering directive on a single field.
type Order struct {
	Field     string
	Direction Direction
}

// Query is the result of resolving listing parameters.
// Filter clauses are combined with logical AND; an empty Filter matches
// every product. A nil Sort leaves result order to the store.
type Query struct {
	Filter []Clause
	Sort   *Order
}
